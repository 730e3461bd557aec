package rest

// CursorQueryParams binds the default browse query string.
type CursorQueryParams struct {
	Cursor         *string  `query:"cursor"`
	Limit          int      `query:"limit"`
	SpecialFilters []string `query:"special_filters"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
