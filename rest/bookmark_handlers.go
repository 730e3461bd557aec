package rest

import (
	"net/http"

	"stash/config"
	"stash/di"
	"stash/usecase/search_bookmark_usecase"
	"stash/utils/errors"

	"github.com/labstack/echo/v4"
)

func registerBookmarkRoutes(v1 *echo.Group, container *di.ApplicationComponents, cfg *config.Config) {
	v1.POST("/bookmarks/search", searchBookmarksHandler(container))
	v1.GET("/bookmarks/fetch/cursor", fetchBookmarksCursorHandler(container))
}

func searchBookmarksHandler(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		var params search_bookmark_usecase.SearchParams
		if err := c.Bind(&params); err != nil {
			return handleError(c, errors.ValidationError("malformed request body", nil), "searchBookmarks")
		}

		page, err := container.SearchBookmarkUsecase.Execute(c.Request().Context(), params)
		if err != nil {
			return handleError(c, err, "searchBookmarks")
		}

		return c.JSON(http.StatusOK, page)
	}
}

// fetchBookmarksCursorHandler is a GET alias for the default browse
// listing; it reuses the search pipeline with no query, which takes the
// storage-ordered fast path.
func fetchBookmarksCursorHandler(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		var query CursorQueryParams
		if err := c.Bind(&query); err != nil {
			return handleError(c, errors.ValidationError("malformed query parameters", nil), "fetchBookmarksCursor")
		}

		params := search_bookmark_usecase.SearchParams{
			Cursor:         query.Cursor,
			Limit:          query.Limit,
			SpecialFilters: query.SpecialFilters,
		}

		page, err := container.SearchBookmarkUsecase.Execute(c.Request().Context(), params)
		if err != nil {
			return handleError(c, err, "fetchBookmarksCursor")
		}

		return c.JSON(http.StatusOK, page)
	}
}
