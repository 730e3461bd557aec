package domain

import (
	"time"
)

// MatchType reports which signal(s) produced a search result.
// Domain matches are reported as "tag": the frontend treats both as
// exact-match signals and downstream consumers depend on that value,
// so a dedicated "domain" variant is deliberately not introduced.
type MatchType string

const (
	MatchTypeTag      MatchType = "tag"
	MatchTypeVector   MatchType = "vector"
	MatchTypeCombined MatchType = "combined"
)

// SearchResult is the core's ephemeral output type. It is constructed
// fresh per request and never persisted or cached.
type SearchResult struct {
	ID            string         `json:"id"`
	URL           string         `json:"url"`
	Title         *string        `json:"title,omitempty"`
	Summary       *string        `json:"summary,omitempty"`
	Preview       *string        `json:"preview,omitempty"`
	Type          *BookmarkType  `json:"type,omitempty"`
	Status        BookmarkStatus `json:"status"`
	OGImageURL    *string        `json:"og_image_url,omitempty"`
	OGDescription *string        `json:"og_description,omitempty"`
	FaviconURL    *string        `json:"favicon_url,omitempty"`
	Score         float64        `json:"score"`
	MatchType     MatchType      `json:"match_type,omitempty"`
	MatchedTags   []string       `json:"matched_tags,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	Metadata      map[string]any `json:"metadata,omitempty"`
	OpenCount     *int64         `json:"open_count,omitempty"`
	Starred       bool           `json:"starred"`
	Read          bool           `json:"read"`
}

// NewSearchResult builds a SearchResult from a matcher hit.
func NewSearchResult(hit *BookmarkHit, score float64, matchType MatchType) *SearchResult {
	return &SearchResult{
		ID:            hit.Bookmark.ID,
		URL:           hit.Bookmark.URL,
		Title:         hit.Bookmark.Title,
		Summary:       hit.Bookmark.Summary,
		Preview:       hit.Bookmark.Preview,
		Type:          hit.Bookmark.Type,
		Status:        hit.Bookmark.Status,
		OGImageURL:    hit.Bookmark.OGImageURL,
		OGDescription: hit.Bookmark.OGDescription,
		FaviconURL:    hit.Bookmark.FaviconURL,
		Score:         score,
		MatchType:     matchType,
		MatchedTags:   hit.MatchedTags,
		CreatedAt:     hit.Bookmark.CreatedAt,
		Metadata:      hit.Bookmark.Metadata,
		Starred:       hit.Bookmark.Starred,
		Read:          hit.Bookmark.Read,
	}
}

// SearchPage is one page of ranked results plus the cursor contract.
type SearchPage struct {
	Bookmarks  []*SearchResult `json:"bookmarks"`
	NextCursor *string         `json:"next_cursor,omitempty"`
	HasMore    bool            `json:"has_more"`
}
