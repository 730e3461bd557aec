package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// BookmarkStatus represents the ingestion lifecycle of a bookmark.
// A bookmark is created PENDING and moves to READY once the enrichment
// pipeline has scraped, summarized and embedded it.
type BookmarkStatus string

const (
	BookmarkStatusPending    BookmarkStatus = "PENDING"
	BookmarkStatusProcessing BookmarkStatus = "PROCESSING"
	BookmarkStatusReady      BookmarkStatus = "READY"
	BookmarkStatusError      BookmarkStatus = "ERROR"
)

// BookmarkType is the enumerated content category assigned by enrichment.
type BookmarkType string

const (
	BookmarkTypeArticle BookmarkType = "article"
	BookmarkTypeVideo   BookmarkType = "video"
	BookmarkTypeImage   BookmarkType = "image"
	BookmarkTypePDF     BookmarkType = "pdf"
	BookmarkTypeNote    BookmarkType = "note"
)

// ParseBookmarkType validates a raw type string from the request boundary.
func ParseBookmarkType(raw string) (BookmarkType, error) {
	switch BookmarkType(strings.ToLower(strings.TrimSpace(raw))) {
	case BookmarkTypeArticle:
		return BookmarkTypeArticle, nil
	case BookmarkTypeVideo:
		return BookmarkTypeVideo, nil
	case BookmarkTypeImage:
		return BookmarkTypeImage, nil
	case BookmarkTypePDF:
		return BookmarkTypePDF, nil
	case BookmarkTypeNote:
		return BookmarkTypeNote, nil
	default:
		return "", fmt.Errorf("unknown bookmark type: %q", raw)
	}
}

// SpecialFilter narrows a search by reading state or starred state.
// Multiple filters are OR'd together at the storage layer.
type SpecialFilter string

const (
	SpecialFilterRead   SpecialFilter = "READ"
	SpecialFilterUnread SpecialFilter = "UNREAD"
	SpecialFilterStar   SpecialFilter = "STAR"
)

// ParseSpecialFilter validates a raw filter string from the request boundary.
func ParseSpecialFilter(raw string) (SpecialFilter, error) {
	switch SpecialFilter(strings.ToUpper(strings.TrimSpace(raw))) {
	case SpecialFilterRead:
		return SpecialFilterRead, nil
	case SpecialFilterUnread:
		return SpecialFilterUnread, nil
	case SpecialFilterStar:
		return SpecialFilterStar, nil
	default:
		return "", fmt.Errorf("unknown special filter: %q", raw)
	}
}

// Bookmark represents a saved URL owned by a user. The search core reads
// bookmarks but never mutates them; creation and enrichment happen in the
// ingestion pipeline. Bookmark IDs are opaque sortable strings (ULIDs),
// which makes the ID a usable pagination tie-breaker.
type Bookmark struct {
	ID            string         `json:"id" db:"id"`
	UserID        uuid.UUID      `json:"user_id" db:"user_id"`
	URL           string         `json:"url" db:"url"`
	Title         *string        `json:"title,omitempty" db:"title"`
	Summary       *string        `json:"summary,omitempty" db:"summary"`
	Preview       *string        `json:"preview,omitempty" db:"preview"`
	Type          *BookmarkType  `json:"type,omitempty" db:"type"`
	Status        BookmarkStatus `json:"status" db:"status"`
	OGImageURL    *string        `json:"og_image_url,omitempty" db:"og_image_url"`
	OGDescription *string        `json:"og_description,omitempty" db:"og_description"`
	FaviconURL    *string        `json:"favicon_url,omitempty" db:"favicon_url"`
	Starred       bool           `json:"starred" db:"starred"`
	Read          bool           `json:"read" db:"read"`
	Metadata      map[string]any `json:"metadata,omitempty" db:"metadata"`
	CreatedAt     time.Time      `json:"created_at" db:"created_at"`
	Tags          []Tag          `json:"tags,omitempty"`
}

// Tag is a user-owned label; names are unique per user.
type Tag struct {
	ID     uuid.UUID `json:"id" db:"id"`
	UserID uuid.UUID `json:"user_id" db:"user_id"`
	Name   string    `json:"name" db:"name"`
}

// BookmarkHit is a matcher-level result: a bookmark plus the raw signal
// the matcher found it by. Scoring happens above the storage layer so the
// ranking formula stays in one place.
type BookmarkHit struct {
	Bookmark    Bookmark
	MatchedTags []string
	// Distance is the cosine distance of the closest embedding slot.
	// Only meaningful for vector matches.
	Distance float64
}
