package browse_port

import (
	"context"

	"stash/domain"

	"github.com/google/uuid"
)

type BrowsePort interface {
	FetchBookmarksCursor(ctx context.Context, userID uuid.UUID, cursor *string, limit int, specialFilters []domain.SpecialFilter) ([]*domain.Bookmark, error)
}
