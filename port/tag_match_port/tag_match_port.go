package tag_match_port

import (
	"context"

	"stash/domain"

	"github.com/google/uuid"
)

type TagMatchPort interface {
	SearchByTags(ctx context.Context, userID uuid.UUID, tags []string, types []domain.BookmarkType, specialFilters []domain.SpecialFilter) ([]*domain.SearchResult, error)
}
