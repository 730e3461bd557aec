package vector_match_port

import (
	"context"

	"stash/domain"

	"github.com/google/uuid"
)

type VectorMatchPort interface {
	SearchByVector(ctx context.Context, userID uuid.UUID, embedding []float32, tags []string, types []domain.BookmarkType, specialFilters []domain.SpecialFilter, matchingDistance float64) ([]*domain.SearchResult, error)
}
