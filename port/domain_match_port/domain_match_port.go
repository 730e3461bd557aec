package domain_match_port

import (
	"context"

	"stash/domain"

	"github.com/google/uuid"
)

type DomainMatchPort interface {
	SearchByDomain(ctx context.Context, userID uuid.UUID, queryDomain string, types []domain.BookmarkType, specialFilters []domain.SpecialFilter) ([]*domain.SearchResult, error)
}
