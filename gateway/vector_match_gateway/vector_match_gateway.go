package vector_match_gateway

import (
	"context"

	"stash/domain"
	"stash/driver/stash_db"
	"stash/utils/errors"
	"stash/utils/logger"

	"github.com/google/uuid"
)

// defaultRowCap bounds the ANN candidate set. Fifty rows is plenty for
// a personal library page and keeps the index scan cheap.
const defaultRowCap = 50

// VectorMatchGateway scores semantic hits by their cosine distance with a
// linear falloff. Requested tags ride along so fusion can union matched
// tags without a second lookup.
type VectorMatchGateway struct {
	repo   *stash_db.StashDBRepository
	policy domain.ScoringPolicy
	rowCap int
}

func NewVectorMatchGateway(repo *stash_db.StashDBRepository, policy domain.ScoringPolicy, rowCap int) *VectorMatchGateway {
	if rowCap <= 0 {
		rowCap = defaultRowCap
	}
	return &VectorMatchGateway{
		repo:   repo,
		policy: policy,
		rowCap: rowCap,
	}
}

func (g *VectorMatchGateway) SearchByVector(ctx context.Context, userID uuid.UUID, embedding []float32, tags []string, types []domain.BookmarkType, specialFilters []domain.SpecialFilter, matchingDistance float64) ([]*domain.SearchResult, error) {
	if g.repo == nil {
		return nil, errors.DatabaseError("database connection not available", nil, nil)
	}

	hits, err := g.repo.SearchBookmarksByVector(ctx, userID, embedding, tags, types, specialFilters, matchingDistance, g.rowCap)
	if err != nil {
		return nil, errors.DatabaseError("error searching bookmarks by vector", err, map[string]interface{}{
			"user_id": userID.String(),
		})
	}

	results := make([]*domain.SearchResult, 0, len(hits))
	for _, hit := range hits {
		score := g.policy.VectorScore(hit.Distance)
		results = append(results, domain.NewSearchResult(hit, score, domain.MatchTypeVector))
	}

	logger.Logger.Info("vector match completed",
		"user_id", userID.String(),
		"results", len(results))

	return results, nil
}
