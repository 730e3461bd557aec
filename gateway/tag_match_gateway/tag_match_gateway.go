package tag_match_gateway

import (
	"context"

	"stash/domain"
	"stash/driver/stash_db"
	"stash/utils/errors"
	"stash/utils/logger"

	"github.com/google/uuid"
)

// TagMatchGateway scores tag-driven hits. The driver reports which of the
// requested tags each bookmark carries; the score is the matched fraction
// scaled to the tag ceiling.
type TagMatchGateway struct {
	repo   *stash_db.StashDBRepository
	policy domain.ScoringPolicy
}

func NewTagMatchGateway(repo *stash_db.StashDBRepository, policy domain.ScoringPolicy) *TagMatchGateway {
	return &TagMatchGateway{
		repo:   repo,
		policy: policy,
	}
}

func (g *TagMatchGateway) SearchByTags(ctx context.Context, userID uuid.UUID, tags []string, types []domain.BookmarkType, specialFilters []domain.SpecialFilter) ([]*domain.SearchResult, error) {
	if g.repo == nil {
		return nil, errors.DatabaseError("database connection not available", nil, nil)
	}

	hits, err := g.repo.SearchBookmarksByTags(ctx, userID, tags, types, specialFilters)
	if err != nil {
		return nil, errors.DatabaseError("error searching bookmarks by tags", err, map[string]interface{}{
			"user_id":   userID.String(),
			"tag_count": len(tags),
		})
	}

	results := make([]*domain.SearchResult, 0, len(hits))
	for _, hit := range hits {
		score := g.policy.TagScore(len(hit.MatchedTags), len(tags))
		results = append(results, domain.NewSearchResult(hit, score, domain.MatchTypeTag))
	}

	logger.Logger.Info("tag match completed",
		"user_id", userID.String(),
		"requested_tags", len(tags),
		"results", len(results))

	return results, nil
}
