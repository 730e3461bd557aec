package domain_match_gateway

import (
	"context"

	"stash/domain"
	"stash/driver/stash_db"
	"stash/utils/errors"
	"stash/utils/logger"

	"github.com/google/uuid"
)

// DomainMatchGateway finds bookmarks whose URL lives on the queried
// domain. The driver's substring fetch over-matches (it would return
// "notgithub.com" for "github.com"), so every candidate is re-validated
// against the extracted hostname before it is scored.
type DomainMatchGateway struct {
	repo   *stash_db.StashDBRepository
	policy domain.ScoringPolicy
}

func NewDomainMatchGateway(repo *stash_db.StashDBRepository, policy domain.ScoringPolicy) *DomainMatchGateway {
	return &DomainMatchGateway{
		repo:   repo,
		policy: policy,
	}
}

func (g *DomainMatchGateway) SearchByDomain(ctx context.Context, userID uuid.UUID, queryDomain string, types []domain.BookmarkType, specialFilters []domain.SpecialFilter) ([]*domain.SearchResult, error) {
	if g.repo == nil {
		return nil, errors.DatabaseError("database connection not available", nil, nil)
	}

	hits, err := g.repo.SearchBookmarksByDomain(ctx, userID, queryDomain, types, specialFilters)
	if err != nil {
		return nil, errors.DatabaseError("error searching bookmarks by domain", err, map[string]interface{}{
			"user_id": userID.String(),
			"domain":  queryDomain,
		})
	}

	results := make([]*domain.SearchResult, 0, len(hits))
	for _, hit := range hits {
		bookmarkDomain := domain.ExtractDomain(hit.Bookmark.URL)
		exact, matches := domain.DomainMatches(bookmarkDomain, queryDomain)
		if !matches {
			continue
		}
		score := g.policy.DomainPartialScore
		if exact {
			score = g.policy.DomainExactScore
		}
		// Domain hits report the tag match type; clients treat both as
		// exact-match signals.
		results = append(results, domain.NewSearchResult(hit, score, domain.MatchTypeTag))
	}

	logger.Logger.Info("domain match completed",
		"user_id", userID.String(),
		"domain", queryDomain,
		"candidates", len(hits),
		"validated", len(results))

	return results, nil
}
