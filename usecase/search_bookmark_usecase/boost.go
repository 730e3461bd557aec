package search_bookmark_usecase

import (
	"context"

	"stash/domain"

	"github.com/google/uuid"
)

// applyOpenBoost adds the logarithmic popularity boost to every fused
// result. The lookup is a single batched query over all candidate ids;
// bookmarks the user never opened keep their score and a nil OpenCount.
func (u *SearchBookmarkUsecase) applyOpenBoost(ctx context.Context, userID uuid.UUID, results []*domain.SearchResult) error {
	if len(results) == 0 {
		return nil
	}

	ids := make([]string, 0, len(results))
	for _, r := range results {
		ids = append(ids, r.ID)
	}

	counts, err := u.openCountPort.CountOpens(ctx, userID, ids)
	if err != nil {
		u.logger.Error("open count lookup failed",
			"error", err,
			"user_id", userID)
		return err
	}

	for _, r := range results {
		if count, ok := counts[r.ID]; ok && count > 0 {
			r.Score += u.policy.OpenBoost(count)
			c := count
			r.OpenCount = &c
		}
	}

	return nil
}
