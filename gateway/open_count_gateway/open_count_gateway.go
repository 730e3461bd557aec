package open_count_gateway

import (
	"context"

	"stash/driver/stash_db"
	"stash/utils/errors"

	"github.com/google/uuid"
)

type OpenCountGateway struct {
	repo *stash_db.StashDBRepository
}

func NewOpenCountGateway(repo *stash_db.StashDBRepository) *OpenCountGateway {
	return &OpenCountGateway{repo: repo}
}

func (g *OpenCountGateway) CountOpens(ctx context.Context, userID uuid.UUID, bookmarkIDs []string) (map[string]int64, error) {
	if g.repo == nil {
		return nil, errors.DatabaseError("database connection not available", nil, nil)
	}

	counts, err := g.repo.CountBookmarkOpens(ctx, userID, bookmarkIDs)
	if err != nil {
		return nil, errors.DatabaseError("error counting bookmark opens", err, map[string]interface{}{
			"user_id": userID.String(),
		})
	}

	return counts, nil
}
