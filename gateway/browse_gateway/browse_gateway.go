package browse_gateway

import (
	"context"

	"stash/domain"
	"stash/driver/stash_db"
	"stash/utils/errors"
	"stash/utils/logger"

	"github.com/google/uuid"
)

// BrowseGateway serves the default listing: no query, no ranking, just
// starred-first reverse-chronological pages straight from storage.
type BrowseGateway struct {
	repo *stash_db.StashDBRepository
}

func NewBrowseGateway(repo *stash_db.StashDBRepository) *BrowseGateway {
	return &BrowseGateway{repo: repo}
}

func (g *BrowseGateway) FetchBookmarksCursor(ctx context.Context, userID uuid.UUID, cursor *string, limit int, specialFilters []domain.SpecialFilter) ([]*domain.Bookmark, error) {
	if g.repo == nil {
		return nil, errors.DatabaseError("database connection not available", nil, nil)
	}

	bookmarks, err := g.repo.FetchBookmarksCursor(ctx, userID, cursor, limit, specialFilters)
	if err != nil {
		return nil, errors.DatabaseError("error fetching bookmarks", err, map[string]interface{}{
			"user_id": userID.String(),
		})
	}

	logger.Logger.Info("browse page fetched",
		"user_id", userID.String(),
		"count", len(bookmarks))

	return bookmarks, nil
}
