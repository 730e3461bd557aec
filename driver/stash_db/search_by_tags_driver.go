package stash_db

import (
	"context"
	"fmt"
	"log/slog"

	"stash/domain"

	"github.com/google/uuid"
)

// SearchBookmarksByTags fetches bookmarks tagged with at least one of the
// requested tags (OR semantics). The matched tag names come back per
// bookmark so the caller can score by matched fraction.
func (r *StashDBRepository) SearchBookmarksByTags(
	ctx context.Context,
	userID uuid.UUID,
	tags []string,
	types []domain.BookmarkType,
	specialFilters []domain.SpecialFilter,
) ([]*domain.BookmarkHit, error) {
	if len(tags) == 0 {
		return []*domain.BookmarkHit{}, nil
	}

	filters := newQueryFilters(userID, tags)
	filters.AddTypes(types)
	filters.AddSpecialFilters(specialFilters)

	query := fmt.Sprintf(`
		SELECT %s,
			ARRAY_AGG(DISTINCT t.name) AS matched_tags
		FROM bookmarks b
		INNER JOIN bookmark_tags bt ON bt.bookmark_id = b.id
		INNER JOIN tags t ON t.id = bt.tag_id
		WHERE b.user_id = $1
		AND t.name = ANY($2)%s
		GROUP BY %s
	`, bookmarkColumns, filters.Clause(), bookmarkColumns)

	rows, err := r.pool.Query(ctx, query, filters.Args()...)
	if err != nil {
		slog.ErrorContext(ctx, "error searching bookmarks by tags",
			"error", err,
			"tags", tags,
			"user_id", userID)
		return nil, fmt.Errorf("error searching bookmarks by tags: %w", err)
	}
	defer rows.Close()

	var hits []*domain.BookmarkHit
	for rows.Next() {
		var matchedTags []string
		bookmark, err := scanBookmark(rows, &matchedTags)
		if err != nil {
			slog.ErrorContext(ctx, "error scanning tag search row", "error", err)
			return nil, fmt.Errorf("error scanning tag search row: %w", err)
		}
		hits = append(hits, &domain.BookmarkHit{Bookmark: *bookmark, MatchedTags: matchedTags})
	}

	if err := rows.Err(); err != nil {
		slog.ErrorContext(ctx, "error iterating tag search rows", "error", err)
		return nil, fmt.Errorf("error iterating tag search rows: %w", err)
	}

	slog.InfoContext(ctx, "tag search completed",
		"tags", tags,
		"user_id", userID,
		"results_count", len(hits))

	return hits, nil
}
