package stash_db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// CountBookmarkOpens aggregates open events per bookmark in a single
// set-based query. Issuing one query per bookmark would fan out N+1
// under load, so the id list is always bound as an array.
func (r *StashDBRepository) CountBookmarkOpens(ctx context.Context, userID uuid.UUID, bookmarkIDs []string) (map[string]int64, error) {
	counts := make(map[string]int64, len(bookmarkIDs))
	if len(bookmarkIDs) == 0 {
		return counts, nil
	}

	query := `
		SELECT bookmark_id, COUNT(*) AS open_count
		FROM bookmark_opens
		WHERE user_id = $1
		AND bookmark_id = ANY($2)
		GROUP BY bookmark_id
	`

	rows, err := r.pool.Query(ctx, query, userID, bookmarkIDs)
	if err != nil {
		slog.ErrorContext(ctx, "error counting bookmark opens",
			"error", err,
			"user_id", userID,
			"bookmark_count", len(bookmarkIDs))
		return nil, fmt.Errorf("error counting bookmark opens: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			bookmarkID string
			count      int64
		)
		if err := rows.Scan(&bookmarkID, &count); err != nil {
			slog.ErrorContext(ctx, "error scanning open count row", "error", err)
			return nil, fmt.Errorf("error scanning open count row: %w", err)
		}
		counts[bookmarkID] = count
	}

	if err := rows.Err(); err != nil {
		slog.ErrorContext(ctx, "error iterating open count rows", "error", err)
		return nil, fmt.Errorf("error iterating open count rows: %w", err)
	}

	return counts, nil
}
