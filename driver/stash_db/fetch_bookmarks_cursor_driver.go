package stash_db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"stash/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// FetchBookmarksCursor retrieves bookmarks for the default browse path:
// starred first, then reverse-chronological, keyset-paginated from the
// cursor bookmark's position. This skips the in-memory ranking pipeline
// entirely, so a user opening the app pays O(page size), not O(library).
//
// An unknown cursor id restarts from the top rather than erroring;
// pagination is advisory, not a strict offset.
func (r *StashDBRepository) FetchBookmarksCursor(
	ctx context.Context,
	userID uuid.UUID,
	cursor *string,
	limit int,
	specialFilters []domain.SpecialFilter,
) ([]*domain.Bookmark, error) {
	var (
		cursorCreatedAt *time.Time
		cursorStarred   bool
	)
	if cursor != nil && *cursor != "" {
		createdAt, starred, err := r.fetchCursorPosition(ctx, userID, *cursor)
		if err != nil {
			return nil, err
		}
		cursorCreatedAt = createdAt
		cursorStarred = starred
	}

	filters := newQueryFilters(userID)
	if cursorCreatedAt != nil {
		// Keyset over (starred DESC, created_at DESC). A bare created_at
		// comparison would re-admit already-served starred bookmarks on
		// every page; an unstarred cursor means the starred stretch is
		// fully consumed.
		if cursorStarred {
			filters.AddCondition(fmt.Sprintf("(NOT b.starred OR b.created_at < $%d)", filters.nextParam()), *cursorCreatedAt)
		} else {
			filters.AddCondition(fmt.Sprintf("(NOT b.starred AND b.created_at < $%d)", filters.nextParam()), *cursorCreatedAt)
		}
	}
	filters.AddSpecialFilters(specialFilters)
	limitParam := filters.Bind(limit)

	query := fmt.Sprintf(`
		SELECT %s
		FROM bookmarks b
		WHERE b.user_id = $1%s
		ORDER BY b.starred DESC, b.created_at DESC, b.id DESC
		LIMIT $%d
	`, bookmarkColumns, filters.Clause(), limitParam)

	rows, err := r.pool.Query(ctx, query, filters.Args()...)
	if err != nil {
		slog.ErrorContext(ctx, "error fetching bookmarks with cursor",
			"error", err,
			"cursor", cursor,
			"user_id", userID)
		return nil, fmt.Errorf("error fetching bookmarks with cursor: %w", err)
	}
	defer rows.Close()

	var bookmarks []*domain.Bookmark
	for rows.Next() {
		bookmark, err := scanBookmark(rows)
		if err != nil {
			slog.ErrorContext(ctx, "error scanning bookmark row", "error", err)
			return nil, fmt.Errorf("error scanning bookmark row: %w", err)
		}
		bookmarks = append(bookmarks, bookmark)
	}

	if err := rows.Err(); err != nil {
		slog.ErrorContext(ctx, "error iterating bookmark rows", "error", err)
		return nil, fmt.Errorf("error iterating bookmark rows: %w", err)
	}

	slog.InfoContext(ctx, "fetched bookmarks with cursor",
		"count", len(bookmarks),
		"user_id", userID)

	return bookmarks, nil
}

// fetchCursorPosition resolves the cursor bookmark's sort position,
// its created_at and starred flag. A missing row (deleted bookmark,
// stale cursor) yields a nil timestamp, which callers treat as "start
// from the top".
func (r *StashDBRepository) fetchCursorPosition(ctx context.Context, userID uuid.UUID, bookmarkID string) (*time.Time, bool, error) {
	var (
		createdAt time.Time
		starred   bool
	)
	err := r.pool.QueryRow(ctx,
		`SELECT created_at, starred FROM bookmarks WHERE id = $1 AND user_id = $2`,
		bookmarkID, userID,
	).Scan(&createdAt, &starred)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			slog.InfoContext(ctx, "cursor bookmark not found, restarting from top",
				"bookmark_id", bookmarkID,
				"user_id", userID)
			return nil, false, nil
		}
		slog.ErrorContext(ctx, "error resolving cursor bookmark", "error", err, "bookmark_id", bookmarkID)
		return nil, false, fmt.Errorf("error resolving cursor bookmark: %w", err)
	}
	return &createdAt, starred, nil
}
