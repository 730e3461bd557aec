package stash_db

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"stash/domain"

	"github.com/google/uuid"
)

// SearchBookmarksByDomain fetches bookmarks whose URL contains the given
// domain (case-insensitive substring). The substring fetch over-matches;
// callers re-validate the extracted domain before scoring.
func (r *StashDBRepository) SearchBookmarksByDomain(
	ctx context.Context,
	userID uuid.UUID,
	domainName string,
	types []domain.BookmarkType,
	specialFilters []domain.SpecialFilter,
) ([]*domain.BookmarkHit, error) {
	if strings.TrimSpace(domainName) == "" {
		return []*domain.BookmarkHit{}, nil
	}

	filters := newQueryFilters(userID, domainName)
	filters.AddTypes(types)
	filters.AddSpecialFilters(specialFilters)

	query := fmt.Sprintf(`
		SELECT %s
		FROM bookmarks b
		WHERE b.user_id = $1
		AND b.url ILIKE '%%' || $2 || '%%'%s
		ORDER BY b.created_at DESC, b.id DESC
	`, bookmarkColumns, filters.Clause())

	rows, err := r.pool.Query(ctx, query, filters.Args()...)
	if err != nil {
		slog.ErrorContext(ctx, "error searching bookmarks by domain",
			"error", err,
			"domain", domainName,
			"user_id", userID)
		return nil, fmt.Errorf("error searching bookmarks by domain: %w", err)
	}
	defer rows.Close()

	var hits []*domain.BookmarkHit
	for rows.Next() {
		bookmark, err := scanBookmark(rows)
		if err != nil {
			slog.ErrorContext(ctx, "error scanning domain search row", "error", err)
			return nil, fmt.Errorf("error scanning domain search row: %w", err)
		}
		hits = append(hits, &domain.BookmarkHit{Bookmark: *bookmark})
	}

	if err := rows.Err(); err != nil {
		slog.ErrorContext(ctx, "error iterating domain search rows", "error", err)
		return nil, fmt.Errorf("error iterating domain search rows: %w", err)
	}

	slog.InfoContext(ctx, "domain search completed",
		"domain", domainName,
		"user_id", userID,
		"results_count", len(hits))

	return hits, nil
}
