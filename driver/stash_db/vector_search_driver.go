package stash_db

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"stash/domain"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

// embeddingSlots are the per-bookmark embedding columns. A bookmark
// matches on whichever non-null slot is closest to the query vector;
// adding a new embedding type only means extending this list.
var embeddingSlots = []string{"title_embedding", "summary_embedding"}

// leastDistanceExpr renders the minimum cosine distance over all
// non-null embedding slots. NULL slots fall back to 2.0, the cosine
// distance maximum, so they never win the LEAST.
func leastDistanceExpr(param int) string {
	parts := make([]string, len(embeddingSlots))
	for i, col := range embeddingSlots {
		parts[i] = fmt.Sprintf("COALESCE(b.%s <=> $%d, 2.0)", col, param)
	}
	if len(parts) == 1 {
		return parts[0]
	}
	return "LEAST(" + strings.Join(parts, ", ") + ")"
}

// notNullSlotsExpr requires at least one embedding slot to be populated,
// excluding bookmarks the ingestion pipeline has not embedded yet.
func notNullSlotsExpr() string {
	parts := make([]string, len(embeddingSlots))
	for i, col := range embeddingSlots {
		parts[i] = fmt.Sprintf("b.%s IS NOT NULL", col)
	}
	return "(" + strings.Join(parts, " OR ") + ")"
}

// SearchBookmarksByVector runs approximate-nearest-neighbor search over
// the bookmark embedding slots. The threshold is relative: every
// candidate within matchingDistance of the best distance is kept, capped
// at rowCap rows. Requested tags restrict the candidate pool, so the
// best-distance anchor is computed over tagged bookmarks only; the
// matched subset is reported back per hit.
func (r *StashDBRepository) SearchBookmarksByVector(
	ctx context.Context,
	userID uuid.UUID,
	embedding []float32,
	tags []string,
	types []domain.BookmarkType,
	specialFilters []domain.SpecialFilter,
	matchingDistance float64,
	rowCap int,
) ([]*domain.BookmarkHit, error) {
	if len(embedding) == 0 {
		return []*domain.BookmarkHit{}, nil
	}
	if tags == nil {
		tags = []string{}
	}

	filters := newQueryFilters(userID, pgvector.NewVector(embedding), tags)
	filters.AddTypes(types)
	filters.AddSpecialFilters(specialFilters)

	rowCapParam := filters.Bind(rowCap)
	distanceParam := filters.Bind(matchingDistance)

	tagPredicate := ""
	if len(tags) > 0 {
		tagPredicate = `
			AND EXISTS (
				SELECT 1
				FROM bookmark_tags bt
				INNER JOIN tags t ON t.id = bt.tag_id
				WHERE bt.bookmark_id = b.id AND t.name = ANY($3)
			)`
	}

	query := fmt.Sprintf(`
		WITH candidates AS (
			SELECT %s,
				%s AS distance,
				COALESCE((
					SELECT ARRAY_AGG(t.name)
					FROM bookmark_tags bt
					INNER JOIN tags t ON t.id = bt.tag_id
					WHERE bt.bookmark_id = b.id AND t.name = ANY($3)
				), '{}') AS matched_tags
			FROM bookmarks b
			WHERE b.user_id = $1
			AND %s%s%s
			ORDER BY distance ASC
			LIMIT $%d
		)
		SELECT c.*
		FROM candidates c
		WHERE c.distance <= (SELECT MIN(distance) FROM candidates) + $%d
		ORDER BY c.distance ASC
	`, bookmarkColumns, leastDistanceExpr(2), notNullSlotsExpr(), tagPredicate, filters.Clause(), rowCapParam, distanceParam)

	rows, err := r.pool.Query(ctx, query, filters.Args()...)
	if err != nil {
		slog.ErrorContext(ctx, "error searching bookmarks by vector",
			"error", err,
			"user_id", userID)
		return nil, fmt.Errorf("error searching bookmarks by vector: %w", err)
	}
	defer rows.Close()

	var hits []*domain.BookmarkHit
	for rows.Next() {
		var (
			distance    float64
			matchedTags []string
		)
		bookmark, err := scanBookmark(rows, &distance, &matchedTags)
		if err != nil {
			slog.ErrorContext(ctx, "error scanning vector search row", "error", err)
			return nil, fmt.Errorf("error scanning vector search row: %w", err)
		}
		hits = append(hits, &domain.BookmarkHit{
			Bookmark:    *bookmark,
			MatchedTags: matchedTags,
			Distance:    distance,
		})
	}

	if err := rows.Err(); err != nil {
		slog.ErrorContext(ctx, "error iterating vector search rows", "error", err)
		return nil, fmt.Errorf("error iterating vector search rows: %w", err)
	}

	slog.InfoContext(ctx, "vector search completed",
		"user_id", userID,
		"matching_distance", matchingDistance,
		"results_count", len(hits))

	return hits, nil
}
