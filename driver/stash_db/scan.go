package stash_db

import (
	"stash/domain"

	"github.com/jackc/pgx/v5"
)

// scanBookmark scans one bookmark row in the bookmarkColumns order,
// followed by any driver-specific trailing columns.
func scanBookmark(rows pgx.Rows, extra ...any) (*domain.Bookmark, error) {
	var (
		b      domain.Bookmark
		typ    *string
		status string
	)

	dest := []any{
		&b.ID,
		&b.URL,
		&b.Title,
		&b.Summary,
		&b.Preview,
		&typ,
		&status,
		&b.OGImageURL,
		&b.OGDescription,
		&b.FaviconURL,
		&b.Starred,
		&b.Read,
		&b.Metadata,
		&b.CreatedAt,
	}
	dest = append(dest, extra...)

	if err := rows.Scan(dest...); err != nil {
		return nil, err
	}

	if typ != nil {
		t := domain.BookmarkType(*typ)
		b.Type = &t
	}
	b.Status = domain.BookmarkStatus(status)

	return &b, nil
}
