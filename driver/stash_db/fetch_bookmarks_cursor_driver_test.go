package stash_db

import (
	"context"
	"testing"
	"time"

	"stash/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStashDBRepository_FetchBookmarksCursor(t *testing.T) {
	userID := uuid.MustParse("44444444-4444-4444-4444-444444444444")
	now := time.Now()
	cursorID := "01J0000000000000000000005"
	cursorCreatedAt := now.Add(-time.Hour)

	tests := []struct {
		name          string
		cursor        *string
		limit         int
		special       []domain.SpecialFilter
		mockSetup     func(pgxmock.PgxPoolIface)
		expectedCount int
		expectedError bool
	}{
		{
			name:  "first page without cursor",
			limit: 2,
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				rows := pgxmock.NewRows(bookmarkRowColumns()).
					AddRow(
						"01J0000000000000000000001", "https://starred.example", strPtr("Starred"), nil, nil,
						strPtr("article"), "READY", nil, nil, nil, true, false,
						map[string]any{}, now,
					).
					AddRow(
						"01J0000000000000000000002", "https://recent.example", strPtr("Recent"), nil, nil,
						nil, "READY", nil, nil, nil, false, false,
						map[string]any{}, now.Add(-time.Minute),
					)

				mock.ExpectQuery(`ORDER BY b\.starred DESC, b\.created_at DESC, b\.id DESC`).
					WithArgs(userID, 2).
					WillReturnRows(rows)
			},
			expectedCount: 2,
		},
		{
			name:   "starred cursor keeps older starred bookmarks reachable",
			cursor: &cursorID,
			limit:  2,
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT created_at, starred FROM bookmarks WHERE id = \$1 AND user_id = \$2`).
					WithArgs(cursorID, userID).
					WillReturnRows(pgxmock.NewRows([]string{"created_at", "starred"}).AddRow(cursorCreatedAt, true))

				rows := pgxmock.NewRows(bookmarkRowColumns()).
					AddRow(
						"01J0000000000000000000006", "https://older.example", strPtr("Older"), nil, nil,
						nil, "READY", nil, nil, nil, false, true,
						map[string]any{}, cursorCreatedAt.Add(-time.Minute),
					)

				mock.ExpectQuery(`\(NOT b\.starred OR b\.created_at < \$2\)`).
					WithArgs(userID, cursorCreatedAt, 2).
					WillReturnRows(rows)
			},
			expectedCount: 1,
		},
		{
			name:   "unstarred cursor excludes the starred stretch entirely",
			cursor: &cursorID,
			limit:  2,
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT created_at, starred FROM bookmarks WHERE id = \$1 AND user_id = \$2`).
					WithArgs(cursorID, userID).
					WillReturnRows(pgxmock.NewRows([]string{"created_at", "starred"}).AddRow(cursorCreatedAt, false))

				rows := pgxmock.NewRows(bookmarkRowColumns()).
					AddRow(
						"01J0000000000000000000007", "https://unstarred.example", strPtr("Unstarred"), nil, nil,
						nil, "READY", nil, nil, nil, false, false,
						map[string]any{}, cursorCreatedAt.Add(-time.Minute),
					)

				mock.ExpectQuery(`\(NOT b\.starred AND b\.created_at < \$2\)`).
					WithArgs(userID, cursorCreatedAt, 2).
					WillReturnRows(rows)
			},
			expectedCount: 1,
		},
		{
			name:   "unknown cursor restarts from top",
			cursor: &cursorID,
			limit:  1,
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT created_at, starred FROM bookmarks`).
					WithArgs(cursorID, userID).
					WillReturnError(pgx.ErrNoRows)

				rows := pgxmock.NewRows(bookmarkRowColumns()).
					AddRow(
						"01J0000000000000000000001", "https://starred.example", strPtr("Starred"), nil, nil,
						nil, "READY", nil, nil, nil, true, false,
						map[string]any{}, now,
					)

				mock.ExpectQuery(`ORDER BY b\.starred DESC`).
					WithArgs(userID, 1).
					WillReturnRows(rows)
			},
			expectedCount: 1,
		},
		{
			name:    "special filter renders predicate",
			limit:   1,
			special: []domain.SpecialFilter{domain.SpecialFilterRead},
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				rows := pgxmock.NewRows(bookmarkRowColumns())

				mock.ExpectQuery(`\(b\.read = TRUE\)`).
					WithArgs(userID, 1).
					WillReturnRows(rows)
			},
			expectedCount: 0,
		},
		{
			name:  "query error propagates",
			limit: 1,
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT`).
					WithArgs(userID, 1).
					WillReturnError(assert.AnError)
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			tt.mockSetup(mock)

			repo := NewStashDBRepository(mock)
			bookmarks, err := repo.FetchBookmarksCursor(context.Background(), userID, tt.cursor, tt.limit, tt.special)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, bookmarks, tt.expectedCount)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestStashDBRepository_FetchBookmarksCursor_StarredOrdering(t *testing.T) {
	userID := uuid.MustParse("44444444-4444-4444-4444-444444444444")
	now := time.Now()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	rows := pgxmock.NewRows(bookmarkRowColumns()).
		AddRow(
			"01J0000000000000000000003", "https://old-but-starred.example", strPtr("Old starred"), nil, nil,
			nil, "READY", nil, nil, nil, true, false,
			map[string]any{}, now.Add(-24*time.Hour),
		).
		AddRow(
			"01J0000000000000000000004", "https://new-unstarred.example", strPtr("New"), nil, nil,
			nil, "READY", nil, nil, nil, false, false,
			map[string]any{}, now,
		)

	mock.ExpectQuery(`ORDER BY b\.starred DESC, b\.created_at DESC, b\.id DESC`).
		WithArgs(userID, 10).
		WillReturnRows(rows)

	repo := NewStashDBRepository(mock)
	bookmarks, err := repo.FetchBookmarksCursor(context.Background(), userID, nil, 10, nil)

	require.NoError(t, err)
	require.Len(t, bookmarks, 2)
	assert.True(t, bookmarks[0].Starred)
	assert.False(t, bookmarks[1].Starred)
	assert.NoError(t, mock.ExpectationsWereMet())
}
