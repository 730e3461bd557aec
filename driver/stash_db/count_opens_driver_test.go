package stash_db

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStashDBRepository_CountBookmarkOpens(t *testing.T) {
	userID := uuid.MustParse("55555555-5555-5555-5555-555555555555")

	tests := []struct {
		name          string
		bookmarkIDs   []string
		mockSetup     func(pgxmock.PgxPoolIface)
		expected      map[string]int64
		expectedError bool
	}{
		{
			name:        "counts grouped per bookmark",
			bookmarkIDs: []string{"01J0000000000000000000001", "01J0000000000000000000002"},
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				rows := pgxmock.NewRows([]string{"bookmark_id", "open_count"}).
					AddRow("01J0000000000000000000001", int64(7)).
					AddRow("01J0000000000000000000002", int64(1))

				mock.ExpectQuery(`GROUP BY bookmark_id`).
					WithArgs(userID, []string{"01J0000000000000000000001", "01J0000000000000000000002"}).
					WillReturnRows(rows)
			},
			expected: map[string]int64{
				"01J0000000000000000000001": 7,
				"01J0000000000000000000002": 1,
			},
		},
		{
			name:        "bookmarks without opens are simply absent",
			bookmarkIDs: []string{"01J0000000000000000000003"},
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				rows := pgxmock.NewRows([]string{"bookmark_id", "open_count"})

				mock.ExpectQuery(`GROUP BY bookmark_id`).
					WithArgs(userID, []string{"01J0000000000000000000003"}).
					WillReturnRows(rows)
			},
			expected: map[string]int64{},
		},
		{
			name:        "empty id list short-circuits",
			bookmarkIDs: nil,
			mockSetup:   func(mock pgxmock.PgxPoolIface) {},
			expected:    map[string]int64{},
		},
		{
			name:        "query error propagates",
			bookmarkIDs: []string{"01J0000000000000000000001"},
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT`).
					WithArgs(userID, []string{"01J0000000000000000000001"}).
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
			counts, err := repo.CountBookmarkOpens(context.Background(), userID, tt.bookmarkIDs)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, counts)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
