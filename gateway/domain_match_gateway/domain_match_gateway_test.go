package domain_match_gateway

import (
	"context"
	"testing"
	"time"

	"stash/domain"
	"stash/driver/stash_db"
	"stash/utils/logger"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func bookmarkRowColumns() []string {
	return []string{
		"id", "url", "title", "summary", "preview", "type", "status",
		"og_image_url", "og_description", "favicon_url", "starred", "read", "metadata", "created_at",
	}
}

func addBookmarkRow(rows *pgxmock.Rows, id, url string) *pgxmock.Rows {
	return rows.AddRow(
		id, url, strPtr("title"), nil, nil,
		nil, "READY", nil, nil, nil, false, false,
		map[string]any{}, time.Now(),
	)
}

func TestDomainMatchGateway_SearchByDomain(t *testing.T) {
	logger.InitLogger()
	userID := uuid.MustParse("66666666-6666-6666-6666-666666666666")
	policy := domain.DefaultScoringPolicy()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	rows := pgxmock.NewRows(bookmarkRowColumns())
	rows = addBookmarkRow(rows, "01J0000000000000000000001", "https://github.com/golang/go")
	rows = addBookmarkRow(rows, "01J0000000000000000000002", "https://gist.github.com/snippet")
	rows = addBookmarkRow(rows, "01J0000000000000000000003", "https://notgithub.com/page")

	mock.ExpectQuery(`b\.url ILIKE`).
		WithArgs(userID, "github.com").
		WillReturnRows(rows)

	gw := NewDomainMatchGateway(stash_db.NewStashDBRepository(mock), policy)
	results, err := gw.SearchByDomain(context.Background(), userID, "github.com", nil, nil)

	require.NoError(t, err)
	// substring impostor filtered out, exact and subdomain kept
	require.Len(t, results, 2)

	assert.Equal(t, "01J0000000000000000000001", results[0].ID)
	assert.Equal(t, policy.DomainExactScore, results[0].Score)
	assert.Equal(t, domain.MatchTypeTag, results[0].MatchType)

	assert.Equal(t, "01J0000000000000000000002", results[1].ID)
	assert.Equal(t, policy.DomainPartialScore, results[1].Score)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDomainMatchGateway_SearchByDomain_DriverError(t *testing.T) {
	logger.InitLogger()
	userID := uuid.MustParse("66666666-6666-6666-6666-666666666666")

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`SELECT`).
		WithArgs(userID, "github.com").
		WillReturnError(assert.AnError)

	gw := NewDomainMatchGateway(stash_db.NewStashDBRepository(mock), domain.DefaultScoringPolicy())
	_, err = gw.SearchByDomain(context.Background(), userID, "github.com", nil, nil)

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDomainMatchGateway_NilRepository(t *testing.T) {
	logger.InitLogger()
	gw := NewDomainMatchGateway(nil, domain.DefaultScoringPolicy())

	_, err := gw.SearchByDomain(context.Background(), uuid.New(), "github.com", nil, nil)
	assert.Error(t, err)
}
