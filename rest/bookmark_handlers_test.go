package rest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"stash/di"
	"stash/domain"
	"stash/mocks"
	"stash/usecase/search_bookmark_usecase"
	"stash/utils/logger"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testUserID = uuid.MustParse("88888888-8888-8888-8888-888888888888")

func newTestContainer() (*di.ApplicationComponents, *mocks.MockTagMatchPort, *mocks.MockBrowsePort, *mocks.MockOpenCountPort) {
	tagMatch := &mocks.MockTagMatchPort{}
	browse := &mocks.MockBrowsePort{}
	openCount := &mocks.MockOpenCountPort{}

	usecase := search_bookmark_usecase.NewSearchBookmarkUsecase(
		tagMatch,
		&mocks.MockDomainMatchPort{},
		&mocks.MockVectorMatchPort{},
		&mocks.MockEmbeddingPort{},
		openCount,
		browse,
		domain.DefaultScoringPolicy(),
		search_bookmark_usecase.DefaultOptions(),
	)

	return &di.ApplicationComponents{SearchBookmarkUsecase: usecase}, tagMatch, browse, openCount
}

func authedContext(e *echo.Echo, req *http.Request, rec *httptest.ResponseRecorder) echo.Context {
	ctx := domain.SetUserContext(req.Context(), &domain.UserContext{UserID: testUserID})
	c := e.NewContext(req.WithContext(ctx), rec)
	return c
}

func TestSearchBookmarksHandler(t *testing.T) {
	logger.InitLogger()
	container, tagMatch, _, openCount := newTestContainer()

	tagMatch.On("SearchByTags", mock.Anything, testUserID, []string{"go"}, mock.Anything, mock.Anything).
		Return([]*domain.SearchResult{
			{ID: "01J0000000000000000000001", URL: "https://go.dev", Score: 100, MatchType: domain.MatchTypeTag, MatchedTags: []string{"go"}},
		}, nil)
	openCount.On("CountOpens", mock.Anything, testUserID, mock.Anything).
		Return(map[string]int64{}, nil)

	e := echo.New()
	body := `{"tags":["go"]}`
	req := httptest.NewRequest(http.MethodPost, "/v1/bookmarks/search", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec)

	err := searchBookmarksHandler(container)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var page domain.SearchPage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	require.Len(t, page.Bookmarks, 1)
	assert.Equal(t, "01J0000000000000000000001", page.Bookmarks[0].ID)
	assert.False(t, page.HasMore)
}

func TestSearchBookmarksHandler_ValidationError(t *testing.T) {
	logger.InitLogger()
	container, _, _, _ := newTestContainer()

	e := echo.New()
	body := `{"types":["podcast"]}`
	req := httptest.NewRequest(http.MethodPost, "/v1/bookmarks/search", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec)

	err := searchBookmarksHandler(container)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "VALIDATION_ERROR", resp["code"])
}

func TestSearchBookmarksHandler_MalformedBody(t *testing.T) {
	logger.InitLogger()
	container, _, _, _ := newTestContainer()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/bookmarks/search", strings.NewReader("{not json"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec)

	err := searchBookmarksHandler(container)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFetchBookmarksCursorHandler(t *testing.T) {
	logger.InitLogger()
	container, _, browse, openCount := newTestContainer()

	bookmarks := []*domain.Bookmark{
		{ID: "01J0000000000000000000002", UserID: testUserID, URL: "https://a.example", Status: domain.BookmarkStatusReady, Starred: true, CreatedAt: time.Now()},
		{ID: "01J0000000000000000000001", UserID: testUserID, URL: "https://b.example", Status: domain.BookmarkStatusReady, CreatedAt: time.Now().Add(-time.Hour)},
	}
	browse.On("FetchBookmarksCursor", mock.Anything, testUserID, (*string)(nil), 11, mock.Anything).
		Return(bookmarks, nil)
	openCount.On("CountOpens", mock.Anything, testUserID, mock.Anything).
		Return(map[string]int64{"01J0000000000000000000002": 3}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/bookmarks/fetch/cursor?limit=10", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec)

	err := fetchBookmarksCursorHandler(container)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var page domain.SearchPage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	require.Len(t, page.Bookmarks, 2)
	assert.True(t, page.Bookmarks[0].Starred)
	require.NotNil(t, page.Bookmarks[0].OpenCount)
	assert.Equal(t, int64(3), *page.Bookmarks[0].OpenCount)
	assert.False(t, page.HasMore)
}

func TestSearchBookmarksHandler_Unauthenticated(t *testing.T) {
	logger.InitLogger()
	container, _, _, _ := newTestContainer()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/bookmarks/search", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := searchBookmarksHandler(container)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
