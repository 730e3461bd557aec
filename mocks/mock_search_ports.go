// Package mocks provides hand-written testify mocks for the search ports.
package mocks

import (
	"context"

	"stash/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockTagMatchPort struct {
	mock.Mock
}

func (m *MockTagMatchPort) SearchByTags(ctx context.Context, userID uuid.UUID, tags []string, types []domain.BookmarkType, specialFilters []domain.SpecialFilter) ([]*domain.SearchResult, error) {
	args := m.Called(ctx, userID, tags, types, specialFilters)
	var results []*domain.SearchResult
	if v := args.Get(0); v != nil {
		results = v.([]*domain.SearchResult)
	}
	return results, args.Error(1)
}

type MockDomainMatchPort struct {
	mock.Mock
}

func (m *MockDomainMatchPort) SearchByDomain(ctx context.Context, userID uuid.UUID, queryDomain string, types []domain.BookmarkType, specialFilters []domain.SpecialFilter) ([]*domain.SearchResult, error) {
	args := m.Called(ctx, userID, queryDomain, types, specialFilters)
	var results []*domain.SearchResult
	if v := args.Get(0); v != nil {
		results = v.([]*domain.SearchResult)
	}
	return results, args.Error(1)
}

type MockVectorMatchPort struct {
	mock.Mock
}

func (m *MockVectorMatchPort) SearchByVector(ctx context.Context, userID uuid.UUID, embedding []float32, tags []string, types []domain.BookmarkType, specialFilters []domain.SpecialFilter, matchingDistance float64) ([]*domain.SearchResult, error) {
	args := m.Called(ctx, userID, embedding, tags, types, specialFilters, matchingDistance)
	var results []*domain.SearchResult
	if v := args.Get(0); v != nil {
		results = v.([]*domain.SearchResult)
	}
	return results, args.Error(1)
}

type MockEmbeddingPort struct {
	mock.Mock
}

func (m *MockEmbeddingPort) EmbedQuery(ctx context.Context, query string) ([]float32, error) {
	args := m.Called(ctx, query)
	var vec []float32
	if v := args.Get(0); v != nil {
		vec = v.([]float32)
	}
	return vec, args.Error(1)
}

type MockOpenCountPort struct {
	mock.Mock
}

func (m *MockOpenCountPort) CountOpens(ctx context.Context, userID uuid.UUID, bookmarkIDs []string) (map[string]int64, error) {
	args := m.Called(ctx, userID, bookmarkIDs)
	var counts map[string]int64
	if v := args.Get(0); v != nil {
		counts = v.(map[string]int64)
	}
	return counts, args.Error(1)
}

type MockBrowsePort struct {
	mock.Mock
}

func (m *MockBrowsePort) FetchBookmarksCursor(ctx context.Context, userID uuid.UUID, cursor *string, limit int, specialFilters []domain.SpecialFilter) ([]*domain.Bookmark, error) {
	args := m.Called(ctx, userID, cursor, limit, specialFilters)
	var bookmarks []*domain.Bookmark
	if v := args.Get(0); v != nil {
		bookmarks = v.([]*domain.Bookmark)
	}
	return bookmarks, args.Error(1)
}
