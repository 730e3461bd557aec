package search_bookmark_usecase

import (
	"sort"

	"stash/domain"
)

// paginate sorts the fused results into a total order and cuts the
// requested page. The cursor is the id of the last bookmark the caller
// saw; an unknown cursor (deleted bookmark, changed parameters) restarts
// from the top rather than erroring.
func paginate(results []*domain.SearchResult, cursor *string, limit int) *domain.SearchPage {
	// Score descending, then id descending. ULIDs sort by creation time,
	// so ties go to the newest bookmark and the order is total.
	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].ID > results[j].ID
	})

	start := 0
	if cursor != nil && *cursor != "" {
		for i, r := range results {
			if r.ID == *cursor {
				start = i + 1
				break
			}
		}
	}

	end := start + limit
	hasMore := end < len(results)
	if end > len(results) {
		end = len(results)
	}

	page := make([]*domain.SearchResult, 0, end-start)
	page = append(page, results[start:end]...)

	var nextCursor *string
	if hasMore && len(page) > 0 {
		id := page[len(page)-1].ID
		nextCursor = &id
	}

	return &domain.SearchPage{
		Bookmarks:  page,
		NextCursor: nextCursor,
		HasMore:    hasMore,
	}
}
