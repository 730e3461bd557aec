package stash_db

import (
	"fmt"
	"strings"

	"stash/domain"
)

// bookmarkColumns is the shared projection for bookmark rows. Keeping it
// in one place keeps the scan order consistent across drivers.
const bookmarkColumns = `b.id, b.url, b.title, b.summary, b.preview, b.type, b.status,
		b.og_image_url, b.og_description, b.favicon_url, b.starred, b.read, b.metadata, b.created_at`

// queryFilters composes typed predicates into a parameterized WHERE tail.
// List-valued filters are always bound as arrays; values never get
// concatenated into the SQL text.
type queryFilters struct {
	conds []string
	args  []any
}

// newQueryFilters starts a filter set whose positional parameters follow
// the given base arguments.
func newQueryFilters(baseArgs ...any) *queryFilters {
	return &queryFilters{args: baseArgs}
}

func (f *queryFilters) nextParam() int {
	return len(f.args) + 1
}

// AddTypes restricts results to the given content types.
func (f *queryFilters) AddTypes(types []domain.BookmarkType) {
	if len(types) == 0 {
		return
	}
	values := make([]string, len(types))
	for i, t := range types {
		values[i] = string(t)
	}
	f.conds = append(f.conds, fmt.Sprintf("b.type = ANY($%d)", f.nextParam()))
	f.args = append(f.args, values)
}

// AddSpecialFilters restricts results by read/starred state. Multiple
// filters are OR'd together.
func (f *queryFilters) AddSpecialFilters(filters []domain.SpecialFilter) {
	if len(filters) == 0 {
		return
	}
	var ors []string
	for _, sf := range filters {
		switch sf {
		case domain.SpecialFilterRead:
			ors = append(ors, "b.read = TRUE")
		case domain.SpecialFilterUnread:
			ors = append(ors, "b.read = FALSE")
		case domain.SpecialFilterStar:
			ors = append(ors, "b.starred = TRUE")
		}
	}
	if len(ors) > 0 {
		f.conds = append(f.conds, "("+strings.Join(ors, " OR ")+")")
	}
}

// AddCondition appends a raw condition with its bound arguments. The
// condition string must reference parameters starting at NextParam.
func (f *queryFilters) AddCondition(cond string, args ...any) {
	f.conds = append(f.conds, cond)
	f.args = append(f.args, args...)
}

// Clause renders the accumulated predicates as an " AND ..." tail, or an
// empty string when no filters apply.
func (f *queryFilters) Clause() string {
	if len(f.conds) == 0 {
		return ""
	}
	return " AND " + strings.Join(f.conds, " AND ")
}

// Args returns the full positional argument list, base arguments first.
func (f *queryFilters) Args() []any {
	return f.args
}

// Bind appends a trailing argument (e.g. LIMIT) and returns its
// positional parameter number.
func (f *queryFilters) Bind(arg any) int {
	f.args = append(f.args, arg)
	return len(f.args)
}
