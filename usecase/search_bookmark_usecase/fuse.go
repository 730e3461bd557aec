package search_bookmark_usecase

import "stash/domain"

// fusedEntry accumulates per-bookmark contributions. Exact signals (tag,
// domain) and the vector signal are tracked separately so the final score
// does not depend on which matcher ran first.
type fusedEntry struct {
	result        *domain.SearchResult
	exactScore    float64
	vectorScore   float64
	vectorHit     bool
	contributions int
}

func (e *fusedEntry) mergeTags(tags []string) {
	for _, tag := range tags {
		seen := false
		for _, existing := range e.result.MatchedTags {
			if existing == tag {
				seen = true
				break
			}
		}
		if !seen {
			e.result.MatchedTags = append(e.result.MatchedTags, tag)
		}
	}
}

// fuseResults merges the matchers' outputs into one deduplicated set.
// Tag scores are weighted before insertion, domain scores add as-is, and
// a vector score is dampened when an exact matcher already found the
// bookmark. Any bookmark with two or more contributions reports the
// combined match type.
func fuseResults(policy domain.ScoringPolicy, tagResults, domainResults, vectorResults []*domain.SearchResult) []*domain.SearchResult {
	entries := make(map[string]*fusedEntry)
	order := make([]string, 0, len(tagResults)+len(domainResults)+len(vectorResults))

	entry := func(r *domain.SearchResult) *fusedEntry {
		e, ok := entries[r.ID]
		if !ok {
			clone := *r
			clone.MatchedTags = append([]string(nil), r.MatchedTags...)
			e = &fusedEntry{result: &clone}
			entries[r.ID] = e
			order = append(order, r.ID)
			return e
		}
		e.mergeTags(r.MatchedTags)
		return e
	}

	for _, r := range tagResults {
		e := entry(r)
		e.exactScore += r.Score * policy.TagWeight
		e.contributions++
	}

	for _, r := range domainResults {
		e := entry(r)
		e.exactScore += r.Score
		e.contributions++
	}

	for _, r := range vectorResults {
		e := entry(r)
		e.vectorScore = r.Score
		e.vectorHit = true
		e.contributions++
	}

	results := make([]*domain.SearchResult, 0, len(entries))
	for _, id := range order {
		e := entries[id]

		switch {
		case e.vectorHit && e.contributions == 1:
			e.result.Score = e.vectorScore
			e.result.MatchType = domain.MatchTypeVector
		case e.vectorHit:
			e.result.Score = e.exactScore + e.vectorScore*policy.VectorWeight
			e.result.MatchType = domain.MatchTypeCombined
		case e.contributions > 1:
			e.result.Score = e.exactScore
			e.result.MatchType = domain.MatchTypeCombined
		default:
			e.result.Score = e.exactScore
			e.result.MatchType = domain.MatchTypeTag
		}

		results = append(results, e.result)
	}

	return results
}
