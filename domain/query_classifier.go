package domain

import (
	"regexp"
	"strings"
)

// QueryClassification is the result of deciding whether a free-text query
// looks like a domain/URL or needs semantic search.
type QueryClassification struct {
	IsDomain bool
	Domain   string
}

// domainPattern matches a bare hostname: dot-separated labels of
// letters, digits and hyphens, with at least one dot.
var domainPattern = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?(\.[a-z0-9]([a-z0-9-]*[a-z0-9])?)+$`)

// ClassifyQuery decides whether the raw query string is a domain lookup.
// Purely syntactic; never fails. An empty string is not a domain.
func ClassifyQuery(query string) QueryClassification {
	normalized := ExtractDomain(query)
	if normalized == "" || !domainPattern.MatchString(normalized) {
		return QueryClassification{}
	}
	return QueryClassification{IsDomain: true, Domain: normalized}
}

// ExtractDomain normalizes a domain-like string: lowercase, strip the
// scheme, strip a leading "www.", truncate at the first path, query or
// fragment separator. Idempotent on already-normalized input.
func ExtractDomain(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	if i := strings.Index(s, "://"); i >= 0 {
		s = s[i+3:]
	}
	s = strings.TrimPrefix(s, "www.")
	if i := strings.IndexAny(s, "/?#"); i >= 0 {
		s = s[:i]
	}
	return s
}

// DomainMatches re-validates a candidate bookmark domain against the
// query domain. Substring fetches can return false positives (e.g.
// "notgithub.com" contains "github.com"), so only exact matches and
// subdomain/superdomain relationships count.
func DomainMatches(bookmarkDomain, queryDomain string) (exact bool, matches bool) {
	if bookmarkDomain == queryDomain {
		return true, true
	}
	if strings.HasSuffix(bookmarkDomain, "."+queryDomain) ||
		strings.HasSuffix(queryDomain, "."+bookmarkDomain) {
		return false, true
	}
	return false, false
}
