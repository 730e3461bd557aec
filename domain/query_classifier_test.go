package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyQuery(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		expectedDomain bool
		expectedValue  string
	}{
		{"bare domain", "github.com", true, "github.com"},
		{"www prefix", "www.github.com", true, "github.com"},
		{"full url", "https://github.com/golang/go", true, "github.com"},
		{"url with query string", "https://news.ycombinator.com?id=1", true, "news.ycombinator.com"},
		{"url with fragment", "http://example.com#section", true, "example.com"},
		{"subdomain", "gist.github.com", true, "gist.github.com"},
		{"uppercase normalized", "GitHub.COM", true, "github.com"},
		{"surrounding whitespace", "  github.com  ", true, "github.com"},
		{"free text", "machine learning papers", false, ""},
		{"single word", "golang", false, ""},
		{"empty string", "", false, ""},
		{"trailing dot rejected", "github.com.", false, ""},
		{"spaces inside", "git hub.com", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ClassifyQuery(tt.query)
			assert.Equal(t, tt.expectedDomain, result.IsDomain)
			assert.Equal(t, tt.expectedValue, result.Domain)
		})
	}
}

func TestExtractDomain(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "example.com", "example.com"},
		{"scheme stripped", "https://example.com", "example.com"},
		{"www stripped", "www.example.com", "example.com"},
		{"path truncated", "example.com/path/to/page", "example.com"},
		{"query truncated", "example.com?q=1", "example.com"},
		{"fragment truncated", "example.com#top", "example.com"},
		{"all combined", "HTTPS://www.Example.com/path?q=1#top", "example.com"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractDomain(tt.input))
		})
	}
}

func TestExtractDomain_Idempotent(t *testing.T) {
	inputs := []string{
		"https://www.github.com/foo",
		"gist.github.com",
		"example.com?q=1",
		"news.ycombinator.com",
	}

	for _, input := range inputs {
		once := ExtractDomain(input)
		assert.Equal(t, once, ExtractDomain(once), "ExtractDomain must be idempotent on normalized input %q", input)
	}
}

func TestDomainMatches(t *testing.T) {
	tests := []struct {
		name            string
		bookmarkDomain  string
		queryDomain     string
		expectedExact   bool
		expectedMatches bool
	}{
		{"exact match", "github.com", "github.com", true, true},
		{"subdomain of query", "gist.github.com", "github.com", false, true},
		{"query is subdomain", "github.com", "gist.github.com", false, true},
		{"substring false positive rejected", "notgithub.com", "github.com", false, false},
		{"unrelated", "gitlab.com", "github.com", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exact, matches := DomainMatches(tt.bookmarkDomain, tt.queryDomain)
			assert.Equal(t, tt.expectedExact, exact)
			assert.Equal(t, tt.expectedMatches, matches)
		})
	}
}
