package tools

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/poiesic/newswire/core"
)

// maxReportedTerms caps the search terms echoed back in a SearchResult.
const maxReportedTerms = 10

// HeadlinesResult is returned by GetHeadlines. Sources is set when every
// registered source was queried; Source is set for a single source.
type HeadlinesResult struct {
	Articles []core.Article `json:"articles"`
	Total    int            `json:"total"`
	Sources  []string       `json:"sources,omitempty"`
	Source   string         `json:"source,omitempty"`
}

// SearchResult is returned by SearchNews.
type SearchResult struct {
	Articles        []core.Article `json:"articles"`
	Total           int            `json:"total"`
	Query           string         `json:"query"`
	SearchTermsUsed []string       `json:"search_terms_used"`
}

// CategoryResult is returned by GetCategoryNews.
type CategoryResult struct {
	Articles []core.Article `json:"articles"`
	Total    int            `json:"total"`
	Category string         `json:"category"`
}

// FeedResult is returned by GetRSSFeed.
type FeedResult struct {
	Articles []core.Article `json:"articles"`
	Total    int            `json:"total"`
	FeedURL  string         `json:"feed_url"`
}

// ErrorResult is the payload reported in place of a result when a tool
// call fails.
type ErrorResult struct {
	Error string `json:"error"`
}

// Payload returns the value reported to the caller: the result itself, or
// an ErrorResult carrying the error message.
func Payload(result any, err error) any {
	if err != nil {
		return ErrorResult{Error: err.Error()}
	}
	return result
}

// IsError reports whether payload is an ErrorResult.
func IsError(payload any) bool {
	switch payload.(type) {
	case ErrorResult, *ErrorResult:
		return true
	}
	return false
}

// Marshal encodes payload as JSON indented by two spaces. HTML characters
// are not escaped.
func Marshal(payload any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(payload); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

func truncate(articles []core.Article, limit int) []core.Article {
	if articles == nil {
		return []core.Article{}
	}
	if len(articles) > limit {
		return articles[:limit]
	}
	return articles
}

func reportedTerms(terms []string) []string {
	if len(terms) > maxReportedTerms {
		terms = terms[:maxReportedTerms]
	}
	out := make([]string, len(terms))
	copy(out, terms)
	return out
}
