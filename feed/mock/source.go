package mock

import (
	"context"
	"slices"
	"sync"

	"github.com/poiesic/newswire/core"
)

// MockSource is a test double for feed.Source.
// It is safe for concurrent use.
type MockSource struct {
	// FetchFunc is called by Fetch if set.
	// If nil, the canned articles registered for the URL are returned.
	FetchFunc func(ctx context.Context, url string, limit int) []core.Article

	mu        sync.Mutex
	articles  map[string][]core.Article
	calls     []string
	callCount int
}

// NewMockSource creates a mock source with no registered feeds.
func NewMockSource() *MockSource {
	return &MockSource{articles: make(map[string][]core.Article)}
}

// WithArticles registers the articles served for url.
func (m *MockSource) WithArticles(url string, articles ...core.Article) *MockSource {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.articles[url] = articles
	return m
}

// Fetch returns up to limit of the articles registered for url.
func (m *MockSource) Fetch(ctx context.Context, url string, limit int) []core.Article {
	m.mu.Lock()
	m.callCount++
	m.calls = append(m.calls, url)
	fn := m.FetchFunc
	canned := m.articles[url]
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, url, limit)
	}

	if limit < 0 {
		limit = 0
	}
	if len(canned) > limit {
		canned = canned[:limit]
	}
	// Hand out copies so callers can tag articles without racing.
	out := make([]core.Article, len(canned))
	copy(out, canned)
	return out
}

// CallCount returns the number of times Fetch was called.
func (m *MockSource) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// Calls returns the URLs passed to Fetch, in call order.
func (m *MockSource) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.calls)
}

// Reset clears the call history.
func (m *MockSource) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount = 0
	m.calls = nil
}
