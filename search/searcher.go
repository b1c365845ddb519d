package search

import (
	"log/slog"

	"github.com/poiesic/newswire/core"
)

// Searcher runs the expand, match/score and rank pipeline over a set of articles.
type Searcher struct {
	synonyms *SynonymTable
	expander *Expander
	logger   *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithSynonyms replaces the synonym table used for query expansion.
// Default is DefaultSynonyms().
func WithSynonyms(table *SynonymTable) Option {
	return func(s *Searcher) error {
		if table == nil {
			return ErrSynonymTableRequired
		}
		s.synonyms = table
		return nil
	}
}

// NewSearcher creates a new searcher.
func NewSearcher(opts ...Option) (*Searcher, error) {
	s := &Searcher{
		synonyms: DefaultSynonyms(),
		logger:   slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	expander, err := NewExpander(s.synonyms)
	if err != nil {
		return nil, err
	}
	s.expander = expander

	return s, nil
}

// Expand returns the search terms a query expands to.
func (s *Searcher) Expand(query string) []string {
	return s.expander.Expand(query)
}

// Search returns the articles matching query, ranked by relevance, together
// with the terms the query expanded to. A blank query returns no articles
// and no terms.
func (s *Searcher) Search(articles []core.Article, query string) ([]core.Article, []string) {
	return s.SearchWithMonitor(articles, query, nil)
}

// SearchWithMonitor is Search with monitoring.
// The monitor receives callbacks at each stage of the search process.
func (s *Searcher) SearchWithMonitor(articles []core.Article, query string, monitor SearchMonitor) ([]core.Article, []string) {
	// Use noop monitor if none provided
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	monitor.Start(query)

	terms := s.expander.Expand(query)
	monitor.AfterExpansion(terms)
	if len(terms) == 0 {
		s.logger.Debug("query expanded to no terms", "query", query)
		monitor.Finish([]core.Article{})
		return []core.Article{}, []string{}
	}

	results := matchAndScore(articles, terms, monitor)
	Rank(results)

	s.logger.Debug("search complete",
		"query", query,
		"terms", len(terms),
		"candidates", len(articles),
		"matches", len(results))

	monitor.Finish(results)
	return results, terms
}
