// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package tools

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/poiesic/newswire/category"
	"github.com/poiesic/newswire/config"
	"github.com/poiesic/newswire/core"
	"github.com/poiesic/newswire/feed"
	"github.com/poiesic/newswire/search"
)

// Operation names used to prefix unexpected faults.
const (
	opHeadlines = "Error fetching headlines"
	opSearch    = "Error searching news"
	opCategory  = "Error fetching category news"
	opFeed      = "Error fetching RSS feed"
)

// Service implements the news tools on top of a feed source.
type Service struct {
	cfg        *config.Config
	source     feed.Source
	aggregator *feed.Aggregator
	searcher   *search.Searcher
	categories *category.Table
	logger     *slog.Logger
}

// Option configures a Service.
type Option func(*Service) error

// WithConfig sets the source registry and fetch settings.
// Default is config.DefaultConfig().
func WithConfig(cfg *config.Config) Option {
	return func(s *Service) error {
		if cfg == nil {
			return ErrConfigRequired
		}
		s.cfg = cfg
		return nil
	}
}

// WithSource sets the feed source. Default is a feed.RSSSource built from
// the configured fetch timeout and user agent.
func WithSource(source feed.Source) Option {
	return func(s *Service) error {
		if source == nil {
			return feed.ErrSourceRequired
		}
		s.source = source
		return nil
	}
}

// WithSearcher sets the searcher used by SearchNews.
// Default uses the built-in synonym table.
func WithSearcher(searcher *search.Searcher) Option {
	return func(s *Service) error {
		if searcher == nil {
			return ErrSearcherRequired
		}
		s.searcher = searcher
		return nil
	}
}

// WithCategories sets the category table used by GetCategoryNews.
// Default is category.DefaultTable().
func WithCategories(table *category.Table) Option {
	return func(s *Service) error {
		if table == nil {
			return ErrCategoriesRequired
		}
		s.categories = table
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewService creates a tool service. Call Close to release its worker pool.
func NewService(opts ...Option) (*Service, error) {
	s := &Service{
		cfg:        config.DefaultConfig(),
		categories: category.DefaultTable(),
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	if err := s.cfg.Validate(); err != nil {
		return nil, err
	}

	if s.searcher == nil {
		searcher, err := search.NewSearcher(search.WithLogger(s.logger))
		if err != nil {
			return nil, err
		}
		s.searcher = searcher
	}

	if s.source == nil {
		s.source = feed.NewRSSSource(
			feed.WithTimeout(s.cfg.FetchTimeout),
			feed.WithUserAgent(s.cfg.UserAgent),
			feed.WithSourceLogger(s.logger),
		)
	}

	aggregator, err := feed.NewAggregator(s.source,
		feed.WithPoolSize(s.cfg.PoolSize),
		feed.WithLogger(s.logger))
	if err != nil {
		return nil, err
	}
	s.aggregator = aggregator

	return s, nil
}

// Close releases the service's worker pool.
func (s *Service) Close() error {
	s.aggregator.Release()
	return nil
}

// Config returns the service configuration.
func (s *Service) Config() *config.Config {
	return s.cfg
}

// Searcher returns the searcher used by SearchNews.
func (s *Service) Searcher() *search.Searcher {
	return s.searcher
}

// Categories returns the category table used by GetCategoryNews.
func (s *Service) Categories() *category.Table {
	return s.categories
}

// GetHeadlines returns the newest headlines. With source "all" it takes
// HeadlinesPerSource entries from every registered source and sorts them
// newest first; otherwise it returns up to limit entries of the named source
// in feed order.
func (s *Service) GetHeadlines(ctx context.Context, source string, limit int) (*HeadlinesResult, error) {
	return guard(s, opHeadlines, func() (*HeadlinesResult, error) {
		limit = core.ClampLimit(limit)

		if source == config.AllSources {
			articles, err := s.aggregator.FetchAll(ctx, s.cfg.Sources, s.cfg.HeadlinesPerSource)
			if err != nil {
				return nil, err
			}
			search.SortByPublished(articles)
			articles = truncate(articles, limit)
			return &HeadlinesResult{
				Articles: articles,
				Total:    len(articles),
				Sources:  s.cfg.SourceNames(),
			}, nil
		}

		src, ok := s.cfg.FindSource(source)
		if !ok {
			available := append([]string{config.AllSources}, s.cfg.SourceNames()...)
			return nil, notFound(ErrUnknownSource, "Unknown source '%s'. Available sources: %s",
				source, strings.Join(available, ", "))
		}

		articles := s.aggregator.FetchOne(ctx, src, limit)
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		articles = truncate(articles, limit)
		return &HeadlinesResult{
			Articles: articles,
			Total:    len(articles),
			Source:   source,
		}, nil
	})
}

// SearchNews searches SearchPerSource entries from every registered source
// for query and returns the best limit matches.
func (s *Service) SearchNews(ctx context.Context, query string, limit int) (*SearchResult, error) {
	return s.SearchNewsWithMonitor(ctx, query, limit, nil)
}

// SearchNewsWithMonitor is SearchNews with monitoring of the search pipeline.
// The monitor is not called for a blank query.
func (s *Service) SearchNewsWithMonitor(ctx context.Context, query string, limit int, monitor search.SearchMonitor) (*SearchResult, error) {
	return guard(s, opSearch, func() (*SearchResult, error) {
		if strings.TrimSpace(query) == "" {
			return nil, validation(ErrEmptyQuery, "Query cannot be empty")
		}
		limit = core.ClampLimit(limit)

		articles, err := s.aggregator.FetchAll(ctx, s.cfg.Sources, s.cfg.SearchPerSource)
		if err != nil {
			return nil, err
		}

		matches, terms := s.searcher.SearchWithMonitor(articles, query, monitor)
		matches = truncate(matches, limit)

		s.logger.Info("searched news", "query", query, "candidates", len(articles), "returned", len(matches))
		return &SearchResult{
			Articles:        matches,
			Total:           len(matches),
			Query:           query,
			SearchTermsUsed: reportedTerms(terms),
		}, nil
	})
}

// GetCategoryNews returns the newest articles from every registered source
// that mention one of the category's keywords.
func (s *Service) GetCategoryNews(ctx context.Context, name string, limit int) (*CategoryResult, error) {
	return guard(s, opCategory, func() (*CategoryResult, error) {
		if !s.categories.Has(name) {
			return nil, notFound(ErrUnknownCategory, "Unknown category '%s'. Available categories: %s",
				name, strings.Join(s.categories.Names(), ", "))
		}
		limit = core.ClampLimit(limit)

		articles, err := s.aggregator.FetchAll(ctx, s.cfg.Sources, s.cfg.SearchPerSource)
		if err != nil {
			return nil, err
		}

		filtered := s.categories.Filter(articles, name)
		search.SortByPublished(filtered)
		filtered = truncate(filtered, limit)
		return &CategoryResult{
			Articles: filtered,
			Total:    len(filtered),
			Category: name,
		}, nil
	})
}

// GetRSSFeed returns up to limit entries of an arbitrary feed, in feed order.
func (s *Service) GetRSSFeed(ctx context.Context, feedURL string, limit int) (*FeedResult, error) {
	return guard(s, opFeed, func() (*FeedResult, error) {
		if strings.TrimSpace(feedURL) == "" {
			return nil, validation(ErrEmptyFeedURL, "Feed URL cannot be empty")
		}
		limit = core.ClampLimit(limit)

		articles := s.source.Fetch(ctx, feedURL, limit)
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		articles = truncate(articles, limit)
		return &FeedResult{
			Articles: articles,
			Total:    len(articles),
			FeedURL:  feedURL,
		}, nil
	})
}

// guard runs fn, converting panics and errors other than ToolErrors into a
// ToolError prefixed with op. No result is returned alongside an error.
func guard[T any](s *Service, op string, fn func() (*T, error)) (result *T, err error) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("tool operation panicked", "op", op, "panic", r)
			result = nil
			err = &ToolError{
				Category: CategoryInternal,
				Message:  fmt.Sprintf("%s: %v", op, r),
				Err:      fmt.Errorf("%w: %v", ErrToolPanic, r),
			}
		}
	}()

	result, err = fn()
	if err == nil {
		return result, nil
	}

	var te *ToolError
	if !errors.As(err, &te) {
		s.logger.Warn("tool operation failed", "op", op, "err", err)
		te = fault(op, err)
	}
	return nil, te
}
