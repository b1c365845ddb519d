package feed

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/newswire/config"
	"github.com/poiesic/newswire/core"
)

// Aggregator fetches many registry sources concurrently and merges the results.
type Aggregator struct {
	source Source
	pool   *ants.Pool
	logger *slog.Logger
}

// AggregatorOption configures an Aggregator.
type AggregatorOption func(*Aggregator) error

// WithPoolSize sets the worker pool size for concurrent fetching.
// Default is 8, with a minimum of 1.
func WithPoolSize(size int) AggregatorOption {
	return func(a *Aggregator) error {
		if size < 1 {
			size = 1
		}

		// Release old pool
		if a.pool != nil {
			a.pool.Release()
		}

		pool, err := a.newPool(size)
		if err != nil {
			return err
		}
		a.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) AggregatorOption {
	return func(a *Aggregator) error {
		if logger == nil {
			logger = slog.Default()
		}
		a.logger = logger
		return nil
	}
}

// NewAggregator creates an aggregator that fetches through source.
func NewAggregator(source Source, opts ...AggregatorOption) (*Aggregator, error) {
	if source == nil {
		return nil, ErrSourceRequired
	}

	a := &Aggregator{
		source: source,
		logger: slog.Default(),
	}

	pool, err := a.newPool(8)
	if err != nil {
		return nil, err
	}
	a.pool = pool

	// Apply options (may override defaults)
	for _, opt := range opts {
		if optErr := opt(a); optErr != nil {
			a.Release()
			return nil, optErr
		}
	}

	return a, nil
}

// FetchOne fetches a single registry source and tags its articles with the
// source name.
func (a *Aggregator) FetchOne(ctx context.Context, src config.Source, limit int) []core.Article {
	return tagged(a.source.Fetch(ctx, src.URL, limit), src.Name)
}

// FetchAll fetches up to perSource entries from every source and returns
// them concatenated in registry order, each tagged with its source name.
// It returns only after every fetch has finished. Failed feeds contribute
// nothing; the only errors are context cancellation and a released pool.
func (a *Aggregator) FetchAll(ctx context.Context, sources []config.Source, perSource int) ([]core.Article, error) {
	results := make([][]core.Article, len(sources))

	var wg sync.WaitGroup
	for i, src := range sources {
		// Submit blocks while the shared pool is busy; stop handing out
		// work once the caller has gone away.
		if err := ctx.Err(); err != nil {
			wg.Wait()
			return nil, err
		}

		wg.Add(1)
		err := a.pool.Submit(func() {
			defer wg.Done()
			results[i] = a.FetchOne(ctx, src, perSource)
		})
		if err != nil {
			wg.Done()
			wg.Wait()
			a.logger.Error("error submitting feed fetch", "source", src.Name, "err", err)
			if errors.Is(err, ants.ErrPoolClosed) {
				return nil, ErrAggregatorReleased
			}
			return nil, err
		}
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	total := 0
	for _, r := range results {
		total += len(r)
	}
	articles := make([]core.Article, 0, total)
	for _, r := range results {
		articles = append(articles, r...)
	}

	a.logger.Debug("aggregated feeds", "sources", len(sources), "articles", len(articles))
	return articles, nil
}

// newPool creates a worker pool that reports fetch panics through the
// aggregator's logger. A panicking fetch contributes no articles.
func (a *Aggregator) newPool(size int) (*ants.Pool, error) {
	return ants.NewPool(size, ants.WithPanicHandler(func(p any) {
		a.logger.Error("feed fetch panicked", "panic", p)
	}))
}

// Release releases the worker pool.
// The aggregator should not be used after calling Release.
func (a *Aggregator) Release() {
	if a.pool != nil {
		a.pool.Release()
	}
}

func tagged(articles []core.Article, name string) []core.Article {
	for i := range articles {
		articles[i] = articles[i].WithSourceName(name)
	}
	return articles
}
