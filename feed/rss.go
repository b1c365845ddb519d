package feed

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/poiesic/newswire/core"
)

// unknownSource is reported for feeds that carry no title.
const unknownSource = "Unknown"

// Source fetches up to limit entries from the feed at url.
// Implementations must be safe for concurrent use and must not fail:
// errors are absorbed and reported as an empty slice.
type Source interface {
	Fetch(ctx context.Context, url string, limit int) []core.Article
}

// RSSSource fetches feeds over HTTP and parses them with gofeed.
// RSS, Atom and JSON Feed documents are all accepted.
type RSSSource struct {
	client    *http.Client
	userAgent string
	timeout   time.Duration
	logger    *slog.Logger
}

var _ Source = (*RSSSource)(nil)

// RSSOption configures an RSSSource.
type RSSOption func(*RSSSource)

// WithHTTPClient sets the HTTP client used for downloads.
func WithHTTPClient(client *http.Client) RSSOption {
	return func(s *RSSSource) {
		if client != nil {
			s.client = client
		}
	}
}

// WithTimeout bounds each download. Default is 30 seconds.
func WithTimeout(d time.Duration) RSSOption {
	return func(s *RSSSource) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithUserAgent sets the User-Agent header sent with each request.
func WithUserAgent(ua string) RSSOption {
	return func(s *RSSSource) {
		s.userAgent = ua
	}
}

// WithSourceLogger sets a custom logger.
// Default is slog.Default().
func WithSourceLogger(logger *slog.Logger) RSSOption {
	return func(s *RSSSource) {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
	}
}

// NewRSSSource creates a feed source.
func NewRSSSource(opts ...RSSOption) *RSSSource {
	s := &RSSSource{
		client:  http.DefaultClient,
		timeout: 30 * time.Second,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Fetch downloads and parses the feed at url, returning at most limit
// entries in feed order. Any failure is logged and yields an empty slice.
func (s *RSSSource) Fetch(ctx context.Context, url string, limit int) []core.Article {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	// gofeed parsers keep per-parse state, so each fetch gets its own.
	parser := gofeed.NewParser()
	parser.Client = s.client
	if s.userAgent != "" {
		parser.UserAgent = s.userAgent
	}

	feed, err := parser.ParseURLWithContext(url, ctx)
	if err != nil {
		s.logger.Warn("error fetching feed", "url", url, "err", err)
		return []core.Article{}
	}

	articles := Normalize(feed, limit)
	s.logger.Debug("fetched feed", "url", url, "items", len(feed.Items), "returned", len(articles))
	return articles
}

// Normalize converts the first limit items of a parsed feed into articles.
func Normalize(feed *gofeed.Feed, limit int) []core.Article {
	if limit < 0 {
		limit = 0
	}
	items := feed.Items
	if len(items) > limit {
		items = items[:limit]
	}

	source := feed.Title
	if source == "" {
		source = unknownSource
	}

	articles := make([]core.Article, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		articles = append(articles, normalizeItem(item, source))
	}
	return articles
}

func normalizeItem(item *gofeed.Item, source string) core.Article {
	published := item.PublishedParsed
	if published == nil {
		published = item.UpdatedParsed
	}

	tags := make([]string, 0, len(item.Categories))
	tags = append(tags, item.Categories...)

	return core.Article{
		ID:        core.ArticleID(item.Link, item.Title),
		Title:     item.Title,
		Link:      item.Link,
		Summary:   item.Description,
		Published: core.FormatPublished(published),
		Source:    source,
		Author:    authorName(item),
		Tags:      tags,
	}
}

func authorName(item *gofeed.Item) string {
	if item.Author != nil && item.Author.Name != "" {
		return item.Author.Name
	}
	for _, a := range item.Authors {
		if a != nil && a.Name != "" {
			return a.Name
		}
	}
	return ""
}
