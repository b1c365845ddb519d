package config

import (
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	"github.com/poiesic/newswire/core"
)

// AllSources is the pseudo source name that selects every configured feed.
const AllSources = "all"

// Source is a named feed in the source registry.
type Source struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// Config holds the settings shared by the feed client and the tool server.
type Config struct {
	// Sources is the ordered feed registry. Order determines aggregation
	// order and the order sources are listed in responses.
	Sources []Source `yaml:"sources"`

	// HeadlinesPerSource is how many entries each feed contributes to an
	// "all sources" headline request.
	// Default: 5
	HeadlinesPerSource int `yaml:"headlines_per_source"`

	// SearchPerSource is how many entries each feed contributes to the
	// candidate set for search and category requests.
	// Default: 10
	SearchPerSource int `yaml:"search_per_source"`

	// FetchTimeout bounds a single feed download.
	// Default: 30s
	FetchTimeout time.Duration `yaml:"fetch_timeout"`

	// PoolSize is the number of feeds fetched concurrently.
	// Default: 8
	PoolSize int `yaml:"pool_size"`

	// UserAgent is sent with every feed request.
	UserAgent string `yaml:"user_agent"`

	// ListenAddress is the host:port the HTTP transport binds to.
	// Default: 0.0.0.0:$PORT, or 0.0.0.0:8000 when PORT is unset.
	ListenAddress string `yaml:"listen_address"`

	// ShutdownTimeout bounds graceful shutdown of the HTTP transport.
	// Default: 10s
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// DefaultSources returns the built-in news feeds.
func DefaultSources() []Source {
	return []Source{
		{Name: "bbc", URL: "http://feeds.bbci.co.uk/news/rss.xml"},
		{Name: "reuters", URL: "https://feeds.reuters.com/reuters/topNews"},
		{Name: "ap", URL: "https://feeds.apnews.com/rss/apf-topnews"},
		{Name: "techcrunch", URL: "https://techcrunch.com/feed/"},
		{Name: "cnn", URL: "http://rss.cnn.com/rss/edition.rss"},
		{Name: "npr", URL: "https://feeds.npr.org/1001/rss.xml"},
		{Name: "guardian", URL: "https://www.theguardian.com/world/rss"},
		{Name: "nytimes", URL: "https://rss.nytimes.com/services/xml/rss/nyt/HomePage.xml"},
	}
}

// DefaultListenAddress returns 0.0.0.0 on $PORT, falling back to 8000.
func DefaultListenAddress() string {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	return net.JoinHostPort("0.0.0.0", port)
}

// DefaultConfig returns a Config with the built-in sources and defaults.
func DefaultConfig() *Config {
	return &Config{
		Sources:            DefaultSources(),
		HeadlinesPerSource: 5,
		SearchPerSource:    10,
		FetchTimeout:       30 * time.Second,
		PoolSize:           8,
		UserAgent:          "newswire/1.0 (+https://github.com/poiesic/newswire)",
		ListenAddress:      DefaultListenAddress(),
		ShutdownTimeout:    10 * time.Second,
	}
}

// Option is a functional option for configuring a Config.
type Option func(*Config)

// WithSources replaces the source registry.
func WithSources(sources ...Source) Option {
	return func(c *Config) {
		c.Sources = sources
	}
}

// WithHeadlinesPerSource sets how many entries each feed contributes to "all" headlines.
func WithHeadlinesPerSource(n int) Option {
	return func(c *Config) {
		c.HeadlinesPerSource = n
	}
}

// WithSearchPerSource sets how many entries each feed contributes to searches.
func WithSearchPerSource(n int) Option {
	return func(c *Config) {
		c.SearchPerSource = n
	}
}

// WithFetchTimeout sets the per-feed download timeout.
func WithFetchTimeout(d time.Duration) Option {
	return func(c *Config) {
		c.FetchTimeout = d
	}
}

// WithPoolSize sets the number of concurrent feed fetches.
func WithPoolSize(size int) Option {
	return func(c *Config) {
		c.PoolSize = size
	}
}

// WithUserAgent sets the User-Agent header for feed requests.
func WithUserAgent(ua string) Option {
	return func(c *Config) {
		c.UserAgent = ua
	}
}

// WithListenAddress sets the HTTP transport address.
func WithListenAddress(addr string) Option {
	return func(c *Config) {
		c.ListenAddress = addr
	}
}

// NewConfig creates a Config with the default values and applies the provided options.
func NewConfig(opts ...Option) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Normalize ensures the configuration is in a canonical form.
// Source names are lower-cased and trimmed, URLs trimmed, and a bare
// ":port" listen address is bound to all interfaces.
func (c *Config) Normalize() {
	for i := range c.Sources {
		c.Sources[i].Name = strings.ToLower(strings.TrimSpace(c.Sources[i].Name))
		c.Sources[i].URL = strings.TrimSpace(c.Sources[i].URL)
	}
	if strings.HasPrefix(c.ListenAddress, ":") {
		c.ListenAddress = "0.0.0.0" + c.ListenAddress
	}
}

// Validate checks that the configuration is valid and complete.
// It automatically normalizes the configuration before validation.
func (c *Config) Validate() error {
	c.Normalize()

	if len(c.Sources) == 0 {
		return ErrNoSources
	}
	seen := make(map[string]bool, len(c.Sources))
	for i, s := range c.Sources {
		switch {
		case s.Name == "":
			return fmt.Errorf("sources[%d]: %w", i, ErrSourceMissingName)
		case s.Name == AllSources:
			return fmt.Errorf("sources[%d]: %w", i, ErrSourceReservedName)
		case s.URL == "":
			return fmt.Errorf("sources[%d] (%s): %w", i, s.Name, ErrSourceMissingURL)
		case seen[s.Name]:
			return fmt.Errorf("%w: %s", ErrDuplicateSource, s.Name)
		}
		seen[s.Name] = true
	}

	if !validPerSource(c.HeadlinesPerSource) || !validPerSource(c.SearchPerSource) {
		return ErrInvalidPerSource
	}
	if c.FetchTimeout <= 0 {
		return ErrInvalidFetchTimeout
	}
	if c.PoolSize < 1 {
		return ErrInvalidPoolSize
	}
	if c.ListenAddress == "" {
		return ErrMissingListenAddress
	}
	if c.ShutdownTimeout <= 0 {
		return ErrInvalidShutdownPeriod
	}
	return nil
}

// SourceNames returns the registry keys in order.
func (c *Config) SourceNames() []string {
	names := make([]string, len(c.Sources))
	for i, s := range c.Sources {
		names[i] = s.Name
	}
	return names
}

// FindSource returns the registry entry called name.
func (c *Config) FindSource(name string) (Source, bool) {
	for _, s := range c.Sources {
		if s.Name == name {
			return s, true
		}
	}
	return Source{}, false
}

func validPerSource(n int) bool {
	return n >= core.MinLimit && n <= core.MaxLimit
}
