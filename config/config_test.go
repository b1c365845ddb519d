package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t,
		[]string{"bbc", "reuters", "ap", "techcrunch", "cnn", "npr", "guardian", "nytimes"},
		cfg.SourceNames())
	assert.Equal(t, 5, cfg.HeadlinesPerSource)
	assert.Equal(t, 10, cfg.SearchPerSource)
	assert.Equal(t, 30*time.Second, cfg.FetchTimeout)
	assert.NoError(t, cfg.Validate())
}

func TestDefaultListenAddress(t *testing.T) {
	t.Run("PORT set", func(t *testing.T) {
		t.Setenv("PORT", "9123")
		assert.Equal(t, "0.0.0.0:9123", DefaultListenAddress())
	})

	t.Run("PORT unset", func(t *testing.T) {
		t.Setenv("PORT", "")
		assert.Equal(t, "0.0.0.0:8000", DefaultListenAddress())
	})
}

func TestNewConfig(t *testing.T) {
	cfg := NewConfig(
		WithSources(Source{Name: "local", URL: "http://localhost/feed"}),
		WithHeadlinesPerSource(3),
		WithSearchPerSource(20),
		WithFetchTimeout(time.Second),
		WithPoolSize(2),
		WithUserAgent("test-agent"),
		WithListenAddress(":9000"),
	)

	require.NoError(t, cfg.Validate())
	assert.Equal(t, []string{"local"}, cfg.SourceNames())
	assert.Equal(t, 3, cfg.HeadlinesPerSource)
	assert.Equal(t, 20, cfg.SearchPerSource)
	assert.Equal(t, time.Second, cfg.FetchTimeout)
	assert.Equal(t, 2, cfg.PoolSize)
	assert.Equal(t, "test-agent", cfg.UserAgent)
	assert.Equal(t, "0.0.0.0:9000", cfg.ListenAddress)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		opts    []Option
		mutate  func(*Config)
		wantErr error
	}{
		{name: "no sources", opts: []Option{WithSources()}, wantErr: ErrNoSources},
		{name: "missing name", opts: []Option{WithSources(Source{URL: "http://x"})}, wantErr: ErrSourceMissingName},
		{name: "missing url", opts: []Option{WithSources(Source{Name: "x"})}, wantErr: ErrSourceMissingURL},
		{name: "reserved name", opts: []Option{WithSources(Source{Name: "ALL", URL: "http://x"})}, wantErr: ErrSourceReservedName},
		{
			name:    "duplicate name",
			opts:    []Option{WithSources(Source{Name: "a", URL: "http://x"}, Source{Name: " A ", URL: "http://y"})},
			wantErr: ErrDuplicateSource,
		},
		{name: "zero headlines per source", opts: []Option{WithHeadlinesPerSource(0)}, wantErr: ErrInvalidPerSource},
		{name: "search per source too large", opts: []Option{WithSearchPerSource(51)}, wantErr: ErrInvalidPerSource},
		{name: "zero timeout", opts: []Option{WithFetchTimeout(0)}, wantErr: ErrInvalidFetchTimeout},
		{name: "zero pool", opts: []Option{WithPoolSize(0)}, wantErr: ErrInvalidPoolSize},
		{name: "empty listen address", opts: []Option{WithListenAddress("")}, wantErr: ErrMissingListenAddress},
		{name: "zero shutdown timeout", mutate: func(c *Config) { c.ShutdownTimeout = 0 }, wantErr: ErrInvalidShutdownPeriod},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig(tt.opts...)
			if tt.mutate != nil {
				tt.mutate(cfg)
			}
			assert.ErrorIs(t, cfg.Validate(), tt.wantErr)
		})
	}
}

func TestNormalize(t *testing.T) {
	cfg := NewConfig(WithSources(Source{Name: "  BBC ", URL: " http://feeds.bbci.co.uk/news/rss.xml "}))
	cfg.Normalize()

	src, ok := cfg.FindSource("bbc")
	require.True(t, ok)
	assert.Equal(t, "http://feeds.bbci.co.uk/news/rss.xml", src.URL)

	_, ok = cfg.FindSource("cnn")
	assert.False(t, ok)
}

func TestParse(t *testing.T) {
	t.Run("overlays defaults", func(t *testing.T) {
		cfg, err := Parse([]byte(`
sources:
  - name: hn
    url: https://news.ycombinator.com/rss
search_per_source: 25
fetch_timeout: 5s
`))
		require.NoError(t, err)
		assert.Equal(t, []string{"hn"}, cfg.SourceNames())
		assert.Equal(t, 25, cfg.SearchPerSource)
		assert.Equal(t, 5*time.Second, cfg.FetchTimeout)
		assert.Equal(t, 5, cfg.HeadlinesPerSource)
	})

	t.Run("empty document keeps defaults", func(t *testing.T) {
		cfg, err := Parse([]byte(""))
		require.NoError(t, err)
		assert.Len(t, cfg.Sources, 8)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Parse([]byte("sources: [unterminated"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing config")
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := Parse([]byte("pool_size: 0\n"))
		assert.ErrorIs(t, err, ErrInvalidPoolSize)
	})
}

func TestLoad(t *testing.T) {
	t.Run("reads file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "newswire.yaml")
		require.NoError(t, os.WriteFile(path, []byte("headlines_per_source: 2\n"), 0o644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 2, cfg.HeadlinesPerSource)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
