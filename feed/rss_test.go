package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/poiesic/newswire/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rssFixture = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:dc="http://purl.org/dc/elements/1.1/">
<channel>
  <title>Example News</title>
  <link>https://example.com</link>
  <description>Example feed</description>
  <item>
    <title>Apple unveils new iPhone</title>
    <link>https://example.com/iphone</link>
    <description>The smartphone launch event.</description>
    <pubDate>Mon, 06 Jan 2025 10:30:00 GMT</pubDate>
    <dc:creator>Jane Doe</dc:creator>
    <category>tech</category>
    <category>mobile</category>
  </item>
  <item>
    <title>Election results are in</title>
    <link>https://example.com/election</link>
    <description>Voters went to the polls.</description>
    <pubDate>Sun, 05 Jan 2025 08:00:00 GMT</pubDate>
  </item>
  <item>
    <title>Undated item</title>
    <link>https://example.com/undated</link>
    <description>No date here.</description>
  </item>
</channel>
</rss>`

const atomFixture = `<?xml version="1.0" encoding="utf-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>Atom Wire</title>
  <id>urn:example:atom</id>
  <updated>2025-01-07T12:00:00Z</updated>
  <entry>
    <title>Rocket reaches orbit</title>
    <link href="https://example.org/rocket"/>
    <id>urn:example:rocket</id>
    <updated>2025-01-07T12:00:00Z</updated>
    <summary>Space launch succeeded.</summary>
    <author><name>Sam Roe</name></author>
  </entry>
</feed>`

const untitledFixture = `<?xml version="1.0"?>
<rss version="2.0"><channel>
  <item><title>Lonely</title><link>https://example.com/lonely</link></item>
</channel></rss>`

func feedServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	serve := func(body string) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/xml")
			_, _ = w.Write([]byte(body))
		}
	}
	mux.HandleFunc("/rss", serve(rssFixture))
	mux.HandleFunc("/atom", serve(atomFixture))
	mux.HandleFunc("/untitled", serve(untitledFixture))
	mux.HandleFunc("/garbage", serve("this is not a feed"))
	mux.HandleFunc("/slow", func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
		_, _ = w.Write([]byte(rssFixture))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestRSSSource_FetchRSS(t *testing.T) {
	srv := feedServer(t)
	src := NewRSSSource(WithHTTPClient(srv.Client()))

	articles := src.Fetch(context.Background(), srv.URL+"/rss", 10)
	require.Len(t, articles, 3)

	first := articles[0]
	assert.Equal(t, "Apple unveils new iPhone", first.Title)
	assert.Equal(t, "https://example.com/iphone", first.Link)
	assert.Equal(t, "The smartphone launch event.", first.Summary)
	assert.Equal(t, "2025-01-06T10:30:00", first.Published)
	assert.Equal(t, "Example News", first.Source)
	assert.Equal(t, "Jane Doe", first.Author)
	assert.Equal(t, []string{"tech", "mobile"}, first.Tags)
	assert.Equal(t, core.ArticleID("https://example.com/iphone", "Apple unveils new iPhone"), first.ID)
	assert.Empty(t, first.SourceName)
	assert.Nil(t, first.RelevanceScore)

	second := articles[1]
	assert.Equal(t, "", second.Author)
	assert.NotNil(t, second.Tags)
	assert.Empty(t, second.Tags)

	assert.Equal(t, "", articles[2].Published)
}

func TestRSSSource_FetchAtom(t *testing.T) {
	srv := feedServer(t)
	src := NewRSSSource(WithHTTPClient(srv.Client()))

	articles := src.Fetch(context.Background(), srv.URL+"/atom", 5)
	require.Len(t, articles, 1)
	assert.Equal(t, "Rocket reaches orbit", articles[0].Title)
	assert.Equal(t, "https://example.org/rocket", articles[0].Link)
	assert.Equal(t, "Space launch succeeded.", articles[0].Summary)
	// Atom entries without a published date fall back to updated.
	assert.Equal(t, "2025-01-07T12:00:00", articles[0].Published)
	assert.Equal(t, "Atom Wire", articles[0].Source)
	assert.Equal(t, "Sam Roe", articles[0].Author)
}

func TestRSSSource_Limit(t *testing.T) {
	srv := feedServer(t)
	src := NewRSSSource(WithHTTPClient(srv.Client()))

	articles := src.Fetch(context.Background(), srv.URL+"/rss", 2)
	require.Len(t, articles, 2)
	assert.Equal(t, "Apple unveils new iPhone", articles[0].Title)
	assert.Equal(t, "Election results are in", articles[1].Title)

	assert.Empty(t, src.Fetch(context.Background(), srv.URL+"/rss", 0))
}

func TestRSSSource_UnknownTitle(t *testing.T) {
	srv := feedServer(t)
	src := NewRSSSource(WithHTTPClient(srv.Client()))

	articles := src.Fetch(context.Background(), srv.URL+"/untitled", 5)
	require.Len(t, articles, 1)
	assert.Equal(t, "Unknown", articles[0].Source)
}

func TestRSSSource_UserAgent(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(rssFixture))
	}))
	defer srv.Close()

	src := NewRSSSource(WithHTTPClient(srv.Client()), WithUserAgent("newswire-test"))
	articles := src.Fetch(context.Background(), srv.URL, 1)
	assert.Len(t, articles, 1)
	assert.Equal(t, "newswire-test", got)
}

func TestRSSSource_FailuresYieldEmpty(t *testing.T) {
	srv := feedServer(t)
	src := NewRSSSource(WithHTTPClient(srv.Client()), WithTimeout(100*time.Millisecond))

	tests := []struct {
		name string
		url  string
	}{
		{"not found", srv.URL + "/missing"},
		{"not a feed", srv.URL + "/garbage"},
		{"timeout", srv.URL + "/slow"},
		{"unreachable", "http://127.0.0.1:1/rss"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			articles := src.Fetch(context.Background(), tt.url, 10)
			assert.NotNil(t, articles)
			assert.Empty(t, articles)
		})
	}
}

func TestRSSSource_CanceledContext(t *testing.T) {
	srv := feedServer(t)
	src := NewRSSSource(WithHTTPClient(srv.Client()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Empty(t, src.Fetch(ctx, srv.URL+"/rss", 10))
}
