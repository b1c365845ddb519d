// Package mock provides a test double for feed.Source.
//
// The mock serves canned articles per feed URL, so tests of the tool layer
// and the servers run without network access:
//
//	src := mock.NewMockSource().
//	    WithArticles("https://example.com/rss", articles...)
//
//	// Custom behavior injection
//	src.FetchFunc = func(ctx context.Context, url string, limit int) []core.Article {
//	    return nil
//	}
//
//	// Check call counts
//	count := src.CallCount()
//
// Unknown URLs yield an empty slice, mirroring how a real source reports a
// feed it could not download.
package mock
