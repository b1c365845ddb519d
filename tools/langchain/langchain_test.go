package langchain

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/poiesic/newswire/config"
	"github.com/poiesic/newswire/core"
	"github.com/poiesic/newswire/feed/mock"
	"github.com/poiesic/newswire/tools"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wireURL = "https://wire.example/rss"

func testService(t *testing.T) *tools.Service {
	t.Helper()
	src := mock.NewMockSource().WithArticles(wireURL,
		core.Article{Title: "Rocket launch delayed", Summary: "Space agency waits", Published: "2025-01-02T00:00:00", Tags: []string{}},
		core.Article{Title: "Markets close higher", Summary: "Stocks gain", Published: "2025-01-01T00:00:00", Tags: []string{}},
	)
	cfg := config.NewConfig(config.WithSources(config.Source{Name: "wire", URL: wireURL}))
	svc, err := tools.NewService(tools.WithConfig(cfg), tools.WithSource(src))
	require.NoError(t, err)
	t.Cleanup(func() { _ = svc.Close() })
	return svc
}

func toolByName(t *testing.T, svc *tools.Service, name string) *Tool {
	t.Helper()
	for _, tool := range New(svc) {
		if tool.Name() == name {
			return tool.(*Tool)
		}
	}
	t.Fatalf("tool %s not found", name)
	return nil
}

func TestNew(t *testing.T) {
	list := New(testService(t))
	require.Len(t, list, 4)

	names := make([]string, len(list))
	for i, tool := range list {
		names[i] = tool.Name()
	}
	assert.Equal(t, []string{"get_headlines", "search_news", "get_category_news", "get_rss_feed"}, names)
}

func TestTool_Description(t *testing.T) {
	desc := toolByName(t, testService(t), tools.ToolSearchNews).Description()
	assert.Contains(t, desc, "Search recent news articles by keyword.")
	assert.Contains(t, desc, "fields: query (string): Search query, limit (integer)")
	assert.Contains(t, desc, "Plain text input is used as query.")
}

func TestTool_CallJSON(t *testing.T) {
	tool := toolByName(t, testService(t), tools.ToolSearchNews)

	out, err := tool.Call(context.Background(), `{"query": "rocket", "limit": 3}`)
	require.NoError(t, err)

	var result tools.SearchResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, 1, result.Total)
	assert.Equal(t, "Rocket launch delayed", result.Articles[0].Title)
}

func TestTool_CallPlainText(t *testing.T) {
	svc := testService(t)

	out, err := toolByName(t, svc, tools.ToolSearchNews).Call(context.Background(), "  markets ")
	require.NoError(t, err)
	var search tools.SearchResult
	require.NoError(t, json.Unmarshal([]byte(out), &search))
	assert.Equal(t, "markets", search.Query)
	assert.Equal(t, "Markets close higher", search.Articles[0].Title)

	out, err = toolByName(t, svc, tools.ToolGetHeadlines).Call(context.Background(), "wire")
	require.NoError(t, err)
	var headlines tools.HeadlinesResult
	require.NoError(t, json.Unmarshal([]byte(out), &headlines))
	assert.Equal(t, "wire", headlines.Source)
	assert.Equal(t, 2, headlines.Total)
}

func TestTool_CallEmptyInput(t *testing.T) {
	out, err := toolByName(t, testService(t), tools.ToolGetHeadlines).Call(context.Background(), "")
	require.NoError(t, err)

	var headlines tools.HeadlinesResult
	require.NoError(t, json.Unmarshal([]byte(out), &headlines))
	assert.Equal(t, []string{"wire"}, headlines.Sources)
}

func TestTool_CallErrorPayload(t *testing.T) {
	out, err := toolByName(t, testService(t), tools.ToolGetCategoryNews).Call(context.Background(), "cooking")
	require.NoError(t, err)

	var payload tools.ErrorResult
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	assert.Equal(t,
		"Unknown category 'cooking'. Available categories: politics, technology, business, sports, health, science, world",
		payload.Error)
}

func TestTool_CallMalformedJSON(t *testing.T) {
	out, err := toolByName(t, testService(t), tools.ToolSearchNews).Call(context.Background(), `{"query":`)
	require.NoError(t, err)
	assert.Contains(t, out, `"error": "Invalid arguments:`)
}

func TestSortFields(t *testing.T) {
	names := []string{"limit", "source", "alpha"}
	sortFields(names, "source")
	assert.Equal(t, []string{"source", "alpha", "limit"}, names)
}
