package core

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDFromContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "link", content: "https://example.com/a"},
		{name: "empty string", content: ""},
		{name: "long content", content: "This is a much longer piece of content that should still hash consistently"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, IDFromContent(tt.content), IDFromContent(tt.content))
		})
	}

	assert.NotEqual(t, IDFromContent("content1"), IDFromContent("content2"))
}

func TestArticleID(t *testing.T) {
	assert.Equal(t, IDFromContent("https://example.com/a"), ArticleID("https://example.com/a", "Title"))
	assert.Equal(t, IDFromContent("Title"), ArticleID("", "Title"))
}

func TestArticle_WithScore(t *testing.T) {
	original := Article{Title: "Apple unveils new iPhone", Tags: []string{"tech"}}

	scored := original.WithScore(7)

	assert.Nil(t, original.RelevanceScore, "original must not be modified")
	require.NotNil(t, scored.RelevanceScore)
	assert.Equal(t, 7, scored.Score())
	assert.Equal(t, original.Title, scored.Title)
	assert.Equal(t, original.Tags, scored.Tags)
	assert.Equal(t, 0, original.Score())
}

func TestArticle_JSON(t *testing.T) {
	t.Run("unscored article omits relevance_score", func(t *testing.T) {
		data, err := json.Marshal(Article{Title: "a"})
		require.NoError(t, err)
		assert.NotContains(t, string(data), "relevance_score")
		assert.NotContains(t, string(data), "source_name")
	})

	t.Run("zero score is still reported", func(t *testing.T) {
		data, err := json.Marshal(Article{Title: "a"}.WithScore(0))
		require.NoError(t, err)
		assert.Contains(t, string(data), `"relevance_score":0`)
	})
}

func TestFormatPublished(t *testing.T) {
	assert.Equal(t, "", FormatPublished(nil))

	ts := time.Date(2024, 2, 1, 13, 4, 5, 0, time.FixedZone("EST", -5*3600))
	assert.Equal(t, "2024-02-01T18:04:05", FormatPublished(&ts))
}
