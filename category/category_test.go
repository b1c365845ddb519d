package category

import (
	"testing"

	"github.com/poiesic/newswire/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTable(t *testing.T) {
	t.Run("normalizes keywords", func(t *testing.T) {
		table, err := NewTable([]Category{{Name: "animals", Keywords: []string{" Zebra", "", "LION"}}})
		require.NoError(t, err)

		kw, ok := table.Keywords("animals")
		require.True(t, ok)
		assert.Equal(t, []string{"zebra", "lion"}, kw)
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := NewTable([]Category{{Name: ""}})
		assert.ErrorIs(t, err, ErrEmptyCategoryName)
	})

	t.Run("duplicate name", func(t *testing.T) {
		_, err := NewTable([]Category{{Name: "a"}, {Name: "a"}})
		assert.ErrorIs(t, err, ErrDuplicateCategory)
	})
}

func TestDefaultTable(t *testing.T) {
	table := DefaultTable()

	assert.Equal(t,
		[]string{"politics", "technology", "business", "sports", "health", "science", "world"},
		table.Names())
	assert.True(t, table.Has("science"))
	assert.False(t, table.Has("Science"))
	assert.False(t, table.Has("weather"))
}

func TestFilter(t *testing.T) {
	table, err := NewTable([]Category{
		{Name: "animals", Keywords: []string{"zebra", "lion"}},
	})
	require.NoError(t, err)

	articles := []core.Article{
		{Title: "Zebra escapes"},
		{Title: "Markets", Summary: "a LION roars"},
		{Title: "Tagged", Tags: []string{"Zoo", "Lion"}},
		{Title: "Byline only", Author: "Zebra Smith"},
		{Title: "Nothing here"},
	}

	t.Run("matches title summary and tags", func(t *testing.T) {
		filtered := table.Filter(articles, "animals")

		require.Len(t, filtered, 3)
		assert.Equal(t, "Zebra escapes", filtered[0].Title)
		assert.Equal(t, "Markets", filtered[1].Title)
		assert.Equal(t, "Tagged", filtered[2].Title)
	})

	t.Run("author is not searched", func(t *testing.T) {
		for _, a := range table.Filter(articles, "animals") {
			assert.NotEqual(t, "Byline only", a.Title)
		}
	})

	t.Run("unknown category returns input unchanged", func(t *testing.T) {
		assert.Equal(t, articles, table.Filter(articles, "weather"))
	})

	t.Run("articles are not scored", func(t *testing.T) {
		for _, a := range table.Filter(articles, "animals") {
			assert.Nil(t, a.RelevanceScore)
		}
	})
}

func TestFilter_DefaultTechnology(t *testing.T) {
	articles := []core.Article{
		{Title: "Nvidia earnings beat expectations"},
		{Title: "Garden party"},
	}

	filtered := DefaultTable().Filter(articles, "technology")

	require.Len(t, filtered, 1)
	assert.Equal(t, "Nvidia earnings beat expectations", filtered[0].Title)
}
