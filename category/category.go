package category

import (
	"fmt"
	"slices"
	"strings"

	"github.com/poiesic/newswire/core"
)

// Category is a named keyword list.
type Category struct {
	Name     string
	Keywords []string
}

// Table maps category names to keyword lists. It is immutable after construction.
type Table struct {
	names    []string
	keywords map[string][]string
}

// NewTable builds a table from categories, preserving their order.
// Keywords are lower-cased and blank keywords dropped.
func NewTable(categories []Category) (*Table, error) {
	t := &Table{
		names:    make([]string, 0, len(categories)),
		keywords: make(map[string][]string, len(categories)),
	}
	for _, c := range categories {
		if c.Name == "" {
			return nil, ErrEmptyCategoryName
		}
		if _, dup := t.keywords[c.Name]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCategory, c.Name)
		}
		kw := make([]string, 0, len(c.Keywords))
		for _, k := range c.Keywords {
			if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
				kw = append(kw, k)
			}
		}
		t.names = append(t.names, c.Name)
		t.keywords[c.Name] = kw
	}
	return t, nil
}

// Has reports whether name is a known category.
func (t *Table) Has(name string) bool {
	_, ok := t.keywords[name]
	return ok
}

// Names returns the category names in table order.
func (t *Table) Names() []string {
	return slices.Clone(t.names)
}

// Keywords returns the keyword list for name.
func (t *Table) Keywords(name string) ([]string, bool) {
	kw, ok := t.keywords[name]
	return slices.Clone(kw), ok
}

// Filter returns the articles mentioning any keyword of the named category
// in "{title} {summary} {tags}". Input order is preserved.
//
// An unknown category is not an error here: the input is returned unchanged.
// Callers that need to reject unknown categories check Has first.
func (t *Table) Filter(articles []core.Article, name string) []core.Article {
	keywords, ok := t.keywords[name]
	if !ok {
		return articles
	}

	filtered := make([]core.Article, 0, len(articles))
	for _, article := range articles {
		if mentionsAny(searchText(&article), keywords) {
			filtered = append(filtered, article)
		}
	}
	return filtered
}

func searchText(article *core.Article) string {
	return strings.ToLower(article.Title) + " " +
		strings.ToLower(article.Summary) + " " +
		strings.ToLower(strings.Join(article.Tags, " "))
}

func mentionsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
