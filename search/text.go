package search

import (
	"strings"

	"github.com/poiesic/newswire/core"
)

// Per-field weights added to an article's score for each term found in that field.
const (
	TitleWeight   = 3
	SummaryWeight = 2
	TagsWeight    = 1
	AuthorWeight  = 1
)

// searchableText holds the lower-cased fields of an article that terms are matched against.
type searchableText struct {
	title   string
	summary string
	tags    string
	author  string
}

// newSearchableText lowercases the searchable fields of article. Tags are
// joined with single spaces.
func newSearchableText(article *core.Article) searchableText {
	return searchableText{
		title:   strings.ToLower(article.Title),
		summary: strings.ToLower(article.Summary),
		tags:    strings.ToLower(strings.Join(article.Tags, " ")),
		author:  strings.ToLower(article.Author),
	}
}

// combined returns "{title} {summary} {tags} {author}".
func (s searchableText) combined() string {
	return s.title + " " + s.summary + " " + s.tags + " " + s.author
}

// containsAny reports whether any term occurs in text.
func containsAny(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}

// score sums the field weights of every term found in every field.
// There is no cap; a term present in title and summary adds 5.
func (s searchableText) score(terms []string) int {
	total := 0
	for _, term := range terms {
		if strings.Contains(s.title, term) {
			total += TitleWeight
		}
		if strings.Contains(s.summary, term) {
			total += SummaryWeight
		}
		if strings.Contains(s.tags, term) {
			total += TagsWeight
		}
		if strings.Contains(s.author, term) {
			total += AuthorWeight
		}
	}
	return total
}
