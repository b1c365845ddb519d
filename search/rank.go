package search

import (
	"slices"

	"github.com/poiesic/newswire/core"
)

// Rank sorts articles in place by relevance score, highest first, then by
// publication time, newest first. Published strings compare
// lexicographically, so unknown ("") timestamps go last. Articles with equal
// score and timestamp keep their input order.
func Rank(articles []core.Article) {
	slices.SortStableFunc(articles, func(a, b core.Article) int {
		if d := b.Score() - a.Score(); d != 0 {
			return d
		}
		return compareNewestFirst(a.Published, b.Published)
	})
}

// SortByPublished sorts articles in place, newest first. The sort is stable.
func SortByPublished(articles []core.Article) {
	slices.SortStableFunc(articles, func(a, b core.Article) int {
		return compareNewestFirst(a.Published, b.Published)
	})
}

func compareNewestFirst(a, b string) int {
	switch {
	case a > b:
		return -1
	case a < b:
		return 1
	default:
		return 0
	}
}
