package search

import "github.com/poiesic/newswire/core"

// MatchAndScore returns the articles that contain at least one of terms,
// each carrying its relevance score. Input order is preserved and articles
// that match nothing are dropped. An empty term set matches nothing.
func MatchAndScore(articles []core.Article, terms []string) []core.Article {
	return matchAndScore(articles, terms, &noopMonitor{})
}

func matchAndScore(articles []core.Article, terms []string, monitor SearchMonitor) []core.Article {
	matched := make([]core.Article, 0, len(articles))
	if len(terms) == 0 {
		return matched
	}

	for i := range articles {
		text := newSearchableText(&articles[i])
		if !containsAny(text.combined(), terms) {
			monitor.Skipped(articles[i])
			continue
		}

		scored := articles[i].WithScore(text.score(terms))
		monitor.Matched(scored)
		matched = append(matched, scored)
	}

	return matched
}
