package search

import "strings"

// Expander widens a free-text query into a set of search terms.
type Expander struct {
	synonyms *SynonymTable
}

// NewExpander creates an expander backed by synonyms.
func NewExpander(synonyms *SynonymTable) (*Expander, error) {
	if synonyms == nil {
		return nil, ErrSynonymTableRequired
	}
	return &Expander{synonyms: synonyms}, nil
}

// Expand returns the deduplicated search terms for query.
//
// The lower-cased, trimmed query is always the first term. If it is itself a
// table key, that key's related terms are added. Then every key is checked
// against the query: when the key, or any of its related terms, occurs as a
// substring of the query, all of the key's related terms are added.
//
// The result keeps first-insertion order and never contains empty strings.
// A blank query expands to no terms.
func (e *Expander) Expand(query string) []string {
	q := strings.ToLower(strings.TrimSpace(query))

	set := newTermSet()
	if q == "" {
		return set.terms
	}
	set.add(q)

	if related, ok := e.synonyms.Lookup(q); ok {
		set.add(related...)
	}

	for key, related := range e.synonyms.all {
		if strings.Contains(q, key) || anyContained(q, related) {
			set.add(related...)
		}
	}

	return set.terms
}

// anyContained reports whether any of terms occurs in s.
func anyContained(s string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}

// termSet is an insertion-ordered set of trimmed, non-empty terms.
type termSet struct {
	seen  map[string]struct{}
	terms []string
}

func newTermSet() *termSet {
	return &termSet{seen: make(map[string]struct{}), terms: []string{}}
}

func (s *termSet) add(terms ...string) {
	for _, t := range terms {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, dup := s.seen[t]; dup {
			continue
		}
		s.seen[t] = struct{}{}
		s.terms = append(s.terms, t)
	}
}
