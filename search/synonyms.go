package search

import (
	"fmt"
	"slices"
	"strings"
)

// SynonymGroup maps one canonical term to the terms it expands to.
type SynonymGroup struct {
	Term    string
	Related []string
}

// SynonymTable is a directed term -> related-terms mapping used for query
// expansion. It is not symmetric: "bitcoin" listing "btc" does not make
// "btc" expand to "bitcoin". Groups that should relate in both directions
// need an entry for each side.
//
// A SynonymTable is immutable after construction.
type SynonymTable struct {
	keys    []string
	entries map[string][]string
}

// NewSynonymTable builds a table from groups. Terms are lower-cased and
// trimmed; blank related terms are dropped. Key order follows the order of
// groups. A term listed twice has its related terms appended to the first
// occurrence.
func NewSynonymTable(groups []SynonymGroup) (*SynonymTable, error) {
	t := &SynonymTable{
		keys:    make([]string, 0, len(groups)),
		entries: make(map[string][]string, len(groups)),
	}
	for _, g := range groups {
		term := strings.ToLower(strings.TrimSpace(g.Term))
		if term == "" {
			return nil, fmt.Errorf("%w: group with %d related terms", ErrEmptySynonymTerm, len(g.Related))
		}
		if _, ok := t.entries[term]; !ok {
			t.keys = append(t.keys, term)
		}
		for _, r := range g.Related {
			r = strings.ToLower(strings.TrimSpace(r))
			if r == "" {
				continue
			}
			t.entries[term] = append(t.entries[term], r)
		}
	}
	return t, nil
}

// MustSynonymTable is like NewSynonymTable but panics on error.
// Intended for package-level tables built from literals.
func MustSynonymTable(groups []SynonymGroup) *SynonymTable {
	t, err := NewSynonymTable(groups)
	if err != nil {
		panic(err)
	}
	return t
}

// Lookup returns the related terms for term, which must already be
// lower-cased. The returned slice must not be modified.
func (t *SynonymTable) Lookup(term string) ([]string, bool) {
	related, ok := t.entries[term]
	return related, ok
}

// Keys returns the canonical terms in table order.
func (t *SynonymTable) Keys() []string {
	return slices.Clone(t.keys)
}

// Len returns the number of canonical terms.
func (t *SynonymTable) Len() int {
	return len(t.keys)
}

// all iterates keys with their related terms in table order.
func (t *SynonymTable) all(yield func(key string, related []string) bool) {
	for _, k := range t.keys {
		if !yield(k, t.entries[k]) {
			return
		}
	}
}

var defaultSynonyms = MustSynonymTable([]SynonymGroup{
	// AI / ML
	{"ai", []string{"artificial intelligence", "machine learning", "ml", "neural network", "deep learning", "chatgpt", "openai", "gpt", "llm", "large language model"}},
	{"artificial intelligence", []string{"ai", "machine learning", "ml", "neural network", "deep learning", "chatgpt", "openai", "gpt", "llm", "large language model"}},
	{"machine learning", []string{"ai", "artificial intelligence", "ml", "neural network", "deep learning", "data science"}},

	// Cryptocurrency
	{"crypto", []string{"cryptocurrency", "bitcoin", "ethereum", "blockchain", "crypto", "digital currency"}},
	{"cryptocurrency", []string{"crypto", "bitcoin", "ethereum", "blockchain", "digital currency"}},
	{"bitcoin", []string{"crypto", "cryptocurrency", "btc", "digital currency"}},

	// Climate
	{"climate", []string{"climate change", "global warming", "environment", "carbon", "emissions", "sustainability"}},
	{"climate change", []string{"climate", "global warming", "environment", "carbon", "emissions", "sustainability"}},

	// Categories
	{"tech", []string{"technology", "tech", "software", "startup", "innovation", "digital"}},
	{"technology", []string{"tech", "software", "startup", "innovation", "digital", "tech"}},
	{"politics", []string{"political", "government", "election", "democracy", "policy", "congress", "senate"}},
	{"business", []string{"economy", "market", "finance", "trading", "investment", "corporate", "company"}},
	{"health", []string{"medical", "healthcare", "medicine", "covid", "pandemic", "disease", "health"}},
	{"sports", []string{"football", "basketball", "baseball", "soccer", "olympics", "athletics", "sport"}},
	{"science", []string{"research", "study", "discovery", "space", "physics", "chemistry", "biology"}},
	{"space", []string{"nasa", "spacex", "astronomy", "mars", "moon", "satellite", "rocket"}},

	// Companies and brands
	{"tesla", []string{"elon musk", "electric vehicle", "ev", "tesla", "model s", "model 3", "model x", "model y"}},
	{"apple", []string{"iphone", "ipad", "mac", "ios", "macos", "tim cook", "apple"}},
	{"google", []string{"alphabet", "android", "chrome", "youtube", "search", "google"}},
	{"microsoft", []string{"windows", "office", "azure", "xbox", "microsoft", "satya nadella"}},
	{"amazon", []string{"aws", "prime", "bezos", "amazon", "alexa", "echo"}},
	{"meta", []string{"facebook", "instagram", "whatsapp", "zuckerberg", "meta", "vr", "virtual reality"}},
	{"facebook", []string{"meta", "instagram", "whatsapp", "zuckerberg", "facebook", "social media"}},
	{"twitter", []string{"x", "elon musk", "tweet", "twitter", "social media"}},
	{"x", []string{"twitter", "elon musk", "tweet", "x", "social media"}},
})

// DefaultSynonyms returns the curated synonym table for general news topics.
// The table is shared; it is never modified.
func DefaultSynonyms() *SynonymTable {
	return defaultSynonyms
}
