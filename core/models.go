package core

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// PublishedLayout is the ISO-8601 form used for Article.Published.
// Strings in this layout sort lexicographically in chronological order.
const PublishedLayout = "2006-01-02T15:04:05"

// ID is a unique identifier for an article.
// It is derived from the article's content so that the same entry fetched
// twice yields the same ID.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Article is a single feed entry normalized to a common field set.
// Articles are passed by value; the search pipeline only ever adds
// RelevanceScore to a copy.
type Article struct {
	ID         ID       `json:"id"`
	Title      string   `json:"title"`
	Link       string   `json:"link"`
	Summary    string   `json:"summary"`
	Published  string   `json:"published"` // PublishedLayout, or "" when unknown
	Source     string   `json:"source"`    // feed title as reported by the feed
	Author     string   `json:"author"`
	Tags       []string `json:"tags"`
	SourceName string   `json:"source_name,omitempty"` // registry key of the originating feed

	// RelevanceScore is set only on articles that passed search matching.
	RelevanceScore *int `json:"relevance_score,omitempty"`
}

// ArticleID returns the identifier for an entry with the given link and title.
// The link is preferred; entries without one fall back to their title.
func ArticleID(link, title string) ID {
	if link != "" {
		return IDFromContent(link)
	}
	return IDFromContent(title)
}

// Score returns the relevance score, or 0 when the article was never scored.
func (a Article) Score() int {
	if a.RelevanceScore == nil {
		return 0
	}
	return *a.RelevanceScore
}

// WithScore returns a copy of the article carrying the given relevance score.
func (a Article) WithScore(score int) Article {
	a.RelevanceScore = &score
	return a
}

// WithSourceName returns a copy of the article tagged with a registry key.
func (a Article) WithSourceName(name string) Article {
	a.SourceName = name
	return a
}

// FormatPublished renders a feed timestamp in PublishedLayout.
// A nil time renders as the empty string.
func FormatPublished(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.UTC().Format(PublishedLayout)
}
