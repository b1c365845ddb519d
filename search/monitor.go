package search

import "github.com/poiesic/newswire/core"

// SearchMonitor provides hooks to observe the search process.
// Implement this interface to track intermediate steps and results during search.
type SearchMonitor interface {
	Start(query string)
	AfterExpansion(terms []string)
	Matched(article core.Article)
	Skipped(article core.Article)
	Finish(results []core.Article)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)            {}
func (n *noopMonitor) AfterExpansion(_ []string) {}
func (n *noopMonitor) Matched(_ core.Article)    {}
func (n *noopMonitor) Skipped(_ core.Article)    {}
func (n *noopMonitor) Finish(_ []core.Article)   {}
