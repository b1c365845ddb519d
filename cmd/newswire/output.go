package main

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/poiesic/newswire/core"
	"github.com/poiesic/newswire/search"
	"github.com/poiesic/newswire/tools"
	"github.com/urfave/cli/v2"
)

const (
	titleWidth  = 72
	sourceWidth = 24
	ellipsis    = "…"
)

// report prints a tool outcome. With --json the payload is printed as the
// tool would return it, error payloads included; the error is still
// returned so the exit status reflects the failure.
func report(c *cli.Context, result any, err error) error {
	w := c.App.Writer

	if c.Bool("json") {
		text, marshalErr := tools.Marshal(tools.Payload(result, err))
		if marshalErr != nil {
			return marshalErr
		}
		fmt.Fprintln(w, text)
		return err
	}
	if err != nil {
		return err
	}

	switch r := result.(type) {
	case *tools.SearchResult:
		fmt.Fprintf(w, "%d results for %q\n\n", r.Total, r.Query)
		writeArticles(w, r.Articles)
	case *tools.HeadlinesResult:
		if r.Source != "" {
			fmt.Fprintf(w, "%d headlines from %s\n\n", r.Total, r.Source)
		} else {
			fmt.Fprintf(w, "%d headlines from %s\n\n", r.Total, strings.Join(r.Sources, ", "))
		}
		writeArticles(w, r.Articles)
	case *tools.CategoryResult:
		fmt.Fprintf(w, "%d articles in %s\n\n", r.Total, r.Category)
		writeArticles(w, r.Articles)
	case *tools.FeedResult:
		fmt.Fprintf(w, "%d entries from %s\n\n", r.Total, r.FeedURL)
		writeArticles(w, r.Articles)
	default:
		return fmt.Errorf("unexpected result type %T", result)
	}
	return nil
}

// writeArticles prints articles as a table. A score column is included when
// the articles were ranked by relevance.
func writeArticles(w io.Writer, articles []core.Article) {
	scored := len(articles) > 0 && articles[0].RelevanceScore != nil

	header := []string{"#", "PUBLISHED", "SOURCE", "TITLE"}
	if scored {
		header = []string{"#", "SCORE", "PUBLISHED", "SOURCE", "TITLE"}
	}
	rows := [][]string{header}

	for i, a := range articles {
		published := a.Published
		if published == "" {
			published = "-"
		}
		source := a.SourceName
		if source == "" {
			source = a.Source
		}
		row := []string{
			strconv.Itoa(i + 1),
			published,
			runewidth.Truncate(source, sourceWidth, ellipsis),
			runewidth.Truncate(a.Title, titleWidth, ellipsis),
		}
		if scored {
			row = slices.Insert(row, 1, strconv.Itoa(a.Score()))
		}
		rows = append(rows, row)
	}

	writeTable(w, rows)
}

// writeTable prints rows as left-aligned columns separated by two spaces.
// Widths are measured in terminal cells so wide characters line up.
func writeTable(w io.Writer, rows [][]string) {
	var widths []int
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	for _, row := range rows {
		var b strings.Builder
		for i, cell := range row {
			if i > 0 {
				b.WriteString("  ")
			}
			if i == len(row)-1 {
				b.WriteString(cell)
				continue
			}
			b.WriteString(runewidth.FillRight(cell, widths[i]))
		}
		fmt.Fprintln(w, b.String())
	}
}

// explainMonitor prints how a search query was expanded and scored.
type explainMonitor struct {
	w       io.Writer
	matched int
	skipped int
}

var _ search.SearchMonitor = (*explainMonitor)(nil)

func newExplainMonitor(w io.Writer) *explainMonitor {
	return &explainMonitor{w: w}
}

func (m *explainMonitor) Start(query string) {
	fmt.Fprintf(m.w, "query: %q\n", query)
}

func (m *explainMonitor) AfterExpansion(terms []string) {
	fmt.Fprintf(m.w, "expanded to %d terms: %s\n", len(terms), strings.Join(terms, ", "))
}

func (m *explainMonitor) Matched(article core.Article) {
	m.matched++
	fmt.Fprintf(m.w, "  %4d  %s\n", article.Score(), runewidth.Truncate(article.Title, titleWidth, ellipsis))
}

func (m *explainMonitor) Skipped(_ core.Article) {
	m.skipped++
}

func (m *explainMonitor) Finish(results []core.Article) {
	fmt.Fprintf(m.w, "%d matched, %d skipped\n\n", m.matched, m.skipped)
}
