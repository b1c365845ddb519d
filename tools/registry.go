package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/poiesic/newswire/config"
	"github.com/poiesic/newswire/core"
)

// Tool names.
const (
	ToolGetHeadlines    = "get_headlines"
	ToolSearchNews      = "search_news"
	ToolGetCategoryNews = "get_category_news"
	ToolGetRSSFeed      = "get_rss_feed"
)

// Schema is a JSON Schema object describing a tool's arguments.
type Schema struct {
	Type       string              `json:"type"`
	Properties map[string]Property `json:"properties"`
	Required   []string            `json:"required,omitempty"`
}

// Property describes a single tool argument.
type Property struct {
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Default     any      `json:"default,omitempty"`
	Minimum     *int     `json:"minimum,omitempty"`
	Maximum     *int     `json:"maximum,omitempty"`
	Enum        []string `json:"enum,omitempty"`
}

// Tool describes a callable tool.
type Tool struct {
	Name        string
	Title       string
	Description string
	InputSchema Schema
}

type headlinesArgs struct {
	Source *string `json:"source"`
	Limit  *int    `json:"limit"`
}

type searchArgs struct {
	Query string `json:"query"`
	Limit *int   `json:"limit"`
}

type categoryArgs struct {
	Category string `json:"category"`
	Limit    *int   `json:"limit"`
}

type feedArgs struct {
	FeedURL string `json:"feed_url"`
	Limit   *int   `json:"limit"`
}

// Tools describes the tools offered by the service, in a fixed order.
func (s *Service) Tools() []Tool {
	sources := append([]string{config.AllSources}, s.cfg.SourceNames()...)
	categories := s.categories.Names()

	return []Tool{
		{
			Name:  ToolGetHeadlines,
			Title: "Get headlines",
			Description: "Get the latest headlines from major news sources. " +
				"Use source \"all\" to merge every source, newest first.",
			InputSchema: Schema{
				Type: "object",
				Properties: map[string]Property{
					"source": {
						Type:        "string",
						Description: "News source",
						Default:     config.AllSources,
						Enum:        sources,
					},
					"limit": limitProperty("Number of headlines to return"),
				},
			},
		},
		{
			Name:  ToolSearchNews,
			Title: "Search news",
			Description: "Search recent news articles by keyword. The query is expanded " +
				"with related terms and results are ranked by relevance.",
			InputSchema: Schema{
				Type: "object",
				Properties: map[string]Property{
					"query": {Type: "string", Description: "Search query"},
					"limit": limitProperty("Number of results to return"),
				},
				Required: []string{"query"},
			},
		},
		{
			Name:        ToolGetCategoryNews,
			Title:       "Get category news",
			Description: "Get the latest news articles about a topic category.",
			InputSchema: Schema{
				Type: "object",
				Properties: map[string]Property{
					"category": {
						Type:        "string",
						Description: "News category",
						Enum:        categories,
					},
					"limit": limitProperty("Number of articles to return"),
				},
				Required: []string{"category"},
			},
		},
		{
			Name:        ToolGetRSSFeed,
			Title:       "Get RSS feed",
			Description: "Get articles from any RSS or Atom feed URL.",
			InputSchema: Schema{
				Type: "object",
				Properties: map[string]Property{
					"feed_url": {Type: "string", Description: "RSS feed URL"},
					"limit":    limitProperty("Number of articles to return"),
				},
				Required: []string{"feed_url"},
			},
		},
	}
}

// Call invokes the named tool with JSON-encoded arguments. Absent or null
// arguments select the defaults. It returns the typed result of the
// operation, ErrUnknownTool for an unknown name, or a *ToolError.
func (s *Service) Call(ctx context.Context, name string, arguments json.RawMessage) (any, error) {
	switch name {
	case ToolGetHeadlines:
		var args headlinesArgs
		if err := decodeArgs(arguments, &args); err != nil {
			return nil, err
		}
		source := config.AllSources
		if args.Source != nil {
			source = *args.Source
		}
		result, err := s.GetHeadlines(ctx, source, limitOrDefault(args.Limit))
		return untyped(result, err)

	case ToolSearchNews:
		var args searchArgs
		if err := decodeArgs(arguments, &args); err != nil {
			return nil, err
		}
		result, err := s.SearchNews(ctx, args.Query, limitOrDefault(args.Limit))
		return untyped(result, err)

	case ToolGetCategoryNews:
		var args categoryArgs
		if err := decodeArgs(arguments, &args); err != nil {
			return nil, err
		}
		result, err := s.GetCategoryNews(ctx, args.Category, limitOrDefault(args.Limit))
		return untyped(result, err)

	case ToolGetRSSFeed:
		var args feedArgs
		if err := decodeArgs(arguments, &args); err != nil {
			return nil, err
		}
		result, err := s.GetRSSFeed(ctx, args.FeedURL, limitOrDefault(args.Limit))
		return untyped(result, err)

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}
}

// HasTool reports whether name is a tool offered by the service.
func (s *Service) HasTool(name string) bool {
	switch name {
	case ToolGetHeadlines, ToolSearchNews, ToolGetCategoryNews, ToolGetRSSFeed:
		return true
	}
	return false
}

// untyped drops the typed nil result that accompanies an error.
func untyped[T any](result *T, err error) (any, error) {
	if err != nil {
		return nil, err
	}
	return result, nil
}

func decodeArgs(arguments json.RawMessage, v any) error {
	if len(arguments) == 0 || string(arguments) == "null" {
		return nil
	}
	if err := json.Unmarshal(arguments, v); err != nil {
		return validation(fmt.Errorf("%w: %w", ErrInvalidArguments, err), "Invalid arguments: %v", err)
	}
	return nil
}

func limitOrDefault(limit *int) int {
	if limit == nil {
		return core.DefaultLimit
	}
	return *limit
}

func limitProperty(description string) Property {
	minimum, maximum := core.MinLimit, core.MaxLimit
	return Property{
		Type:        "integer",
		Description: description,
		Default:     core.DefaultLimit,
		Minimum:     &minimum,
		Maximum:     &maximum,
	}
}
