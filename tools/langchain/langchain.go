// Package langchain adapts the news tools to the langchaingo tools.Tool
// interface so agents built on langchaingo can call them in-process.
package langchain

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	ltools "github.com/tmc/langchaingo/tools"

	"github.com/poiesic/newswire/tools"
)

// Caller is the tool service an adapter delegates to.
type Caller interface {
	Tools() []tools.Tool
	Call(ctx context.Context, name string, arguments json.RawMessage) (any, error)
}

// primaryArgument names the argument a plain-text input is bound to.
var primaryArgument = map[string]string{
	tools.ToolGetHeadlines:    "source",
	tools.ToolSearchNews:      "query",
	tools.ToolGetCategoryNews: "category",
	tools.ToolGetRSSFeed:      "feed_url",
}

// Tool is a single news tool usable by a langchaingo agent.
type Tool struct {
	caller Caller
	tool   tools.Tool
}

var _ ltools.Tool = (*Tool)(nil)

// New returns an adapter for every tool the caller offers.
func New(caller Caller) []ltools.Tool {
	list := caller.Tools()
	out := make([]ltools.Tool, 0, len(list))
	for _, t := range list {
		out = append(out, &Tool{caller: caller, tool: t})
	}
	return out
}

// Name returns the tool name.
func (t *Tool) Name() string {
	return t.tool.Name
}

// Description returns the tool description followed by a summary of the
// accepted input.
func (t *Tool) Description() string {
	var b strings.Builder
	b.WriteString(t.tool.Description)
	b.WriteString(" Input is a JSON object with the fields: ")

	names := make([]string, 0, len(t.tool.InputSchema.Properties))
	for name := range t.tool.InputSchema.Properties {
		names = append(names, name)
	}
	primary := primaryArgument[t.tool.Name]
	sortFields(names, primary)

	for i, name := range names {
		if i > 0 {
			b.WriteString(", ")
		}
		prop := t.tool.InputSchema.Properties[name]
		fmt.Fprintf(&b, "%s (%s): %s", name, prop.Type, prop.Description)
	}
	b.WriteString(".")
	if primary != "" {
		fmt.Fprintf(&b, " Plain text input is used as %s.", primary)
	}
	return b.String()
}

// Call runs the tool. Input is either a JSON object of arguments or plain
// text bound to the tool's primary argument. The result, or the error
// payload for a failed call, is returned as indented JSON.
func (t *Tool) Call(ctx context.Context, input string) (string, error) {
	arguments, err := t.arguments(input)
	if err != nil {
		return "", err
	}

	result, callErr := t.caller.Call(ctx, t.tool.Name, arguments)
	if errors.Is(callErr, tools.ErrUnknownTool) {
		return "", callErr
	}
	return tools.Marshal(tools.Payload(result, callErr))
}

func (t *Tool) arguments(input string) (json.RawMessage, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, nil
	}
	if strings.HasPrefix(trimmed, "{") {
		return json.RawMessage(trimmed), nil
	}

	primary, ok := primaryArgument[t.tool.Name]
	if !ok {
		return nil, fmt.Errorf("%w: %s expects a JSON object", tools.ErrInvalidArguments, t.tool.Name)
	}
	return json.Marshal(map[string]string{primary: trimmed})
}

// sortFields orders the primary argument first, then the rest alphabetically.
func sortFields(names []string, primary string) {
	slices.SortFunc(names, func(a, b string) int {
		switch {
		case a == primary:
			return -1
		case b == primary:
			return 1
		}
		return strings.Compare(a, b)
	})
}
