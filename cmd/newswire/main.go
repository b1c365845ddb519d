// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/poiesic/newswire"
	"github.com/poiesic/newswire/config"
	"github.com/poiesic/newswire/core"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	limitFlag := &cli.IntFlag{
		Name:    "limit",
		Aliases: []string{"n"},
		Usage:   fmt.Sprintf("Number of articles to return (%d-%d)", core.MinLimit, core.MaxLimit),
		Value:   core.DefaultLimit,
	}
	jsonFlag := &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the raw tool response as JSON",
	}

	return &cli.App{
		Name:  "newswire",
		Usage: "News headlines and search for agents over MCP",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a YAML configuration file",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Serve the MCP endpoint over HTTP",
				Action: serveCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "addr",
						Usage: "Listen address (defaults to 0.0.0.0:$PORT, or 0.0.0.0:8000)",
					},
				},
			},
			{
				Name:   "stdio",
				Usage:  "Serve MCP on stdin and stdout",
				Action: stdioCommand,
			},
			{
				Name:      "search",
				Usage:     "Search recent news by keyword",
				ArgsUsage: "<query>",
				Action:    searchCommand,
				Flags: []cli.Flag{
					limitFlag,
					jsonFlag,
					&cli.BoolFlag{
						Name:  "explain",
						Usage: "Print the expanded search terms and per-article scores",
					},
				},
			},
			{
				Name:   "headlines",
				Usage:  "Show the latest headlines",
				Action: headlinesCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "source",
						Aliases: []string{"s"},
						Usage:   "News source, or \"all\"",
						Value:   config.AllSources,
					},
					limitFlag,
					jsonFlag,
				},
			},
			{
				Name:      "category",
				Usage:     "Show the latest news in a category",
				ArgsUsage: "<category>",
				Action:    categoryCommand,
				Flags:     []cli.Flag{limitFlag, jsonFlag},
			},
			{
				Name:      "feed",
				Usage:     "Show the entries of any RSS or Atom feed",
				ArgsUsage: "<url>",
				Action:    feedCommand,
				Flags:     []cli.Flag{limitFlag, jsonFlag},
			},
			{
				Name:   "categories",
				Usage:  "List the news categories",
				Action: categoriesCommand,
			},
			{
				Name:   "sources",
				Usage:  "List the configured news sources",
				Action: sourcesCommand,
			},
		},
	}
}

// loadConfig returns the configuration named by --config, or the defaults.
func loadConfig(c *cli.Context) (*config.Config, error) {
	path := c.String("config")
	if path == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func openNewswire(c *cli.Context) (*newswire.Newswire, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}
	if addr := c.String("addr"); addr != "" {
		cfg.ListenAddress = addr
	}

	nw, err := newswire.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize: %w", err)
	}
	return nw, nil
}

func serveCommand(c *cli.Context) error {
	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	nw, err := openNewswire(c)
	if err != nil {
		return err
	}
	defer nw.Close()

	server, err := nw.NewHTTPServer()
	if err != nil {
		return fmt.Errorf("failed to create http server: %w", err)
	}
	return server.Serve(ctx)
}

func stdioCommand(c *cli.Context) error {
	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	nw, err := openNewswire(c)
	if err != nil {
		return err
	}
	defer nw.Close()

	return nw.NewMCPServer().ServeStdio(ctx)
}

func searchCommand(c *cli.Context) error {
	query := strings.Join(c.Args().Slice(), " ")
	if strings.TrimSpace(query) == "" {
		return fmt.Errorf("query is required")
	}

	nw, err := openNewswire(c)
	if err != nil {
		return err
	}
	defer nw.Close()

	var monitor *explainMonitor
	if c.Bool("explain") {
		monitor = newExplainMonitor(c.App.ErrWriter)
	}

	var result any
	if monitor != nil {
		result, err = nw.Service().SearchNewsWithMonitor(c.Context, query, c.Int("limit"), monitor)
	} else {
		result, err = nw.Service().SearchNews(c.Context, query, c.Int("limit"))
	}
	return report(c, result, err)
}

func headlinesCommand(c *cli.Context) error {
	nw, err := openNewswire(c)
	if err != nil {
		return err
	}
	defer nw.Close()

	result, err := nw.Service().GetHeadlines(c.Context, c.String("source"), c.Int("limit"))
	return report(c, result, err)
}

func categoryCommand(c *cli.Context) error {
	name := c.Args().First()
	if name == "" {
		return fmt.Errorf("category is required")
	}

	nw, err := openNewswire(c)
	if err != nil {
		return err
	}
	defer nw.Close()

	result, err := nw.Service().GetCategoryNews(c.Context, name, c.Int("limit"))
	return report(c, result, err)
}

func feedCommand(c *cli.Context) error {
	url := c.Args().First()
	if url == "" {
		return fmt.Errorf("feed url is required")
	}

	nw, err := openNewswire(c)
	if err != nil {
		return err
	}
	defer nw.Close()

	result, err := nw.Service().GetRSSFeed(c.Context, url, c.Int("limit"))
	return report(c, result, err)
}

func categoriesCommand(c *cli.Context) error {
	nw, err := openNewswire(c)
	if err != nil {
		return err
	}
	defer nw.Close()

	table := nw.Service().Categories()
	rows := [][]string{{"CATEGORY", "KEYWORDS"}}
	for _, name := range table.Names() {
		keywords, _ := table.Keywords(name)
		rows = append(rows, []string{name, strings.Join(keywords, ", ")})
	}
	writeTable(c.App.Writer, rows)
	return nil
}

func sourcesCommand(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	rows := [][]string{{"SOURCE", "URL"}}
	for _, s := range cfg.Sources {
		rows = append(rows, []string{s.Name, s.URL})
	}
	writeTable(c.App.Writer, rows)
	return nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Logs go to stderr; stdout carries the stdio transport.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
