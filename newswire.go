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

package newswire

import (
	"log/slog"

	"github.com/poiesic/newswire/config"
	"github.com/poiesic/newswire/feed"
	"github.com/poiesic/newswire/mcp"
	"github.com/poiesic/newswire/search"
	"github.com/poiesic/newswire/tools"
)

// Version is reported to MCP clients.
const Version = "0.1.0"

// serverInstructions is returned to MCP clients from initialize.
const serverInstructions = "Tools for reading current news: headlines from major outlets, " +
	"keyword search with synonym expansion, topic categories and arbitrary RSS feeds."

type Newswire struct {
	cfg     *config.Config
	service *tools.Service
	logger  *slog.Logger
}

// Option configures a Newswire.
type Option func(*options)

type options struct {
	source feed.Source
	logger *slog.Logger
}

// WithSource replaces the HTTP feed source, typically with a test double.
func WithSource(source feed.Source) Option {
	return func(o *options) {
		o.source = source
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = slog.Default()
		}
		o.logger = logger
	}
}

// New wires the news tools for cfg. A nil cfg selects config.DefaultConfig().
func New(cfg *config.Config, opts ...Option) (*Newswire, error) {
	options := &options{logger: slog.Default()}
	for _, opt := range opts {
		opt(options)
	}

	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	searcher, err := search.NewSearcher(search.WithLogger(options.logger))
	if err != nil {
		return nil, err
	}

	serviceOpts := []tools.Option{
		tools.WithConfig(cfg),
		tools.WithSearcher(searcher),
		tools.WithLogger(options.logger),
	}
	if options.source != nil {
		serviceOpts = append(serviceOpts, tools.WithSource(options.source))
	}

	service, err := tools.NewService(serviceOpts...)
	if err != nil {
		return nil, err
	}

	return &Newswire{
		cfg:     cfg,
		service: service,
		logger:  options.logger,
	}, nil
}

func (n *Newswire) Close() error {
	if err := n.service.Close(); err != nil {
		n.logger.Error("error closing tool service", "err", err)
		return err
	}
	return nil
}

func (n *Newswire) Config() *config.Config {
	return n.cfg
}

func (n *Newswire) Service() *tools.Service {
	return n.service
}

// NewMCPServer creates an MCP server exposing the news tools.
func (n *Newswire) NewMCPServer(opts ...mcp.Option) *mcp.Server {
	defaults := []mcp.Option{
		mcp.WithServerInfo("newswire", Version),
		mcp.WithInstructions(serverInstructions),
		mcp.WithLogger(n.logger),
	}
	return mcp.NewServer(n.service, append(defaults, opts...)...)
}

// NewHTTPServer creates an HTTP server for the MCP endpoint on the
// configured listen address.
func (n *Newswire) NewHTTPServer(opts ...mcp.Option) (*mcp.HTTPServer, error) {
	return mcp.NewHTTPServer(mcp.HTTPServerConfig{
		Address:         n.cfg.ListenAddress,
		Handler:         n.NewMCPServer(opts...).Handler(),
		ShutdownTimeout: n.cfg.ShutdownTimeout,
		Logger:          n.logger,
	})
}
