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

package mcp

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/poiesic/newswire/tools"
)

const (
	defaultServerName    = "newswire"
	defaultServerVersion = "0.1.0"

	// maxMessageSize bounds a single JSON-RPC message.
	maxMessageSize = 1024 * 1024
)

// ToolService is the set of tools a Server exposes.
type ToolService interface {
	Tools() []tools.Tool
	Call(ctx context.Context, name string, arguments json.RawMessage) (any, error)
}

// Server is an MCP server exposing a ToolService.
type Server struct {
	service      ToolService
	name         string
	version      string
	instructions string
	logger       *slog.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithServerInfo sets the name and version reported from initialize.
func WithServerInfo(name, version string) Option {
	return func(s *Server) {
		if name != "" {
			s.name = name
		}
		if version != "" {
			s.version = version
		}
	}
}

// WithInstructions sets the usage hint returned from initialize.
func WithInstructions(instructions string) Option {
	return func(s *Server) {
		s.instructions = instructions
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
	}
}

// NewServer creates an MCP server for service.
func NewServer(service ToolService, opts ...Option) *Server {
	s := &Server{
		service: service,
		name:    defaultServerName,
		version: defaultServerVersion,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// session tracks per-connection protocol state.
type session struct {
	initialized bool
}

// ServeStdio runs the server on os.Stdin and os.Stdout.
func (s *Server) ServeStdio(ctx context.Context) error {
	return s.Run(ctx, os.Stdin, os.Stdout)
}

// Run processes newline-delimited JSON-RPC 2.0 requests from input and
// writes responses to output until input reaches EOF or ctx is done. A
// canceled ctx ends Run even while it is waiting on an idle input.
func (s *Server) Run(ctx context.Context, input io.Reader, output io.Writer) error {
	encoder := json.NewEncoder(output)
	encoder.SetEscapeHTML(false)

	lines, scanErr := scanLines(ctx, input)

	sess := &session{}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				return <-scanErr
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			if len(line) == 0 {
				continue
			}

			resp := s.handleMessage(ctx, sess, line)
			if resp == nil {
				continue
			}
			if err := encoder.Encode(resp); err != nil {
				return fmt.Errorf("writing response: %w", err)
			}
		}
	}
}

// scanLines reads newline-delimited messages from input on its own
// goroutine. The scan error is delivered on the second channel before the
// line channel is closed. Closable inputs are closed once ctx is done so
// the reader does not outlive Run.
func scanLines(ctx context.Context, input io.Reader) (<-chan []byte, <-chan error) {
	lines := make(chan []byte)
	scanErr := make(chan error, 1)

	go func() {
		defer close(lines)

		stop := context.AfterFunc(ctx, func() {
			if c, ok := input.(io.Closer); ok {
				_ = c.Close()
			}
		})
		defer stop()

		scanner := bufio.NewScanner(input)
		scanner.Buffer(make([]byte, 0, 64*1024), maxMessageSize)
		for scanner.Scan() {
			select {
			case lines <- bytes.Clone(scanner.Bytes()):
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	return lines, scanErr
}

// handleMessage decodes and dispatches one raw message. It returns nil when
// no response should be sent.
func (s *Server) handleMessage(ctx context.Context, sess *session, data []byte) *response {
	var req request
	if err := json.Unmarshal(data, &req); err != nil {
		return errorResponse(json.RawMessage("null"), codeParseError, "parse error: "+err.Error())
	}

	if req.JSONRPC != "2.0" {
		if req.isNotification() {
			return nil
		}
		return errorResponse(req.ID, codeInvalidRequest, "unsupported JSON-RPC version")
	}

	// Notifications have no ID and receive no response.
	if req.isNotification() {
		s.logger.Debug("notification received", "method", req.Method)
		return nil
	}

	return s.dispatch(ctx, sess, &req)
}

// dispatch routes a JSON-RPC request to the appropriate handler.
func (s *Server) dispatch(ctx context.Context, sess *session, req *request) *response {
	switch req.Method {
	case "initialize":
		return s.handleInitialize(sess, req)
	case "ping":
		return resultResponse(req.ID, map[string]any{})
	case "tools/list":
		if !sess.initialized {
			return errorResponse(req.ID, codeInvalidRequest, "server not initialized (call initialize first)")
		}
		return s.handleToolsList(req)
	case "tools/call":
		if !sess.initialized {
			return errorResponse(req.ID, codeInvalidRequest, "server not initialized (call initialize first)")
		}
		return s.handleToolsCall(ctx, req)
	default:
		return errorResponse(req.ID, codeMethodNotFound, "unknown method: "+req.Method)
	}
}

func (s *Server) handleInitialize(sess *session, req *request) *response {
	if len(req.Params) == 0 {
		return errorResponse(req.ID, codeInvalidParams, "params required for initialize")
	}

	var params initializeParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return errorResponse(req.ID, codeInvalidParams, "invalid initialize params: "+err.Error())
	}

	sess.initialized = true
	s.logger.Info("client initialized",
		"client", params.ClientInfo.Name,
		"client_version", params.ClientInfo.Version,
		"protocol", params.ProtocolVersion)

	return resultResponse(req.ID, initializeResult{
		ProtocolVersion: protocolVersion,
		Capabilities: serverCapabilities{
			Tools: &toolCapability{},
		},
		ServerInfo: serverInfo{
			Name:    s.name,
			Version: s.version,
		},
		Instructions: s.instructions,
	})
}

func (s *Server) handleToolsList(req *request) *response {
	readOnly, idempotent, openWorld := true, false, true

	list := s.service.Tools()
	descriptions := make([]toolDescription, 0, len(list))
	for _, t := range list {
		descriptions = append(descriptions, toolDescription{
			Name:        t.Name,
			Title:       t.Title,
			Description: t.Description,
			InputSchema: t.InputSchema,
			Annotations: &toolAnnotations{
				ReadOnlyHint:   &readOnly,
				IdempotentHint: &idempotent,
				OpenWorldHint:  &openWorld,
			},
		})
	}
	return resultResponse(req.ID, toolsListResult{Tools: descriptions})
}

func (s *Server) handleToolsCall(ctx context.Context, req *request) *response {
	if len(req.Params) == 0 {
		return errorResponse(req.ID, codeInvalidParams, "params required for tools/call")
	}

	var params toolsCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return errorResponse(req.ID, codeInvalidParams, "invalid tools/call params: "+err.Error())
	}

	result, err := s.service.Call(ctx, params.Name, params.Arguments)
	if errors.Is(err, tools.ErrUnknownTool) {
		return errorResponse(req.ID, codeInvalidParams, "unknown tool: "+params.Name)
	}
	if err != nil {
		s.logger.Info("tool call failed", "tool", params.Name, "err", err)
	} else {
		s.logger.Debug("tool call succeeded", "tool", params.Name)
	}

	callResult, buildErr := buildToolResult(result, err)
	if buildErr != nil {
		s.logger.Error("error encoding tool result", "tool", params.Name, "err", buildErr)
		return errorResponse(req.ID, codeInternalError, "encoding tool result: "+buildErr.Error())
	}
	return resultResponse(req.ID, callResult)
}

// buildToolResult renders a tool outcome as a tools/call result.
func buildToolResult(result any, callErr error) (toolsCallResult, error) {
	payload := tools.Payload(result, callErr)
	text, err := tools.Marshal(payload)
	if err != nil {
		return toolsCallResult{}, err
	}

	out := toolsCallResult{
		Content:           []contentBlock{{Type: "text", Text: text}},
		StructuredContent: payload,
	}
	if callErr != nil {
		category := tools.Classify(callErr)
		out.IsError = true
		out.ErrorInfo = &errorInfo{
			Category:  string(category),
			Retryable: category == tools.CategoryTransient,
		}
	}
	return out, nil
}

func resultResponse(id json.RawMessage, result any) *response {
	return &response{JSONRPC: "2.0", ID: id, Result: result}
}

func errorResponse(id json.RawMessage, code int, message string) *response {
	return &response{JSONRPC: "2.0", ID: id, Error: &rpcError{Code: code, Message: message}}
}
