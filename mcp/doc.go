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

// Package mcp serves the news tools over the Model Context Protocol.
//
// The server speaks JSON-RPC 2.0 and implements initialize, ping,
// tools/list and tools/call. Two transports share one dispatcher:
//
//   - stdio: newline-delimited JSON-RPC on a reader/writer pair. A session
//     must call initialize before listing or calling tools.
//   - HTTP: one JSON-RPC message per POST body. HTTP is stateless, so every
//     request is served as part of an already initialized session and
//     notifications are acknowledged with 202 Accepted.
//
// Tool results carry the indented JSON payload as a text content block and
// the same payload as structuredContent. Failed calls set isError and
// attach errorInfo describing the error category.
package mcp
