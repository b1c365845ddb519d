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

// Package tools implements the news tools exposed to agents: headlines,
// keyword search, category news and arbitrary feed retrieval.
//
// Every operation is stateless and best-effort. Feed failures are absorbed
// by the feed layer. Invalid input is reported as a categorized *ToolError
// whose message is the text shown to the caller. Unexpected faults, including
// panics and context cancellation, are caught at the operation boundary and
// converted to a *ToolError naming the operation that failed. Payload turns
// either outcome into the JSON object sent back to the caller.
package tools
