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

package core

const (
	// MinLimit is the smallest number of articles a tool call can return.
	MinLimit = 1
	// MaxLimit is the largest number of articles a tool call can return.
	MaxLimit = 50
	// DefaultLimit is used when a caller does not supply a limit.
	DefaultLimit = 10
)

// ClampLimit forces a caller-supplied limit into [MinLimit, MaxLimit].
// Zero and negative values clamp to MinLimit.
func ClampLimit(limit int) int {
	return min(max(limit, MinLimit), MaxLimit)
}
