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

// Package feed retrieves RSS and Atom feeds and normalizes their entries
// into core.Article values.
//
// A Source never returns an error: download and parse failures are logged
// and produce an empty slice, so one broken feed cannot fail a request that
// spans many. The Aggregator fans a request out over the source registry on
// a bounded worker pool and returns once every feed has answered.
package feed
