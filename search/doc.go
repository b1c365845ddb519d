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

// Package search provides keyword search with synonym expansion over news articles.
//
// A search runs in three stages:
//   - Expansion: the query is widened with related terms from a SynonymTable
//   - Matching and scoring: articles containing any term are kept and scored
//     by where each term occurs (title 3, summary 2, tags 1, author 1)
//   - Ranking: matches are ordered by score, then by publication time
//
// Every stage is a pure function over its inputs. The synonym table is built
// once and never modified, so a Searcher is safe for concurrent use.
package search
