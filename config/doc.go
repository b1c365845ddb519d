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

// Package config holds the runtime configuration for newswire: which feeds
// are polled, how many entries are read from each, and how the feed client
// and tool server behave.
//
// A Config starts from DefaultConfig and is adjusted either with functional
// options or by overlaying a YAML file with Load.
//
//	cfg := config.NewConfig(
//	    config.WithFetchTimeout(10*time.Second),
//	    config.WithPoolSize(4),
//	)
//
//	cfg, err := config.Load("newswire.yaml")
package config
