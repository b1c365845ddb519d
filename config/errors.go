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

package config

import "errors"

// Configuration validation errors.
var (
	ErrNoSources             = errors.New("at least one source is required")
	ErrSourceMissingName     = errors.New("source name is required")
	ErrSourceMissingURL      = errors.New("source url is required")
	ErrSourceReservedName    = errors.New("source name \"all\" is reserved")
	ErrDuplicateSource       = errors.New("duplicate source name")
	ErrInvalidPerSource      = errors.New("per-source limits must be between 1 and 50")
	ErrInvalidFetchTimeout   = errors.New("fetch_timeout must be positive")
	ErrInvalidPoolSize       = errors.New("pool_size must be at least 1")
	ErrMissingListenAddress  = errors.New("listen address is required")
	ErrInvalidShutdownPeriod = errors.New("shutdown_timeout must be positive")
)
