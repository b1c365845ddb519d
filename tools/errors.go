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

package tools

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrConfigRequired is returned when a nil configuration is supplied.
	ErrConfigRequired = errors.New("config required")

	// ErrSearcherRequired is returned when a nil searcher is supplied.
	ErrSearcherRequired = errors.New("searcher required")

	// ErrCategoriesRequired is returned when a nil category table is supplied.
	ErrCategoriesRequired = errors.New("category table required")

	// ErrUnknownSource is returned when a headline source is not registered.
	ErrUnknownSource = errors.New("unknown source")

	// ErrEmptyQuery is returned when a search query is blank.
	ErrEmptyQuery = errors.New("empty query")

	// ErrUnknownCategory is returned when a category is not defined.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrEmptyFeedURL is returned when a feed URL is blank.
	ErrEmptyFeedURL = errors.New("empty feed url")

	// ErrUnknownTool is returned when calling a tool that does not exist.
	ErrUnknownTool = errors.New("unknown tool")

	// ErrInvalidArguments is returned when tool arguments cannot be decoded.
	ErrInvalidArguments = errors.New("invalid arguments")

	// ErrToolPanic is wrapped by errors raised from a recovered panic.
	ErrToolPanic = errors.New("tool panicked")
)

// ErrorCategory classifies tool errors so callers can decide whether to
// fix their input, give up or retry.
type ErrorCategory string

const (
	// CategoryValidation means the caller supplied bad input.
	CategoryValidation ErrorCategory = "validation"

	// CategoryNotFound means a named source or category does not exist.
	CategoryNotFound ErrorCategory = "not_found"

	// CategoryTransient means the call was cut short by cancellation or a
	// deadline. Repeating it may succeed.
	CategoryTransient ErrorCategory = "transient"

	// CategoryInternal means an unexpected fault.
	CategoryInternal ErrorCategory = "internal"
)

// ToolError is a categorized error returned by tool operations.
// Message is the text reported to the caller; Err is the underlying cause
// and is reachable through errors.Is and errors.As.
type ToolError struct {
	Category ErrorCategory
	Message  string
	Err      error
}

// Error returns the caller-facing message.
func (e *ToolError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Category)
}

// Unwrap returns the underlying cause.
func (e *ToolError) Unwrap() error { return e.Err }

// Retryable reports whether repeating the same call might succeed.
func (e *ToolError) Retryable() bool { return e.Category == CategoryTransient }

func validation(cause error, format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryValidation, Message: fmt.Sprintf(format, args...), Err: cause}
}

func notFound(cause error, format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryNotFound, Message: fmt.Sprintf(format, args...), Err: cause}
}

// fault converts an unexpected error into a ToolError prefixed with the
// failing operation, e.g. "Error searching news: context canceled".
func fault(op string, err error) *ToolError {
	category := CategoryInternal
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		category = CategoryTransient
	}
	return &ToolError{Category: category, Message: op + ": " + err.Error(), Err: err}
}

// Classify returns the category of err. Errors that are not ToolErrors are
// internal.
func Classify(err error) ErrorCategory {
	var te *ToolError
	if errors.As(err, &te) {
		return te.Category
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return CategoryTransient
	}
	return CategoryInternal
}
