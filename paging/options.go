/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package paging

import (
	"log/slog"
)

// PartialResultPolicy decides what happens when a page request fails after
// earlier pages were already emitted.
type PartialResultPolicy int

const (
	// KeepPartialOnCap ends iteration without error when a later page fails
	// and the caller set MaxItems. Without a cap the error surfaces.
	KeepPartialOnCap PartialResultPolicy = iota
	// FailFast surfaces every page error.
	FailFast
)

// Options configures pagination behavior
type Options struct {
	StartingToken   *string             // Cursor to resume from (nil: start from the beginning)
	MaxItems        int32               // Total items to return across pages (0: no cap)
	PageSize        int32               // Service maximum per call (default: 100)
	MinPageSize     int32               // Service minimum per call (default: 0, none)
	NoAutoIteration bool                // Fetch exactly one page and surface the next cursor
	PartialResults  PartialResultPolicy // Policy for page errors after the first page
	BufferSize      int                 // Stream channel buffer size (default: 100)
	ProgressHandler func(Progress)      // Optional progress callback, invoked after each page
	Logger          *slog.Logger        // Receives warnings about kept partial results
}

// Option is a functional option for configuring pagination
type Option func(*Options)

// DefaultOptions returns default pagination options
func DefaultOptions() Options {
	return Options{
		PageSize:       100,
		BufferSize:     100,
		PartialResults: KeepPartialOnCap,
	}
}

// WithStartingToken resumes listing from a cursor returned by an earlier call
func WithStartingToken(token *string) Option {
	return func(opts *Options) {
		opts.StartingToken = token
	}
}

// WithMaxItems caps the total number of items returned
func WithMaxItems(n int32) Option {
	return func(opts *Options) {
		opts.MaxItems = n
	}
}

// WithPageSize sets the per-call page size upper bound
func WithPageSize(size int32) Option {
	return func(opts *Options) {
		opts.PageSize = size
	}
}

// WithMinPageSize sets the smallest page size the service accepts
func WithMinPageSize(size int32) Option {
	return func(opts *Options) {
		opts.MinPageSize = size
	}
}

// WithNoAutoIteration switches to manual paging: one call per iteration
func WithNoAutoIteration(manual bool) Option {
	return func(opts *Options) {
		opts.NoAutoIteration = manual
	}
}

// WithPartialResults sets the policy for page errors after the first page
func WithPartialResults(policy PartialResultPolicy) Option {
	return func(opts *Options) {
		opts.PartialResults = policy
	}
}

// WithBufferSize sets the Stream channel buffer size
func WithBufferSize(size int) Option {
	return func(opts *Options) {
		opts.BufferSize = size
	}
}

// WithProgressHandler sets a progress callback
func WithProgressHandler(handler func(Progress)) Option {
	return func(opts *Options) {
		opts.ProgressHandler = handler
	}
}

// WithLogger sets the logger used for paging warnings
func WithLogger(logger *slog.Logger) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}
