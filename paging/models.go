/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package paging

import (
	"context"
	"time"
)

// FetchFunc performs one remote listing call. marker is nil for the first
// page; maxRecords is nil when the service default page size applies.
type FetchFunc[T any] func(ctx context.Context, marker *string, maxRecords *int32) (Page[T], error)

// Page is one response of a listing call.
type Page[T any] struct {
	Items     []T
	NextToken *string // Marker returned by the service; nil or empty when exhausted
}

// Result represents a single item in a stream with metadata
type Result[T any] struct {
	Item  T     // The listed item
	Error error // Terminal error; set only on the last result of a stream
	Meta  Meta  // Metadata about this item
}

// Meta contains metadata about a streamed item
type Meta struct {
	Index      int64     // Item index in stream (0-based)
	PageNumber int       // Page number (1-based)
	Timestamp  time.Time // When the page was retrieved
}

// Progress tracks pagination progress
type Progress struct {
	ItemsProcessed int64     // Total items emitted
	PagesProcessed int       // Total pages fetched successfully
	NextToken      *string   // Cursor for the next call, nil when exhausted
	Errors         []error   // Page errors absorbed by KeepPartialOnCap
	StartTime      time.Time // When pagination started
	CurrentRate    float64   // Items per second
}
