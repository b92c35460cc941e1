/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package paging

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// ErrNoMorePages is returned by NextPage once the paginator reached its terminal state.
var ErrNoMorePages = errors.New("no more pages available")

// Paginator walks a Marker/MaxRecords listing one call at a time. It is not
// restartable and must not be shared between goroutines.
type Paginator[T any] struct {
	fetch     FetchFunc[T]
	opts      Options
	nextToken *string
	done      bool
	emitted   int64
	pages     int
	errs      []error
	startTime time.Time
	lastFetch time.Time
}

// New creates a Paginator over fetch.
func New[T any](fetch FetchFunc[T], opts ...Option) *Paginator[T] {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	if options.Logger == nil {
		options.Logger = slog.Default()
	}

	return &Paginator[T]{
		fetch:     fetch,
		opts:      options,
		nextToken: nonEmpty(options.StartingToken),
	}
}

// HasMorePages reports whether NextPage may issue another call.
func (p *Paginator[T]) HasMorePages() bool {
	return !p.done
}

// NextToken returns the cursor to resume from. In manual mode this is the
// value to pass back through WithStartingToken. It is nil when the listing is
// exhausted or the last page was trimmed to the cap.
func (p *Paginator[T]) NextToken() *string {
	return p.nextToken
}

// Progress returns a snapshot of the pagination progress.
func (p *Paginator[T]) Progress() Progress {
	progress := Progress{
		ItemsProcessed: p.emitted,
		PagesProcessed: p.pages,
		NextToken:      p.nextToken,
		Errors:         append([]error(nil), p.errs...),
		StartTime:      p.startTime,
	}
	if !p.startTime.IsZero() {
		if elapsed := time.Since(p.startTime).Seconds(); elapsed > 0 {
			progress.CurrentRate = float64(p.emitted) / elapsed
		}
	}
	return progress
}

// requestSize computes MaxRecords for the next call: the page size, shrunk
// to the remaining cap, raised to the service minimum if one is set.
func (p *Paginator[T]) requestSize() *int32 {
	size := p.opts.PageSize
	if p.opts.MaxItems > 0 {
		remaining := p.opts.MaxItems - int32(p.emitted)
		if size <= 0 || remaining < size {
			size = remaining
		}
		if size < p.opts.MinPageSize {
			size = p.opts.MinPageSize
		}
	}
	if size <= 0 {
		return nil
	}
	return &size
}

// NextPage issues exactly one listing call and returns its items, trimmed to
// the remaining cap. After the paginator is done it returns ErrNoMorePages.
func (p *Paginator[T]) NextPage(ctx context.Context) (Page[T], error) {
	if p.done {
		return Page[T]{}, ErrNoMorePages
	}
	if err := ctx.Err(); err != nil {
		p.done = true
		return Page[T]{}, err
	}
	if p.startTime.IsZero() {
		p.startTime = time.Now()
	}

	page, err := p.fetch(ctx, p.nextToken, p.requestSize())
	if err != nil {
		p.done = true
		if p.keepPartial() {
			p.errs = append(p.errs, err)
			p.opts.Logger.Warn("page request failed, returning partial results",
				"pages", p.pages, "items", p.emitted, "error", err)
			p.reportProgress()
			return Page[T]{}, nil
		}
		return Page[T]{}, err
	}

	p.pages++
	p.lastFetch = time.Now()
	trimmed := false
	if p.opts.MaxItems > 0 {
		remaining := int64(p.opts.MaxItems) - p.emitted
		if int64(len(page.Items)) > remaining {
			page.Items = page.Items[:remaining]
			trimmed = true
		}
	}
	p.emitted += int64(len(page.Items))
	p.nextToken = nonEmpty(page.NextToken)
	if trimmed && p.nextToken != nil {
		// The service cursor points past the dropped items; resuming from it
		// would skip them.
		p.opts.Logger.Debug("page trimmed to cap, next token withheld",
			"items", p.emitted, "cap", p.opts.MaxItems)
		p.nextToken = nil
	}
	page.NextToken = p.nextToken

	switch {
	case p.nextToken == nil:
		p.done = true
	case p.opts.MaxItems > 0 && p.emitted >= int64(p.opts.MaxItems):
		p.done = true
	case p.opts.NoAutoIteration:
		p.done = true
	}

	p.reportProgress()
	return page, nil
}

// keepPartial reports whether a page error is absorbed: a cap is set, at
// least one page was emitted and the policy allows it.
func (p *Paginator[T]) keepPartial() bool {
	return p.opts.PartialResults == KeepPartialOnCap &&
		p.opts.MaxItems > 0 &&
		p.pages > 0
}

// All drains the paginator. On error it returns the items collected so far
// together with the error.
func (p *Paginator[T]) All(ctx context.Context) ([]T, error) {
	var items []T
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return items, err
		}
		items = append(items, page.Items...)
	}
	return items, nil
}

// Stream drains the paginator in the background and delivers items on the
// returned channel, which is closed when iteration ends. A terminal error is
// delivered as the last Result. Calls are still issued one at a time.
func (p *Paginator[T]) Stream(ctx context.Context) <-chan Result[T] {
	resultCh := make(chan Result[T], p.opts.BufferSize)
	go p.streamWorker(ctx, resultCh)
	return resultCh
}

func (p *Paginator[T]) streamWorker(ctx context.Context, resultCh chan<- Result[T]) {
	defer close(resultCh)

	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			select {
			case <-ctx.Done():
			case resultCh <- Result[T]{
				Error: err,
				Meta: Meta{
					Index:      p.emitted,
					PageNumber: p.pages,
					Timestamp:  time.Now(),
				},
			}:
			}
			return
		}

		base := p.emitted - int64(len(page.Items))
		for i, item := range page.Items {
			result := Result[T]{
				Item: item,
				Meta: Meta{
					Index:      base + int64(i),
					PageNumber: p.pages,
					Timestamp:  p.lastFetch,
				},
			}

			select {
			case <-ctx.Done():
				return
			case resultCh <- result:
			}
		}
	}
}

func (p *Paginator[T]) reportProgress() {
	if p.opts.ProgressHandler != nil {
		p.opts.ProgressHandler(p.Progress())
	}
}

func nonEmpty(token *string) *string {
	if token == nil || *token == "" {
		return nil
	}
	return token
}
