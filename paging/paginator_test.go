/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package paging

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeListing serves items in Marker/MaxRecords pages the way Redshift does:
// the marker is an opaque offset and the server caps pages at serverMax.
type fakeListing struct {
	items     []int
	serverMax int
	requested []int32 // MaxRecords of each call, 0 when nil
	failOn    map[int]error
}

func newFakeListing(n int) *fakeListing {
	items := make([]int, n)
	for i := range items {
		items[i] = i
	}
	return &fakeListing{items: items, serverMax: 100, failOn: map[int]error{}}
}

func (f *fakeListing) fetch(_ context.Context, marker *string, maxRecords *int32) (Page[int], error) {
	var size int32
	if maxRecords != nil {
		size = *maxRecords
	}
	f.requested = append(f.requested, size)
	if err, ok := f.failOn[len(f.requested)]; ok {
		return Page[int]{}, err
	}

	start := 0
	if marker != nil {
		start, _ = strconv.Atoi(*marker)
	}
	limit := int(size)
	if limit == 0 || limit > f.serverMax {
		limit = f.serverMax
	}
	end := start + limit
	if end > len(f.items) {
		end = len(f.items)
	}

	var next *string
	if end < len(f.items) {
		token := strconv.Itoa(end)
		next = &token
	}
	return Page[int]{Items: f.items[start:end], NextToken: next}, nil
}

func pageSizes(t *testing.T, p *Paginator[int]) []int {
	t.Helper()
	var sizes []int
	for p.HasMorePages() {
		page, err := p.NextPage(context.Background())
		require.NoError(t, err)
		sizes = append(sizes, len(page.Items))
	}
	return sizes
}

func TestPaginator_NoCapWalksAllPages(t *testing.T) {
	listing := newFakeListing(250)
	p := New(listing.fetch)

	assert.Equal(t, []int{100, 100, 50}, pageSizes(t, p))
	assert.Equal(t, []int32{100, 100, 100}, listing.requested)
	assert.Nil(t, p.NextToken())
}

func TestPaginator_CapShrinksPageSize(t *testing.T) {
	listing := newFakeListing(500)
	p := New(listing.fetch, WithMaxItems(120))

	items, err := p.All(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 120)
	assert.Equal(t, []int32{100, 20}, listing.requested)
	assert.NotNil(t, p.NextToken(), "cap reached before the listing was exhausted")
}

func TestPaginator_RequestSizeNeverExceedsRemainingCap(t *testing.T) {
	for _, pageSize := range []int32{1, 7, 20, 100} {
		for _, maxItems := range []int32{0, 1, 19, 20, 99, 101, 250, 999} {
			listing := newFakeListing(300)
			p := New(listing.fetch, WithPageSize(pageSize), WithMaxItems(maxItems))

			items, err := p.All(context.Background())
			require.NoError(t, err)

			var got int32
			for _, size := range listing.requested {
				limit := pageSize
				if maxItems > 0 && maxItems-got < limit {
					limit = maxItems - got
				}
				assert.LessOrEqual(t, size, limit, "page=%d cap=%d", pageSize, maxItems)
				assert.Greater(t, size, int32(0))
				got += size
			}

			want := 300
			if maxItems > 0 && int(maxItems) < want {
				want = int(maxItems)
			}
			assert.Len(t, items, want, "page=%d cap=%d", pageSize, maxItems)

			if maxItems == 0 {
				calls := (300 + int(pageSize) - 1) / int(pageSize)
				assert.LessOrEqual(t, len(listing.requested), calls)
			}
		}
	}
}

func TestPaginator_MinPageSizeTrimsSurplus(t *testing.T) {
	listing := newFakeListing(500)
	p := New(listing.fetch, WithMaxItems(110), WithMinPageSize(20))

	items, err := p.All(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 110)
	assert.Equal(t, []int32{100, 20}, listing.requested)
	assert.Equal(t, 109, items[len(items)-1])
}

func TestPaginator_TrimmedPageWithholdsToken(t *testing.T) {
	listing := newFakeListing(50)
	p := New(listing.fetch, WithMaxItems(5), WithMinPageSize(20), WithNoAutoIteration(true))

	items, err := p.All(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, items)
	assert.Equal(t, []int32{20}, listing.requested)
	assert.Nil(t, p.NextToken(), "the service cursor would skip items 5 to 19")
	assert.Nil(t, p.Progress().NextToken)
}

func TestPaginator_EmptyCursorHalts(t *testing.T) {
	calls := 0
	empty := ""
	fetch := func(_ context.Context, _ *string, _ *int32) (Page[int], error) {
		calls++
		return Page[int]{Items: []int{1, 2, 3}, NextToken: &empty}, nil
	}

	p := New(fetch, WithMaxItems(1000))
	items, err := p.All(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, items)
	assert.Equal(t, 1, calls)
	assert.Nil(t, p.NextToken())
}

func TestPaginator_ManualModeIssuesOneCall(t *testing.T) {
	listing := newFakeListing(250)
	p := New(listing.fetch, WithNoAutoIteration(true), WithMaxItems(1000))

	items, err := p.All(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 100)
	assert.Len(t, listing.requested, 1)
	require.NotNil(t, p.NextToken())
	assert.Equal(t, "100", *p.NextToken())

	_, err = p.NextPage(context.Background())
	assert.ErrorIs(t, err, ErrNoMorePages)

	resumed := New(listing.fetch, WithNoAutoIteration(true), WithStartingToken(p.NextToken()))
	items, err = resumed.All(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 100, items[0])
}

func TestPaginator_EmptyStartingTokenStartsFromBeginning(t *testing.T) {
	listing := newFakeListing(10)
	empty := ""
	items, err := New(listing.fetch, WithStartingToken(&empty)).All(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 10)
}

func TestPaginator_FailurePolicy(t *testing.T) {
	boom := errors.New("throttled")

	t.Run("first page failure surfaces even with a cap", func(t *testing.T) {
		listing := newFakeListing(250)
		listing.failOn[1] = boom

		items, err := New(listing.fetch, WithMaxItems(120)).All(context.Background())
		assert.ErrorIs(t, err, boom)
		assert.Empty(t, items)
	})

	t.Run("later failure with a cap keeps partial results", func(t *testing.T) {
		listing := newFakeListing(250)
		listing.serverMax = 80
		listing.failOn[2] = boom

		var last Progress
		p := New(listing.fetch, WithMaxItems(200), WithProgressHandler(func(pr Progress) { last = pr }))
		items, err := p.All(context.Background())
		require.NoError(t, err)
		assert.Len(t, items, 80)
		assert.False(t, p.HasMorePages())
		require.Len(t, last.Errors, 1)
		assert.ErrorIs(t, last.Errors[0], boom)
	})

	t.Run("later failure without a cap surfaces", func(t *testing.T) {
		listing := newFakeListing(250)
		listing.failOn[2] = boom

		items, err := New(listing.fetch).All(context.Background())
		assert.ErrorIs(t, err, boom)
		assert.Len(t, items, 100)
	})

	t.Run("fail fast surfaces later failures with a cap", func(t *testing.T) {
		listing := newFakeListing(250)
		listing.failOn[2] = boom

		_, err := New(listing.fetch, WithMaxItems(200), WithPartialResults(FailFast)).All(context.Background())
		assert.ErrorIs(t, err, boom)
	})
}

func TestPaginator_ContextCheckedBetweenPages(t *testing.T) {
	listing := newFakeListing(250)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p := New(listing.fetch, WithProgressHandler(func(Progress) { cancel() }))
	items, err := p.All(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, items, 100)
	assert.Len(t, listing.requested, 1)
}

func TestPaginator_Stream(t *testing.T) {
	t.Run("items carry metadata", func(t *testing.T) {
		listing := newFakeListing(150)
		p := New(listing.fetch, WithBufferSize(10))

		var results []Result[int]
		for r := range p.Stream(context.Background()) {
			results = append(results, r)
		}

		require.Len(t, results, 150)
		for i, r := range results {
			require.NoError(t, r.Error)
			assert.Equal(t, i, r.Item)
			assert.Equal(t, int64(i), r.Meta.Index)
		}
		assert.Equal(t, 1, results[99].Meta.PageNumber)
		assert.Equal(t, 2, results[100].Meta.PageNumber)
	})

	t.Run("terminal error is the last result", func(t *testing.T) {
		listing := newFakeListing(150)
		listing.failOn[2] = errors.New("denied")
		p := New(listing.fetch)

		var results []Result[int]
		for r := range p.Stream(context.Background()) {
			results = append(results, r)
		}

		require.Len(t, results, 101)
		assert.EqualError(t, results[100].Error, "denied")
		assert.Equal(t, int64(100), results[100].Meta.Index)
	})

	t.Run("not restartable", func(t *testing.T) {
		listing := newFakeListing(5)
		p := New(listing.fetch)
		for range p.Stream(context.Background()) {
		}

		count := 0
		for range p.Stream(context.Background()) {
			count++
		}
		assert.Zero(t, count)
		assert.Len(t, listing.requested, 1)
	})
}

func TestPaginator_Progress(t *testing.T) {
	listing := newFakeListing(250)
	var reports []Progress
	p := New(listing.fetch, WithProgressHandler(func(pr Progress) { reports = append(reports, pr) }))

	_, err := p.All(context.Background())
	require.NoError(t, err)
	require.Len(t, reports, 3)
	assert.Equal(t, int64(250), reports[2].ItemsProcessed)
	assert.Equal(t, 3, reports[2].PagesProcessed)
	assert.Nil(t, reports[2].NextToken)
	assert.False(t, reports[0].StartTime.IsZero())
}
