/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package audit

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"

	"github.com/suparena/redshiftctl/paging"
)

// MemoryJournal keeps records in memory.
type MemoryJournal struct {
	mu      sync.RWMutex
	records []Record
}

var _ Journal = (*MemoryJournal)(nil)

// NewMemoryJournal creates an empty journal.
func NewMemoryJournal() *MemoryJournal {
	return &MemoryJournal{}
}

// Put stores record.
func (j *MemoryJournal) Put(ctx context.Context, record Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	j.records = append(j.records, record)
	return nil
}

// List pages through the records q selects, newest first. Markers are offsets.
func (j *MemoryJournal) List(q Query, opts ...paging.Option) *paging.Paginator[Record] {
	fetch := func(ctx context.Context, marker *string, maxRecords *int32) (paging.Page[Record], error) {
		if err := q.Validate(); err != nil {
			return paging.Page[Record]{}, err
		}

		j.mu.RLock()
		var matched []Record
		for _, r := range j.records {
			if q.Matches(r) {
				matched = append(matched, r)
			}
		}
		j.mu.RUnlock()

		sort.SliceStable(matched, func(a, b int) bool {
			return matched[a].CreatedAt.After(matched[b].CreatedAt)
		})

		start := 0
		if marker != nil {
			n, err := strconv.Atoi(*marker)
			if err != nil || n < 0 || n > len(matched) {
				return paging.Page[Record]{}, fmt.Errorf("invalid audit marker %q", *marker)
			}
			start = n
		}
		end := len(matched)
		if maxRecords != nil && start+int(*maxRecords) < end {
			end = start + int(*maxRecords)
		}

		page := paging.Page[Record]{Items: matched[start:end]}
		if end < len(matched) {
			page.NextToken = aws.String(strconv.Itoa(end))
		}
		return page, nil
	}
	return paging.New(fetch, opts...)
}
