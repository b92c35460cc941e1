/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package audit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/redshiftctl/paging"
	"github.com/suparena/redshiftctl/registry"
)

func TestNewRecord(t *testing.T) {
	r := NewRecord("DeleteCluster", "analytics", "us-east-1", registry.ImpactHigh)
	assert.NotEmpty(t, r.ID)
	assert.Equal(t, "high", r.Impact)
	assert.False(t, r.CreatedAt.IsZero())

	r.Finish(OutcomeFailed, errors.New("boom"))
	assert.Equal(t, OutcomeFailed, r.Outcome)
	assert.Equal(t, "boom", r.Error)
}

func TestMemoryJournal(t *testing.T) {
	ctx := context.Background()
	j := NewMemoryJournal()
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		r := NewRecord("RebootCluster", "analytics", "us-east-1", registry.ImpactHigh)
		r.CreatedAt = base.Add(time.Duration(i) * time.Hour)
		r.Finish(OutcomeSucceeded, nil)
		require.NoError(t, j.Put(ctx, r))
	}
	require.NoError(t, j.Put(ctx, NewRecord("DeleteCluster", "other", "", registry.ImpactHigh)))

	t.Run("newest first", func(t *testing.T) {
		records, err := j.List(Query{Target: "analytics"}).All(ctx)
		require.NoError(t, err)
		require.Len(t, records, 5)
		assert.Equal(t, base.Add(4*time.Hour), records[0].CreatedAt)
		assert.Equal(t, base, records[4].CreatedAt)
	})

	t.Run("time bounds", func(t *testing.T) {
		q := Query{Target: "analytics", Since: base.Add(time.Hour), Until: base.Add(3 * time.Hour)}
		records, err := j.List(q).All(ctx)
		require.NoError(t, err)
		assert.Len(t, records, 3)
	})

	t.Run("by operation", func(t *testing.T) {
		records, err := j.List(Query{Operation: "DeleteCluster"}).All(ctx)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "other", records[0].Target)

		records, err = j.List(Query{Target: "analytics", Operation: "DeleteCluster"}).All(ctx)
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("needs a target or an operation", func(t *testing.T) {
		_, err := j.List(Query{}).All(ctx)
		assert.Error(t, err)
	})

	t.Run("paged", func(t *testing.T) {
		p := j.List(Query{Target: "analytics"}, paging.WithPageSize(2), paging.WithMaxItems(3))
		records, err := p.All(ctx)
		require.NoError(t, err)
		assert.Len(t, records, 3)
		assert.Equal(t, 2, p.Progress().PagesProcessed)
	})
}
