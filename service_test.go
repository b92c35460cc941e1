/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package redshiftctl

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/redshift/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/redshiftctl/audit"
	"github.com/suparena/redshiftctl/client/mock"
	"github.com/suparena/redshiftctl/confirm"
	rserrors "github.com/suparena/redshiftctl/errors"
	"github.com/suparena/redshiftctl/paging"
	"github.com/suparena/redshiftctl/registry"
)

func seedClusters(n int) []types.Cluster {
	out := make([]types.Cluster, n)
	for i := range out {
		out[i] = types.Cluster{
			ClusterIdentifier: aws.String(fmt.Sprintf("cluster-%03d", i)),
			ClusterStatus:     aws.String("available"),
			NodeType:          aws.String("ra3.xlplus"),
			NumberOfNodes:     aws.Int32(2),
		}
	}
	return out
}

func requested(calls []mock.Call) []int32 {
	sizes := make([]int32, len(calls))
	for i, c := range calls {
		sizes[i] = aws.ToInt32(c.MaxRecords)
	}
	return sizes
}

func TestDescribeClustersPaging(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		total     int
		pageSize  int32
		opts      []paging.Option
		wantItems int
		wantSizes []int32
	}{
		{"no cap", 250, 100, nil, 250, []int32{100, 100, 100}},
		{"cap shrinks last request", 250, 100, []paging.Option{paging.WithMaxItems(120)}, 120, []int32{100, 20}},
		{"cap below service minimum", 250, 100, []paging.Option{paging.WithMaxItems(105)}, 105, []int32{100, 20}},
		{"small cap", 250, 100, []paging.Option{paging.WithMaxItems(5)}, 5, []int32{20}},
		{"cap above total", 30, 100, []paging.Option{paging.WithMaxItems(500)}, 30, []int32{100}},
		{"custom page size", 90, 40, nil, 90, []int32{40, 40, 40}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := mock.New().WithClusters(seedClusters(tt.total)...)
			svc := New(api, WithPageSize(tt.pageSize))

			p, err := svc.DescribeClusters(DescribeClustersParams{}, tt.opts...)
			require.NoError(t, err)

			items, err := p.All(ctx)
			require.NoError(t, err)
			assert.Len(t, items, tt.wantItems)
			assert.Equal(t, tt.wantSizes, requested(api.Calls("DescribeClusters")))
		})
	}
}

func TestManualPaging(t *testing.T) {
	ctx := context.Background()
	api := mock.New().WithClusters(seedClusters(150)...)
	svc := New(api)

	p, err := svc.DescribeClusters(DescribeClustersParams{}, paging.WithNoAutoIteration(true))
	require.NoError(t, err)

	items, err := p.All(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 100)
	assert.Len(t, api.Calls("DescribeClusters"), 1)
	require.NotNil(t, p.NextToken())

	p, err = svc.DescribeClusters(DescribeClustersParams{}, paging.WithStartingToken(p.NextToken()))
	require.NoError(t, err)
	rest, err := p.All(ctx)
	require.NoError(t, err)
	assert.Len(t, rest, 50)
	assert.Equal(t, "cluster-100", aws.ToString(rest[0].ClusterIdentifier))
}

func TestPartialResults(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("connection reset")

	t.Run("second page failure with cap keeps first page", func(t *testing.T) {
		api := mock.New().WithClusters(seedClusters(250)...).WithErrorOnCall("DescribeClusters", 2, boom)
		svc := New(api, WithPageSize(80))

		p, err := svc.DescribeClusters(DescribeClustersParams{}, paging.WithMaxItems(200))
		require.NoError(t, err)
		items, err := p.All(ctx)
		require.NoError(t, err)
		assert.Len(t, items, 80)

		progress := p.Progress()
		require.Len(t, progress.Errors, 1)
		assert.ErrorIs(t, progress.Errors[0], boom)
	})

	t.Run("second page failure with strict paging surfaces", func(t *testing.T) {
		api := mock.New().WithClusters(seedClusters(250)...).WithErrorOnCall("DescribeClusters", 2, boom)
		svc := New(api, WithPageSize(80))

		p, err := svc.DescribeClusters(DescribeClustersParams{},
			paging.WithMaxItems(200), paging.WithPartialResults(paging.FailFast))
		require.NoError(t, err)
		items, err := p.All(ctx)
		assert.ErrorIs(t, err, boom)
		assert.Len(t, items, 80)
	})

	t.Run("first page failure with cap surfaces", func(t *testing.T) {
		api := mock.New().WithClusters(seedClusters(250)...).WithErrorOnCall("DescribeClusters", 1, boom)
		svc := New(api)

		p, err := svc.DescribeClusters(DescribeClustersParams{}, paging.WithMaxItems(200))
		require.NoError(t, err)
		_, err = p.All(ctx)
		require.Error(t, err)

		var serviceErr *rserrors.ServiceError
		require.True(t, errors.As(err, &serviceErr))
		assert.Equal(t, "DescribeClusters", serviceErr.Operation)
	})
}

func TestValidationBeforeCall(t *testing.T) {
	ctx := context.Background()
	api := mock.New()
	svc := New(api, WithPrompter(confirm.Static(true)))

	_, err := svc.DescribeClusterParameters(DescribeClusterParametersParams{})
	assert.True(t, rserrors.IsValidationError(err))
	assert.Contains(t, err.Error(), "--parameter-group-name")

	_, err = svc.DeleteCluster(ctx, DeleteClusterParams{ClusterIdentifier: "analytics"})
	assert.True(t, rserrors.IsValidationError(err))
	assert.Contains(t, err.Error(), "--final-cluster-snapshot-identifier")

	_, err = svc.CreateUsageLimit(ctx, CreateUsageLimitParams{
		ClusterIdentifier: "analytics", FeatureType: "spectrum", LimitType: "minutes", Amount: 10,
	})
	assert.True(t, rserrors.IsValidationError(err))

	assert.Empty(t, api.Calls(""))
}

func TestConfirmationGate(t *testing.T) {
	ctx := context.Background()
	target := ClusterParams{ClusterIdentifier: "cluster-000"}

	t.Run("declined makes no call", func(t *testing.T) {
		api := mock.New().WithClusters(seedClusters(1)...)
		journal := audit.NewMemoryJournal()
		svc := New(api, WithPrompter(confirm.Static(false)), WithJournal(journal))

		_, err := svc.RebootCluster(ctx, target)
		assert.True(t, rserrors.IsDeclined(err))
		assert.Empty(t, api.Calls("RebootCluster"))

		records, err := journal.List(audit.Query{Target: "cluster-000"}).All(ctx)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, audit.OutcomeDeclined, records[0].Outcome)
	})

	t.Run("force skips prompt", func(t *testing.T) {
		api := mock.New().WithClusters(seedClusters(1)...)
		prompted := false
		svc := New(api, WithPrompter(confirm.Func(func(context.Context, confirm.Request) (bool, error) {
			prompted = true
			return false, nil
		})))

		cluster, err := svc.RebootCluster(ctx, target, WithForce())
		require.NoError(t, err)
		assert.False(t, prompted)
		assert.Equal(t, "rebooting", aws.ToString(cluster.ClusterStatus))
	})

	t.Run("below threshold is not prompted", func(t *testing.T) {
		api := mock.New().WithClusters(seedClusters(1)...)
		svc := New(api, WithPrompter(confirm.Static(false)))

		_, err := svc.ModifyCluster(ctx, ModifyClusterParams{ClusterIdentifier: "cluster-000", NodeType: "ra3.4xlarge"})
		require.NoError(t, err)
		assert.Len(t, api.Calls("ModifyCluster"), 1)
	})

	t.Run("lower threshold prompts medium impact", func(t *testing.T) {
		api := mock.New().WithClusters(seedClusters(1)...)
		var seen confirm.Request
		svc := New(api, WithConfirmThreshold(registry.ImpactMedium),
			WithPrompter(confirm.Func(func(_ context.Context, r confirm.Request) (bool, error) {
				seen = r
				return true, nil
			})))

		_, err := svc.ModifyCluster(ctx, ModifyClusterParams{ClusterIdentifier: "cluster-000", NodeType: "ra3.4xlarge"})
		require.NoError(t, err)
		assert.Equal(t, "ModifyCluster", seen.Operation)
		assert.Equal(t, "cluster-000", seen.Target)
		assert.Equal(t, registry.ImpactMedium, seen.Impact)
	})

	t.Run("prompter error aborts", func(t *testing.T) {
		api := mock.New().WithClusters(seedClusters(1)...)
		svc := New(api, WithPrompter(confirm.Func(func(context.Context, confirm.Request) (bool, error) {
			return false, confirm.ErrNotInteractive
		})))

		_, err := svc.PauseCluster(ctx, target)
		assert.ErrorIs(t, err, confirm.ErrNotInteractive)
		assert.Empty(t, api.Calls("PauseCluster"))
	})
}

func TestRemoteErrorClassification(t *testing.T) {
	ctx := context.Background()

	t.Run("dns failure is rewritten", func(t *testing.T) {
		dnsErr := &net.OpError{Op: "dial", Net: "tcp", Err: &net.DNSError{
			Err: "no such host", Name: "redshift.mars-north-1.amazonaws.com", IsNotFound: true,
		}}
		api := mock.New().WithError("DescribeClusters", dnsErr)
		svc := New(api, WithRegion("mars-north-1"))

		p, err := svc.DescribeClusters(DescribeClustersParams{})
		require.NoError(t, err)
		_, err = p.All(ctx)
		require.Error(t, err)
		assert.True(t, rserrors.IsEndpointUnreachable(err))
		assert.Contains(t, err.Error(), `region "mars-north-1"`)
		assert.Contains(t, err.Error(), "--region")
	})

	t.Run("not found", func(t *testing.T) {
		svc := New(mock.New())
		_, err := svc.DeleteCluster(ctx, DeleteClusterParams{ClusterIdentifier: "missing", SkipFinalClusterSnapshot: true})
		assert.True(t, rserrors.IsNotFound(err))
	})

	t.Run("already exists", func(t *testing.T) {
		svc := New(mock.New().WithClusters(seedClusters(1)...))
		_, err := svc.CreateCluster(ctx, CreateClusterParams{
			ClusterIdentifier: "cluster-000", NodeType: "ra3.xlplus", MasterUsername: "admin", MasterUserPassword: "Secret123",
		})
		assert.True(t, rserrors.IsAlreadyExists(err))
	})

	t.Run("invalid state", func(t *testing.T) {
		svc := New(mock.New().WithClusters(seedClusters(1)...))
		_, err := svc.ResumeCluster(ctx, ClusterParams{ClusterIdentifier: "cluster-000"})
		assert.True(t, rserrors.IsInvalidState(err))
	})
}

func TestAuditOutcomes(t *testing.T) {
	ctx := context.Background()
	journal := audit.NewMemoryJournal()
	svc := New(mock.New().WithClusters(seedClusters(1)...), WithJournal(journal), WithRegion("us-east-1"))

	_, err := svc.PauseCluster(ctx, ClusterParams{ClusterIdentifier: "cluster-000"})
	require.NoError(t, err)
	_, err = svc.PauseCluster(ctx, ClusterParams{ClusterIdentifier: "missing"})
	require.Error(t, err)

	records, err := journal.List(audit.Query{Target: "cluster-000"}).All(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, audit.OutcomeSucceeded, records[0].Outcome)
	assert.Equal(t, "PauseCluster", records[0].Operation)
	assert.Equal(t, "us-east-1", records[0].Region)

	records, err = journal.List(audit.Query{Target: "missing"}).All(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, audit.OutcomeFailed, records[0].Outcome)
	assert.NotEmpty(t, records[0].Error)
}

func TestListOperationsAreNotAudited(t *testing.T) {
	ctx := context.Background()
	journal := audit.NewMemoryJournal()
	svc := New(mock.New().WithClusters(seedClusters(3)...), WithJournal(journal))

	p, err := svc.DescribeClusters(DescribeClustersParams{ClusterIdentifier: "cluster-001"})
	require.NoError(t, err)
	items, err := p.All(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)

	records, err := journal.List(audit.Query{Target: "cluster-001"}).All(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestOperationCatalog(t *testing.T) {
	var listed, actions int
	for _, op := range registry.Operations() {
		if op.Resource == "zz-thing" {
			continue
		}
		if op.Paginated {
			listed++
			assert.False(t, op.Mutating(), op.Name)
		} else {
			actions++
			assert.True(t, op.Mutating(), op.Name)
		}
	}
	assert.Equal(t, 10, listed)
	assert.Equal(t, 24, actions)
}

func TestNewClampsPageSize(t *testing.T) {
	assert.Equal(t, int32(MinPageSize), New(mock.New(), WithPageSize(5)).pageSize)
	assert.Equal(t, int32(MaxPageSize), New(mock.New(), WithPageSize(500)).pageSize)
}
