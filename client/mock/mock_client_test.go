/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package mock

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	sdk "github.com/aws/aws-sdk-go-v2/service/redshift"
	"github.com/aws/aws-sdk-go-v2/service/redshift/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clusters(n int) []types.Cluster {
	out := make([]types.Cluster, n)
	for i := range out {
		out[i] = types.Cluster{
			ClusterIdentifier: aws.String(fmt.Sprintf("cluster-%03d", i)),
			ClusterStatus:     aws.String("available"),
		}
	}
	return out
}

func TestDescribeClustersPaging(t *testing.T) {
	ctx := context.Background()
	m := New().WithClusters(clusters(130)...)

	out, err := m.DescribeClusters(ctx, &sdk.DescribeClustersInput{MaxRecords: aws.Int32(100)})
	require.NoError(t, err)
	assert.Len(t, out.Clusters, 100)
	require.NotNil(t, out.Marker)

	out, err = m.DescribeClusters(ctx, &sdk.DescribeClustersInput{Marker: out.Marker, MaxRecords: aws.Int32(100)})
	require.NoError(t, err)
	assert.Len(t, out.Clusters, 30)
	assert.Nil(t, out.Marker)
	assert.Equal(t, "cluster-100", aws.ToString(out.Clusters[0].ClusterIdentifier))

	calls := m.Calls("DescribeClusters")
	require.Len(t, calls, 2)
	assert.Nil(t, calls[0].Marker)
	assert.Equal(t, "100", aws.ToString(calls[1].Marker))
}

func TestMaxRecordsBounds(t *testing.T) {
	ctx := context.Background()
	m := New().WithClusters(clusters(5)...)

	for _, size := range []int32{1, 19, 101} {
		_, err := m.DescribeClusters(ctx, &sdk.DescribeClustersInput{MaxRecords: aws.Int32(size)})
		var apiErr smithy.APIError
		require.True(t, errors.As(err, &apiErr), "size %d", size)
		assert.Equal(t, "InvalidParameterValue", apiErr.ErrorCode())
	}

	_, err := m.DescribeClusters(ctx, &sdk.DescribeClustersInput{Marker: aws.String("bogus")})
	assert.Error(t, err)
}

func TestErrorInjection(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")

	t.Run("always", func(t *testing.T) {
		m := New().WithClusters(clusters(1)...).WithError("DescribeClusters", boom)
		_, err := m.DescribeClusters(ctx, &sdk.DescribeClustersInput{})
		assert.ErrorIs(t, err, boom)
		_, err = m.DescribeClusters(ctx, &sdk.DescribeClustersInput{})
		assert.ErrorIs(t, err, boom)
	})

	t.Run("second call only", func(t *testing.T) {
		m := New().WithClusters(clusters(1)...).WithErrorOnCall("DescribeClusters", 2, boom)
		_, err := m.DescribeClusters(ctx, &sdk.DescribeClustersInput{})
		assert.NoError(t, err)
		_, err = m.DescribeClusters(ctx, &sdk.DescribeClustersInput{})
		assert.ErrorIs(t, err, boom)
		_, err = m.DescribeClusters(ctx, &sdk.DescribeClustersInput{})
		assert.NoError(t, err)
	})
}

func TestClusterLifecycle(t *testing.T) {
	ctx := context.Background()
	m := New()

	_, err := m.CreateCluster(ctx, &sdk.CreateClusterInput{
		ClusterIdentifier: aws.String("analytics"),
		NodeType:          aws.String("ra3.xlplus"),
		MasterUsername:    aws.String("admin"),
	})
	require.NoError(t, err)

	_, err = m.CreateCluster(ctx, &sdk.CreateClusterInput{ClusterIdentifier: aws.String("analytics")})
	var apiErr smithy.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "ClusterAlreadyExists", apiErr.ErrorCode())

	_, err = m.ResumeCluster(ctx, &sdk.ResumeClusterInput{ClusterIdentifier: aws.String("analytics")})
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "InvalidClusterState", apiErr.ErrorCode())

	out, err := m.DeleteCluster(ctx, &sdk.DeleteClusterInput{ClusterIdentifier: aws.String("analytics")})
	require.NoError(t, err)
	assert.Equal(t, "deleting", aws.ToString(out.Cluster.ClusterStatus))

	_, err = m.DeleteCluster(ctx, &sdk.DeleteClusterInput{ClusterIdentifier: aws.String("analytics")})
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "ClusterNotFound", apiErr.ErrorCode())
}

func TestParameterGroupReset(t *testing.T) {
	ctx := context.Background()
	m := New().WithParameterGroups(types.ClusterParameterGroup{ParameterGroupName: aws.String("pg")})

	_, err := m.ModifyClusterParameterGroup(ctx, &sdk.ModifyClusterParameterGroupInput{
		ParameterGroupName: aws.String("pg"),
		Parameters: []types.Parameter{
			{ParameterName: aws.String("enable_user_activity_logging"), ParameterValue: aws.String("true")},
			{ParameterName: aws.String("require_ssl"), ParameterValue: aws.String("true")},
		},
	})
	require.NoError(t, err)

	_, err = m.ResetClusterParameterGroup(ctx, &sdk.ResetClusterParameterGroupInput{
		ParameterGroupName: aws.String("pg"),
		Parameters:         []types.Parameter{{ParameterName: aws.String("require_ssl")}},
	})
	require.NoError(t, err)

	out, err := m.DescribeClusterParameters(ctx, &sdk.DescribeClusterParametersInput{ParameterGroupName: aws.String("pg")})
	require.NoError(t, err)
	require.Len(t, out.Parameters, 1)
	assert.Equal(t, "enable_user_activity_logging", aws.ToString(out.Parameters[0].ParameterName))
}

func TestTags(t *testing.T) {
	ctx := context.Background()
	m := New()
	arn := aws.String("arn:aws:redshift:us-east-1:123456789012:cluster:analytics")

	_, err := m.CreateTags(ctx, &sdk.CreateTagsInput{
		ResourceName: arn,
		Tags: []types.Tag{
			{Key: aws.String("env"), Value: aws.String("dev")},
			{Key: aws.String("team"), Value: aws.String("data")},
		},
	})
	require.NoError(t, err)

	_, err = m.DeleteTags(ctx, &sdk.DeleteTagsInput{ResourceName: arn, TagKeys: []string{"env"}})
	require.NoError(t, err)

	out, err := m.DescribeTags(ctx, &sdk.DescribeTagsInput{ResourceName: arn})
	require.NoError(t, err)
	require.Len(t, out.TaggedResources, 1)
	assert.Equal(t, "team", aws.ToString(out.TaggedResources[0].Tag.Key))
}
