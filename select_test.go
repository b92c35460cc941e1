/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package redshiftctl

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/redshift/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rserrors "github.com/suparena/redshiftctl/errors"
)

func TestSelectorSet(t *testing.T) {
	cluster := types.Cluster{ClusterIdentifier: aws.String("analytics"), ClusterStatus: aws.String("available")}

	t.Run("default is whole value", func(t *testing.T) {
		project, err := ClusterSelectors.Resolve("")
		require.NoError(t, err)
		assert.Equal(t, cluster, project(cluster))
	})

	t.Run("named field", func(t *testing.T) {
		project, err := ClusterSelectors.Resolve("ClusterStatus")
		require.NoError(t, err)
		assert.Equal(t, "available", project(cluster))
	})

	t.Run("unknown name lists valid ones", func(t *testing.T) {
		_, err := ClusterSelectors.Resolve("Status")
		require.Error(t, err)
		assert.True(t, rserrors.IsValidationError(err))
		assert.Contains(t, err.Error(), "ClusterIdentifier")
		assert.Contains(t, err.Error(), "*")
	})

	t.Run("names", func(t *testing.T) {
		names := ClusterSelectors.Names()
		assert.Equal(t, SelectAll, names[0])
		assert.Contains(t, names, "NodeType")
	})
}

func TestSelectorSetWithNamedDefault(t *testing.T) {
	set := NewSelectorSet("Name", Field("Name", func(s ParameterGroupStatus) any { return s.ParameterGroupName }))
	assert.Equal(t, "Name", set.Default())

	project, err := set.Resolve("")
	require.NoError(t, err)
	assert.Equal(t, "pg", project(ParameterGroupStatus{ParameterGroupName: "pg"}))

	assert.Panics(t, func() {
		NewSelectorSet("Missing", Field("Name", func(s ParameterGroupStatus) any { return s.ParameterGroupName }))
	})
}

func TestProjectAll(t *testing.T) {
	project, err := ClusterSelectors.Resolve("ClusterIdentifier")
	require.NoError(t, err)

	got := ProjectAll(project, seedClusters(3))
	assert.Equal(t, []any{"cluster-000", "cluster-001", "cluster-002"}, got)
}
