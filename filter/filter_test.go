/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package filter

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/redshift/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile(t *testing.T) {
	f, err := Compile("")
	require.NoError(t, err)
	assert.Nil(t, f)

	ok, err := f.Match(types.Cluster{})
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = Compile("ClusterStatus ==")
	assert.Error(t, err)
}

func TestApply(t *testing.T) {
	clusters := []types.Cluster{
		{ClusterIdentifier: aws.String("a"), ClusterStatus: aws.String("available"), NumberOfNodes: aws.Int32(4)},
		{ClusterIdentifier: aws.String("b"), ClusterStatus: aws.String("paused"), NumberOfNodes: aws.Int32(2)},
		{ClusterIdentifier: aws.String("c"), ClusterStatus: aws.String("available"), NumberOfNodes: aws.Int32(1)},
	}

	tests := []struct {
		name   string
		source string
		want   []string
	}{
		{"status", `ClusterStatus == "available"`, []string{"a", "c"}},
		{"numeric", `NumberOfNodes >= 2`, []string{"a", "b"}},
		{"combined", `ClusterStatus == "available" && NumberOfNodes > 1`, []string{"a"}},
		{"missing field", `ClusterVersion == "1.0"`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.source)
			require.NoError(t, err)

			got, err := Apply(f, clusters)
			require.NoError(t, err)

			var ids []string
			for _, c := range got {
				ids = append(ids, aws.ToString(c.ClusterIdentifier))
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestNonBoolean(t *testing.T) {
	_, err := Compile(`ClusterIdentifier`)
	// Untyped environments defer the boolean check to evaluation.
	if err == nil {
		f, _ := Compile(`ClusterIdentifier`)
		_, err = f.Match(types.Cluster{ClusterIdentifier: aws.String("a")})
	}
	assert.Error(t, err)
}
