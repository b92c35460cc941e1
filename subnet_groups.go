/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package redshiftctl

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	sdk "github.com/aws/aws-sdk-go-v2/service/redshift"
	"github.com/aws/aws-sdk-go-v2/service/redshift/types"

	"github.com/suparena/redshiftctl/paging"
	"github.com/suparena/redshiftctl/registry"
)

// OpDescribeClusterSubnetGroups is registered in the catalog.
var OpDescribeClusterSubnetGroups = registry.RegisterOperation(registry.Operation{Name: "DescribeClusterSubnetGroups", Resource: "subnet-group", Verb: "list", Paginated: true})

// SubnetGroupSelectors project listed subnet groups.
var SubnetGroupSelectors = NewSelectorSet(SelectAll,
	Field("ClusterSubnetGroupName", func(g types.ClusterSubnetGroup) any { return aws.ToString(g.ClusterSubnetGroupName) }),
	Field("VpcId", func(g types.ClusterSubnetGroup) any { return aws.ToString(g.VpcId) }),
	Field("SubnetGroupStatus", func(g types.ClusterSubnetGroup) any { return aws.ToString(g.SubnetGroupStatus) }),
	Field("Subnets", func(g types.ClusterSubnetGroup) any { return g.Subnets }),
)

// DescribeClusterSubnetGroupsParams are the inputs of DescribeClusterSubnetGroups.
type DescribeClusterSubnetGroupsParams struct {
	ClusterSubnetGroupName string   `flag:"cluster-subnet-group-name" help:"Only this subnet group"`
	TagKeys                []string `flag:"tag-keys" help:"Only groups tagged with these keys"`
	TagValues              []string `flag:"tag-values" help:"Only groups tagged with these values"`
}

// DescribeClusterSubnetGroups lists cluster subnet groups.
func (s *Service) DescribeClusterSubnetGroups(p DescribeClusterSubnetGroupsParams, opts ...paging.Option) (*paging.Paginator[types.ClusterSubnetGroup], error) {
	return list(s, OpDescribeClusterSubnetGroups, p.ClusterSubnetGroupName, p,
		func(ctx context.Context, marker *string, maxRecords *int32) ([]types.ClusterSubnetGroup, *string, error) {
			out, err := s.api.DescribeClusterSubnetGroups(ctx, &sdk.DescribeClusterSubnetGroupsInput{
				ClusterSubnetGroupName: optString(p.ClusterSubnetGroupName),
				TagKeys:                p.TagKeys,
				TagValues:              p.TagValues,
				Marker:                 marker,
				MaxRecords:             maxRecords,
			})
			if err != nil {
				return nil, nil, err
			}
			return out.ClusterSubnetGroups, out.Marker, nil
		}, opts)
}
