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

// Operations registered in the catalog.
var (
	OpDescribeClusters = registry.RegisterOperation(registry.Operation{Name: "DescribeClusters", Resource: "cluster", Verb: "list", Paginated: true})
	OpCreateCluster    = registry.RegisterOperation(registry.Operation{Name: "CreateCluster", Resource: "cluster", Verb: "create", Impact: registry.ImpactMedium})
	OpModifyCluster    = registry.RegisterOperation(registry.Operation{Name: "ModifyCluster", Resource: "cluster", Verb: "modify", Impact: registry.ImpactMedium})
	OpDeleteCluster    = registry.RegisterOperation(registry.Operation{Name: "DeleteCluster", Resource: "cluster", Verb: "delete", Impact: registry.ImpactHigh})
	OpRebootCluster    = registry.RegisterOperation(registry.Operation{Name: "RebootCluster", Resource: "cluster", Verb: "reboot", Impact: registry.ImpactHigh})
	OpPauseCluster     = registry.RegisterOperation(registry.Operation{Name: "PauseCluster", Resource: "cluster", Verb: "pause", Impact: registry.ImpactHigh})
	OpResumeCluster    = registry.RegisterOperation(registry.Operation{Name: "ResumeCluster", Resource: "cluster", Verb: "resume", Impact: registry.ImpactMedium})
)

// ClusterSelectors project listed clusters.
var ClusterSelectors = NewSelectorSet(SelectAll,
	Field("ClusterIdentifier", func(c types.Cluster) any { return aws.ToString(c.ClusterIdentifier) }),
	Field("ClusterStatus", func(c types.Cluster) any { return aws.ToString(c.ClusterStatus) }),
	Field("NodeType", func(c types.Cluster) any { return aws.ToString(c.NodeType) }),
	Field("NumberOfNodes", func(c types.Cluster) any { return aws.ToInt32(c.NumberOfNodes) }),
	Field("Endpoint", func(c types.Cluster) any { return c.Endpoint }),
	Field("DBName", func(c types.Cluster) any { return aws.ToString(c.DBName) }),
	Field("Tags", func(c types.Cluster) any { return c.Tags }),
)

// ClusterResultSelectors project the cluster returned by lifecycle actions.
var ClusterResultSelectors = NewSelectorSet(SelectAll,
	Field("ClusterIdentifier", func(c *types.Cluster) any { return aws.ToString(c.ClusterIdentifier) }),
	Field("ClusterStatus", func(c *types.Cluster) any { return aws.ToString(c.ClusterStatus) }),
)

// DescribeClustersParams are the inputs of DescribeClusters.
type DescribeClustersParams struct {
	ClusterIdentifier string   `flag:"cluster-identifier" help:"Only describe this cluster"`
	TagKeys           []string `flag:"tag-keys" help:"Only clusters tagged with these keys"`
	TagValues         []string `flag:"tag-values" help:"Only clusters tagged with these values"`
}

// DescribeClusters lists clusters.
func (s *Service) DescribeClusters(p DescribeClustersParams, opts ...paging.Option) (*paging.Paginator[types.Cluster], error) {
	return list(s, OpDescribeClusters, p.ClusterIdentifier, p,
		func(ctx context.Context, marker *string, maxRecords *int32) ([]types.Cluster, *string, error) {
			out, err := s.api.DescribeClusters(ctx, &sdk.DescribeClustersInput{
				ClusterIdentifier: optString(p.ClusterIdentifier),
				TagKeys:           p.TagKeys,
				TagValues:         p.TagValues,
				Marker:            marker,
				MaxRecords:        maxRecords,
			})
			if err != nil {
				return nil, nil, err
			}
			return out.Clusters, out.Marker, nil
		}, opts)
}

// CreateClusterParams are the inputs of CreateCluster.
type CreateClusterParams struct {
	ClusterIdentifier         string            `validate:"required" flag:"cluster-identifier" help:"Unique identifier of the new cluster"`
	NodeType                  string            `validate:"required" flag:"node-type" help:"Node type, e.g. ra3.xlplus"`
	MasterUsername            string            `validate:"required" flag:"master-username" help:"Admin user name"`
	MasterUserPassword        string            `validate:"required_without=ManageMasterPassword,excluded_with=ManageMasterPassword" flag:"master-user-password" help:"Admin password"`
	ManageMasterPassword      bool              `flag:"manage-master-password" help:"Let Secrets Manager manage the admin password"`
	DBName                    string            `flag:"db-name" help:"Name of the first database"`
	ClusterType               string            `validate:"omitempty,oneof=single-node multi-node" flag:"cluster-type" help:"single-node or multi-node"`
	NumberOfNodes             *int32            `validate:"omitempty,min=1,max=128" flag:"number-of-nodes" help:"Compute nodes for multi-node clusters"`
	ClusterSubnetGroupName    string            `flag:"cluster-subnet-group-name" help:"Subnet group to launch in"`
	VpcSecurityGroupIds       []string          `flag:"vpc-security-group-ids" help:"VPC security groups"`
	ClusterParameterGroupName string            `flag:"cluster-parameter-group-name" help:"Parameter group to associate"`
	AvailabilityZone          string            `flag:"availability-zone" help:"Availability zone"`
	PubliclyAccessible        *bool             `flag:"publicly-accessible" help:"Allow access from outside the VPC"`
	Encrypted                 *bool             `flag:"encrypted" help:"Encrypt data at rest"`
	KmsKeyId                  string            `flag:"kms-key-id" help:"KMS key for encryption"`
	IamRoles                  []string          `flag:"iam-roles" help:"IAM role ARNs the cluster may assume"`
	Port                      *int32            `validate:"omitempty,min=1115,max=65535" flag:"port" help:"Port the cluster accepts connections on"`
	Tags                      map[string]string `flag:"tags" help:"Tags as key=value pairs"`
}

// CreateCluster creates a cluster.
func (s *Service) CreateCluster(ctx context.Context, p CreateClusterParams, opts ...ActionOption) (*types.Cluster, error) {
	return invoke(ctx, s, OpCreateCluster, p.ClusterIdentifier, p, opts, func(ctx context.Context) (*types.Cluster, error) {
		in := &sdk.CreateClusterInput{
			ClusterIdentifier:         aws.String(p.ClusterIdentifier),
			NodeType:                  aws.String(p.NodeType),
			MasterUsername:            aws.String(p.MasterUsername),
			MasterUserPassword:        optString(p.MasterUserPassword),
			DBName:                    optString(p.DBName),
			ClusterType:               optString(p.ClusterType),
			NumberOfNodes:             p.NumberOfNodes,
			ClusterSubnetGroupName:    optString(p.ClusterSubnetGroupName),
			VpcSecurityGroupIds:       p.VpcSecurityGroupIds,
			ClusterParameterGroupName: optString(p.ClusterParameterGroupName),
			AvailabilityZone:          optString(p.AvailabilityZone),
			PubliclyAccessible:        p.PubliclyAccessible,
			Encrypted:                 p.Encrypted,
			KmsKeyId:                  optString(p.KmsKeyId),
			IamRoles:                  p.IamRoles,
			Port:                      p.Port,
			Tags:                      toTags(p.Tags),
		}
		if p.ManageMasterPassword {
			in.ManageMasterPassword = aws.Bool(true)
		}
		out, err := s.api.CreateCluster(ctx, in)
		if err != nil {
			return nil, err
		}
		return out.Cluster, nil
	})
}

// ModifyClusterParams are the inputs of ModifyCluster.
type ModifyClusterParams struct {
	ClusterIdentifier         string `validate:"required" flag:"cluster-identifier" help:"Cluster to modify"`
	NewClusterIdentifier      string `flag:"new-cluster-identifier" help:"Rename the cluster"`
	NodeType                  string `flag:"node-type" help:"New node type"`
	NumberOfNodes             *int32 `validate:"omitempty,min=1,max=128" flag:"number-of-nodes" help:"New number of nodes"`
	ClusterType               string `validate:"omitempty,oneof=single-node multi-node" flag:"cluster-type" help:"single-node or multi-node"`
	ClusterParameterGroupName string `flag:"cluster-parameter-group-name" help:"Parameter group to associate"`
	MasterUserPassword        string `flag:"master-user-password" help:"New admin password"`
	PubliclyAccessible        *bool  `flag:"publicly-accessible" help:"Allow access from outside the VPC"`
	AllowVersionUpgrade       *bool  `flag:"allow-version-upgrade" help:"Apply major version upgrades during maintenance"`
}

// ModifyCluster changes cluster settings.
func (s *Service) ModifyCluster(ctx context.Context, p ModifyClusterParams, opts ...ActionOption) (*types.Cluster, error) {
	return invoke(ctx, s, OpModifyCluster, p.ClusterIdentifier, p, opts, func(ctx context.Context) (*types.Cluster, error) {
		out, err := s.api.ModifyCluster(ctx, &sdk.ModifyClusterInput{
			ClusterIdentifier:         aws.String(p.ClusterIdentifier),
			NewClusterIdentifier:      optString(p.NewClusterIdentifier),
			NodeType:                  optString(p.NodeType),
			NumberOfNodes:             p.NumberOfNodes,
			ClusterType:               optString(p.ClusterType),
			ClusterParameterGroupName: optString(p.ClusterParameterGroupName),
			MasterUserPassword:        optString(p.MasterUserPassword),
			PubliclyAccessible:        p.PubliclyAccessible,
			AllowVersionUpgrade:       p.AllowVersionUpgrade,
		})
		if err != nil {
			return nil, err
		}
		return out.Cluster, nil
	})
}

// DeleteClusterParams are the inputs of DeleteCluster.
type DeleteClusterParams struct {
	ClusterIdentifier              string `validate:"required" flag:"cluster-identifier" help:"Cluster to delete"`
	SkipFinalClusterSnapshot       bool   `flag:"skip-final-cluster-snapshot" help:"Delete without a final snapshot"`
	FinalClusterSnapshotIdentifier string `validate:"required_without=SkipFinalClusterSnapshot,excluded_with=SkipFinalClusterSnapshot" flag:"final-cluster-snapshot-identifier" help:"Identifier of the final snapshot"`
}

// DeleteCluster deletes a cluster.
func (s *Service) DeleteCluster(ctx context.Context, p DeleteClusterParams, opts ...ActionOption) (*types.Cluster, error) {
	return invoke(ctx, s, OpDeleteCluster, p.ClusterIdentifier, p, opts, func(ctx context.Context) (*types.Cluster, error) {
		out, err := s.api.DeleteCluster(ctx, &sdk.DeleteClusterInput{
			ClusterIdentifier:              aws.String(p.ClusterIdentifier),
			SkipFinalClusterSnapshot:       aws.Bool(p.SkipFinalClusterSnapshot),
			FinalClusterSnapshotIdentifier: optString(p.FinalClusterSnapshotIdentifier),
		})
		if err != nil {
			return nil, err
		}
		return out.Cluster, nil
	})
}

// ClusterParams addresses a single cluster.
type ClusterParams struct {
	ClusterIdentifier string `validate:"required" flag:"cluster-identifier" help:"Cluster identifier"`
}

// RebootCluster reboots a cluster.
func (s *Service) RebootCluster(ctx context.Context, p ClusterParams, opts ...ActionOption) (*types.Cluster, error) {
	return invoke(ctx, s, OpRebootCluster, p.ClusterIdentifier, p, opts, func(ctx context.Context) (*types.Cluster, error) {
		out, err := s.api.RebootCluster(ctx, &sdk.RebootClusterInput{ClusterIdentifier: aws.String(p.ClusterIdentifier)})
		if err != nil {
			return nil, err
		}
		return out.Cluster, nil
	})
}

// PauseCluster pauses a cluster.
func (s *Service) PauseCluster(ctx context.Context, p ClusterParams, opts ...ActionOption) (*types.Cluster, error) {
	return invoke(ctx, s, OpPauseCluster, p.ClusterIdentifier, p, opts, func(ctx context.Context) (*types.Cluster, error) {
		out, err := s.api.PauseCluster(ctx, &sdk.PauseClusterInput{ClusterIdentifier: aws.String(p.ClusterIdentifier)})
		if err != nil {
			return nil, err
		}
		return out.Cluster, nil
	})
}

// ResumeCluster resumes a paused cluster.
func (s *Service) ResumeCluster(ctx context.Context, p ClusterParams, opts ...ActionOption) (*types.Cluster, error) {
	return invoke(ctx, s, OpResumeCluster, p.ClusterIdentifier, p, opts, func(ctx context.Context) (*types.Cluster, error) {
		out, err := s.api.ResumeCluster(ctx, &sdk.ResumeClusterInput{ClusterIdentifier: aws.String(p.ClusterIdentifier)})
		if err != nil {
			return nil, err
		}
		return out.Cluster, nil
	})
}
