/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package redshiftctl

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	sdk "github.com/aws/aws-sdk-go-v2/service/redshift"
	"github.com/aws/aws-sdk-go-v2/service/redshift/types"

	"github.com/suparena/redshiftctl/paging"
	"github.com/suparena/redshiftctl/registry"
)

// Operations registered in the catalog.
var (
	OpDescribeClusterSnapshots = registry.RegisterOperation(registry.Operation{Name: "DescribeClusterSnapshots", Resource: "snapshot", Verb: "list", Paginated: true})
	OpCreateClusterSnapshot    = registry.RegisterOperation(registry.Operation{Name: "CreateClusterSnapshot", Resource: "snapshot", Verb: "create", Impact: registry.ImpactMedium})
	OpCopyClusterSnapshot      = registry.RegisterOperation(registry.Operation{Name: "CopyClusterSnapshot", Resource: "snapshot", Verb: "copy", Impact: registry.ImpactMedium})
	OpDeleteClusterSnapshot    = registry.RegisterOperation(registry.Operation{Name: "DeleteClusterSnapshot", Resource: "snapshot", Verb: "delete", Impact: registry.ImpactHigh})
)

// SnapshotSelectors project listed snapshots.
var SnapshotSelectors = NewSelectorSet(SelectAll,
	Field("SnapshotIdentifier", func(s types.Snapshot) any { return aws.ToString(s.SnapshotIdentifier) }),
	Field("ClusterIdentifier", func(s types.Snapshot) any { return aws.ToString(s.ClusterIdentifier) }),
	Field("Status", func(s types.Snapshot) any { return aws.ToString(s.Status) }),
	Field("SnapshotType", func(s types.Snapshot) any { return aws.ToString(s.SnapshotType) }),
	Field("SnapshotCreateTime", func(s types.Snapshot) any { return s.SnapshotCreateTime }),
)

// SnapshotResultSelectors project the snapshot returned by snapshot actions.
var SnapshotResultSelectors = NewSelectorSet(SelectAll,
	Field("SnapshotIdentifier", func(s *types.Snapshot) any { return aws.ToString(s.SnapshotIdentifier) }),
	Field("Status", func(s *types.Snapshot) any { return aws.ToString(s.Status) }),
)

// DescribeClusterSnapshotsParams are the inputs of DescribeClusterSnapshots.
type DescribeClusterSnapshotsParams struct {
	ClusterIdentifier  string     `flag:"cluster-identifier" help:"Only snapshots of this cluster"`
	SnapshotIdentifier string     `flag:"snapshot-identifier" help:"Only this snapshot"`
	SnapshotType       string     `validate:"omitempty,oneof=automated manual" flag:"snapshot-type" help:"automated or manual"`
	OwnerAccount       string     `flag:"owner-account" help:"Account that owns the snapshots"`
	StartTime          *time.Time `flag:"start-time" help:"Only snapshots created at or after this time"`
	EndTime            *time.Time `flag:"end-time" help:"Only snapshots created at or before this time"`
	TagKeys            []string   `flag:"tag-keys" help:"Only snapshots tagged with these keys"`
	TagValues          []string   `flag:"tag-values" help:"Only snapshots tagged with these values"`
}

// DescribeClusterSnapshots lists snapshots.
func (s *Service) DescribeClusterSnapshots(p DescribeClusterSnapshotsParams, opts ...paging.Option) (*paging.Paginator[types.Snapshot], error) {
	target := p.SnapshotIdentifier
	if target == "" {
		target = p.ClusterIdentifier
	}
	return list(s, OpDescribeClusterSnapshots, target, p,
		func(ctx context.Context, marker *string, maxRecords *int32) ([]types.Snapshot, *string, error) {
			out, err := s.api.DescribeClusterSnapshots(ctx, &sdk.DescribeClusterSnapshotsInput{
				ClusterIdentifier:  optString(p.ClusterIdentifier),
				SnapshotIdentifier: optString(p.SnapshotIdentifier),
				SnapshotType:       optString(p.SnapshotType),
				OwnerAccount:       optString(p.OwnerAccount),
				StartTime:          p.StartTime,
				EndTime:            p.EndTime,
				TagKeys:            p.TagKeys,
				TagValues:          p.TagValues,
				Marker:             marker,
				MaxRecords:         maxRecords,
			})
			if err != nil {
				return nil, nil, err
			}
			return out.Snapshots, out.Marker, nil
		}, opts)
}

// CreateClusterSnapshotParams are the inputs of CreateClusterSnapshot.
type CreateClusterSnapshotParams struct {
	SnapshotIdentifier            string            `validate:"required" flag:"snapshot-identifier" help:"Identifier of the new snapshot"`
	ClusterIdentifier             string            `validate:"required" flag:"cluster-identifier" help:"Cluster to snapshot"`
	ManualSnapshotRetentionPeriod *int32            `validate:"omitempty,min=-1,max=3653" flag:"manual-snapshot-retention-period" help:"Days to keep the snapshot, -1 keeps it indefinitely"`
	Tags                          map[string]string `flag:"tags" help:"Tags as key=value pairs"`
}

// CreateClusterSnapshot takes a manual snapshot.
func (s *Service) CreateClusterSnapshot(ctx context.Context, p CreateClusterSnapshotParams, opts ...ActionOption) (*types.Snapshot, error) {
	return invoke(ctx, s, OpCreateClusterSnapshot, p.SnapshotIdentifier, p, opts, func(ctx context.Context) (*types.Snapshot, error) {
		out, err := s.api.CreateClusterSnapshot(ctx, &sdk.CreateClusterSnapshotInput{
			SnapshotIdentifier:            aws.String(p.SnapshotIdentifier),
			ClusterIdentifier:             aws.String(p.ClusterIdentifier),
			ManualSnapshotRetentionPeriod: p.ManualSnapshotRetentionPeriod,
			Tags:                          toTags(p.Tags),
		})
		if err != nil {
			return nil, err
		}
		return out.Snapshot, nil
	})
}

// CopyClusterSnapshotParams are the inputs of CopyClusterSnapshot.
type CopyClusterSnapshotParams struct {
	SourceSnapshotIdentifier        string `validate:"required" flag:"source-snapshot-identifier" help:"Snapshot to copy"`
	SourceSnapshotClusterIdentifier string `flag:"source-snapshot-cluster-identifier" help:"Cluster the source snapshot was taken from"`
	TargetSnapshotIdentifier        string `validate:"required" flag:"target-snapshot-identifier" help:"Identifier of the copy"`
	ManualSnapshotRetentionPeriod   *int32 `validate:"omitempty,min=-1,max=3653" flag:"manual-snapshot-retention-period" help:"Days to keep the copy"`
}

// CopyClusterSnapshot copies a snapshot.
func (s *Service) CopyClusterSnapshot(ctx context.Context, p CopyClusterSnapshotParams, opts ...ActionOption) (*types.Snapshot, error) {
	return invoke(ctx, s, OpCopyClusterSnapshot, p.SourceSnapshotIdentifier, p, opts, func(ctx context.Context) (*types.Snapshot, error) {
		out, err := s.api.CopyClusterSnapshot(ctx, &sdk.CopyClusterSnapshotInput{
			SourceSnapshotIdentifier:        aws.String(p.SourceSnapshotIdentifier),
			SourceSnapshotClusterIdentifier: optString(p.SourceSnapshotClusterIdentifier),
			TargetSnapshotIdentifier:        aws.String(p.TargetSnapshotIdentifier),
			ManualSnapshotRetentionPeriod:   p.ManualSnapshotRetentionPeriod,
		})
		if err != nil {
			return nil, err
		}
		return out.Snapshot, nil
	})
}

// DeleteClusterSnapshotParams are the inputs of DeleteClusterSnapshot.
type DeleteClusterSnapshotParams struct {
	SnapshotIdentifier        string `validate:"required" flag:"snapshot-identifier" help:"Snapshot to delete"`
	SnapshotClusterIdentifier string `flag:"snapshot-cluster-identifier" help:"Cluster the snapshot was taken from"`
}

// DeleteClusterSnapshot deletes a manual snapshot.
func (s *Service) DeleteClusterSnapshot(ctx context.Context, p DeleteClusterSnapshotParams, opts ...ActionOption) (*types.Snapshot, error) {
	return invoke(ctx, s, OpDeleteClusterSnapshot, p.SnapshotIdentifier, p, opts, func(ctx context.Context) (*types.Snapshot, error) {
		out, err := s.api.DeleteClusterSnapshot(ctx, &sdk.DeleteClusterSnapshotInput{
			SnapshotIdentifier:        aws.String(p.SnapshotIdentifier),
			SnapshotClusterIdentifier: optString(p.SnapshotClusterIdentifier),
		})
		if err != nil {
			return nil, err
		}
		return out.Snapshot, nil
	})
}
