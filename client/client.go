/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package client

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	sdk "github.com/aws/aws-sdk-go-v2/service/redshift"
)

// API is the subset of the Redshift control-plane client used by redshiftctl.
type API interface {
	DescribeClusters(ctx context.Context, params *sdk.DescribeClustersInput, optFns ...func(*sdk.Options)) (*sdk.DescribeClustersOutput, error)
	CreateCluster(ctx context.Context, params *sdk.CreateClusterInput, optFns ...func(*sdk.Options)) (*sdk.CreateClusterOutput, error)
	ModifyCluster(ctx context.Context, params *sdk.ModifyClusterInput, optFns ...func(*sdk.Options)) (*sdk.ModifyClusterOutput, error)
	DeleteCluster(ctx context.Context, params *sdk.DeleteClusterInput, optFns ...func(*sdk.Options)) (*sdk.DeleteClusterOutput, error)
	RebootCluster(ctx context.Context, params *sdk.RebootClusterInput, optFns ...func(*sdk.Options)) (*sdk.RebootClusterOutput, error)
	PauseCluster(ctx context.Context, params *sdk.PauseClusterInput, optFns ...func(*sdk.Options)) (*sdk.PauseClusterOutput, error)
	ResumeCluster(ctx context.Context, params *sdk.ResumeClusterInput, optFns ...func(*sdk.Options)) (*sdk.ResumeClusterOutput, error)

	DescribeClusterSnapshots(ctx context.Context, params *sdk.DescribeClusterSnapshotsInput, optFns ...func(*sdk.Options)) (*sdk.DescribeClusterSnapshotsOutput, error)
	CreateClusterSnapshot(ctx context.Context, params *sdk.CreateClusterSnapshotInput, optFns ...func(*sdk.Options)) (*sdk.CreateClusterSnapshotOutput, error)
	CopyClusterSnapshot(ctx context.Context, params *sdk.CopyClusterSnapshotInput, optFns ...func(*sdk.Options)) (*sdk.CopyClusterSnapshotOutput, error)
	DeleteClusterSnapshot(ctx context.Context, params *sdk.DeleteClusterSnapshotInput, optFns ...func(*sdk.Options)) (*sdk.DeleteClusterSnapshotOutput, error)

	DescribeClusterParameterGroups(ctx context.Context, params *sdk.DescribeClusterParameterGroupsInput, optFns ...func(*sdk.Options)) (*sdk.DescribeClusterParameterGroupsOutput, error)
	DescribeClusterParameters(ctx context.Context, params *sdk.DescribeClusterParametersInput, optFns ...func(*sdk.Options)) (*sdk.DescribeClusterParametersOutput, error)
	CreateClusterParameterGroup(ctx context.Context, params *sdk.CreateClusterParameterGroupInput, optFns ...func(*sdk.Options)) (*sdk.CreateClusterParameterGroupOutput, error)
	ModifyClusterParameterGroup(ctx context.Context, params *sdk.ModifyClusterParameterGroupInput, optFns ...func(*sdk.Options)) (*sdk.ModifyClusterParameterGroupOutput, error)
	ResetClusterParameterGroup(ctx context.Context, params *sdk.ResetClusterParameterGroupInput, optFns ...func(*sdk.Options)) (*sdk.ResetClusterParameterGroupOutput, error)
	DeleteClusterParameterGroup(ctx context.Context, params *sdk.DeleteClusterParameterGroupInput, optFns ...func(*sdk.Options)) (*sdk.DeleteClusterParameterGroupOutput, error)

	DescribeUsageLimits(ctx context.Context, params *sdk.DescribeUsageLimitsInput, optFns ...func(*sdk.Options)) (*sdk.DescribeUsageLimitsOutput, error)
	CreateUsageLimit(ctx context.Context, params *sdk.CreateUsageLimitInput, optFns ...func(*sdk.Options)) (*sdk.CreateUsageLimitOutput, error)
	ModifyUsageLimit(ctx context.Context, params *sdk.ModifyUsageLimitInput, optFns ...func(*sdk.Options)) (*sdk.ModifyUsageLimitOutput, error)
	DeleteUsageLimit(ctx context.Context, params *sdk.DeleteUsageLimitInput, optFns ...func(*sdk.Options)) (*sdk.DeleteUsageLimitOutput, error)

	DescribeEventSubscriptions(ctx context.Context, params *sdk.DescribeEventSubscriptionsInput, optFns ...func(*sdk.Options)) (*sdk.DescribeEventSubscriptionsOutput, error)
	CreateEventSubscription(ctx context.Context, params *sdk.CreateEventSubscriptionInput, optFns ...func(*sdk.Options)) (*sdk.CreateEventSubscriptionOutput, error)
	ModifyEventSubscription(ctx context.Context, params *sdk.ModifyEventSubscriptionInput, optFns ...func(*sdk.Options)) (*sdk.ModifyEventSubscriptionOutput, error)
	DeleteEventSubscription(ctx context.Context, params *sdk.DeleteEventSubscriptionInput, optFns ...func(*sdk.Options)) (*sdk.DeleteEventSubscriptionOutput, error)
	DescribeEvents(ctx context.Context, params *sdk.DescribeEventsInput, optFns ...func(*sdk.Options)) (*sdk.DescribeEventsOutput, error)

	DescribeRedshiftIdcApplications(ctx context.Context, params *sdk.DescribeRedshiftIdcApplicationsInput, optFns ...func(*sdk.Options)) (*sdk.DescribeRedshiftIdcApplicationsOutput, error)
	CreateRedshiftIdcApplication(ctx context.Context, params *sdk.CreateRedshiftIdcApplicationInput, optFns ...func(*sdk.Options)) (*sdk.CreateRedshiftIdcApplicationOutput, error)
	ModifyRedshiftIdcApplication(ctx context.Context, params *sdk.ModifyRedshiftIdcApplicationInput, optFns ...func(*sdk.Options)) (*sdk.ModifyRedshiftIdcApplicationOutput, error)
	DeleteRedshiftIdcApplication(ctx context.Context, params *sdk.DeleteRedshiftIdcApplicationInput, optFns ...func(*sdk.Options)) (*sdk.DeleteRedshiftIdcApplicationOutput, error)

	DescribeTags(ctx context.Context, params *sdk.DescribeTagsInput, optFns ...func(*sdk.Options)) (*sdk.DescribeTagsOutput, error)
	CreateTags(ctx context.Context, params *sdk.CreateTagsInput, optFns ...func(*sdk.Options)) (*sdk.CreateTagsOutput, error)
	DeleteTags(ctx context.Context, params *sdk.DeleteTagsInput, optFns ...func(*sdk.Options)) (*sdk.DeleteTagsOutput, error)

	DescribeClusterSubnetGroups(ctx context.Context, params *sdk.DescribeClusterSubnetGroupsInput, optFns ...func(*sdk.Options)) (*sdk.DescribeClusterSubnetGroupsOutput, error)
}

// Compile-time check that the SDK client satisfies API
var _ API = (*sdk.Client)(nil)

// Config selects the account, region and endpoint a client talks to.
// Empty fields fall back to the SDK's default credential and region chain.
type Config struct {
	Region          string
	Profile         string
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
	EndpointURL     string
}

// LoadAWSConfig resolves an aws.Config from cfg.
func LoadAWSConfig(ctx context.Context, cfg Config) (aws.Config, error) {
	var opts []func(*config.LoadOptions) error

	if cfg.Region != "" {
		opts = append(opts, config.WithRegion(cfg.Region))
	}
	if cfg.Profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(cfg.Profile))
	}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, cfg.SessionToken),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load AWS configuration: %w", err)
	}
	return awsCfg, nil
}

// New initializes a Redshift client from cfg.
func New(ctx context.Context, cfg Config) (*sdk.Client, error) {
	awsCfg, err := LoadAWSConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return NewFromConfig(awsCfg, cfg.EndpointURL), nil
}

// NewFromConfig builds a Redshift client from an already resolved aws.Config.
// endpointURL overrides the regional endpoint when non-empty.
func NewFromConfig(awsCfg aws.Config, endpointURL string) *sdk.Client {
	return sdk.NewFromConfig(awsCfg, func(o *sdk.Options) {
		if endpointURL != "" {
			o.BaseEndpoint = aws.String(endpointURL)
		}
	})
}
