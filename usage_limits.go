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
	OpDescribeUsageLimits = registry.RegisterOperation(registry.Operation{Name: "DescribeUsageLimits", Resource: "usage-limit", Verb: "list", Paginated: true})
	OpCreateUsageLimit    = registry.RegisterOperation(registry.Operation{Name: "CreateUsageLimit", Resource: "usage-limit", Verb: "create", Impact: registry.ImpactMedium})
	OpModifyUsageLimit    = registry.RegisterOperation(registry.Operation{Name: "ModifyUsageLimit", Resource: "usage-limit", Verb: "modify", Impact: registry.ImpactMedium})
	OpDeleteUsageLimit    = registry.RegisterOperation(registry.Operation{Name: "DeleteUsageLimit", Resource: "usage-limit", Verb: "delete", Impact: registry.ImpactHigh})
)

// UsageLimitSelectors project listed usage limits.
var UsageLimitSelectors = NewSelectorSet(SelectAll,
	Field("UsageLimitId", func(l types.UsageLimit) any { return aws.ToString(l.UsageLimitId) }),
	Field("ClusterIdentifier", func(l types.UsageLimit) any { return aws.ToString(l.ClusterIdentifier) }),
	Field("FeatureType", func(l types.UsageLimit) any { return string(l.FeatureType) }),
	Field("Amount", func(l types.UsageLimit) any { return aws.ToInt64(l.Amount) }),
	Field("BreachAction", func(l types.UsageLimit) any { return string(l.BreachAction) }),
)

// DescribeUsageLimitsParams are the inputs of DescribeUsageLimits.
type DescribeUsageLimitsParams struct {
	UsageLimitId      string   `flag:"usage-limit-id" help:"Only this usage limit"`
	ClusterIdentifier string   `flag:"cluster-identifier" help:"Only limits of this cluster"`
	FeatureType       string   `validate:"omitempty,oneof=spectrum concurrency-scaling cross-region-datasharing extra-compute-for-automatic-optimization" flag:"feature-type" help:"Feature the limit applies to"`
	TagKeys           []string `flag:"tag-keys" help:"Only limits tagged with these keys"`
	TagValues         []string `flag:"tag-values" help:"Only limits tagged with these values"`
}

// DescribeUsageLimits lists usage limits.
func (s *Service) DescribeUsageLimits(p DescribeUsageLimitsParams, opts ...paging.Option) (*paging.Paginator[types.UsageLimit], error) {
	target := p.UsageLimitId
	if target == "" {
		target = p.ClusterIdentifier
	}
	return list(s, OpDescribeUsageLimits, target, p,
		func(ctx context.Context, marker *string, maxRecords *int32) ([]types.UsageLimit, *string, error) {
			out, err := s.api.DescribeUsageLimits(ctx, &sdk.DescribeUsageLimitsInput{
				UsageLimitId:      optString(p.UsageLimitId),
				ClusterIdentifier: optString(p.ClusterIdentifier),
				FeatureType:       types.UsageLimitFeatureType(p.FeatureType),
				TagKeys:           p.TagKeys,
				TagValues:         p.TagValues,
				Marker:            marker,
				MaxRecords:        maxRecords,
			})
			if err != nil {
				return nil, nil, err
			}
			return out.UsageLimits, out.Marker, nil
		}, opts)
}

// CreateUsageLimitParams are the inputs of CreateUsageLimit.
type CreateUsageLimitParams struct {
	ClusterIdentifier string            `validate:"required" flag:"cluster-identifier" help:"Cluster the limit applies to"`
	FeatureType       string            `validate:"required,oneof=spectrum concurrency-scaling cross-region-datasharing extra-compute-for-automatic-optimization" flag:"feature-type" help:"Feature the limit applies to"`
	LimitType         string            `validate:"required,oneof=time data-scanned" flag:"limit-type" help:"time (minutes) or data-scanned (TB)"`
	Amount            int64             `validate:"required,gt=0" flag:"amount" help:"Limit amount"`
	Period            string            `validate:"omitempty,oneof=daily weekly monthly" flag:"period" help:"daily, weekly or monthly"`
	BreachAction      string            `validate:"omitempty,oneof=log emit-metric disable" flag:"breach-action" help:"log, emit-metric or disable"`
	Tags              map[string]string `flag:"tags" help:"Tags as key=value pairs"`
}

// CreateUsageLimit creates a usage limit.
func (s *Service) CreateUsageLimit(ctx context.Context, p CreateUsageLimitParams, opts ...ActionOption) (types.UsageLimit, error) {
	return invoke(ctx, s, OpCreateUsageLimit, p.ClusterIdentifier, p, opts, func(ctx context.Context) (types.UsageLimit, error) {
		out, err := s.api.CreateUsageLimit(ctx, &sdk.CreateUsageLimitInput{
			ClusterIdentifier: aws.String(p.ClusterIdentifier),
			FeatureType:       types.UsageLimitFeatureType(p.FeatureType),
			LimitType:         types.UsageLimitLimitType(p.LimitType),
			Amount:            aws.Int64(p.Amount),
			Period:            types.UsageLimitPeriod(p.Period),
			BreachAction:      types.UsageLimitBreachAction(p.BreachAction),
			Tags:              toTags(p.Tags),
		})
		if err != nil {
			return types.UsageLimit{}, err
		}
		return types.UsageLimit{
			UsageLimitId:      out.UsageLimitId,
			ClusterIdentifier: out.ClusterIdentifier,
			FeatureType:       out.FeatureType,
			LimitType:         out.LimitType,
			Amount:            out.Amount,
			Period:            out.Period,
			BreachAction:      out.BreachAction,
			Tags:              out.Tags,
		}, nil
	})
}

// ModifyUsageLimitParams are the inputs of ModifyUsageLimit.
type ModifyUsageLimitParams struct {
	UsageLimitId string `validate:"required" flag:"usage-limit-id" help:"Usage limit to modify"`
	Amount       *int64 `validate:"omitempty,gt=0" flag:"amount" help:"New limit amount"`
	BreachAction string `validate:"omitempty,oneof=log emit-metric disable" flag:"breach-action" help:"log, emit-metric or disable"`
}

// ModifyUsageLimit changes the amount or breach action of a usage limit.
func (s *Service) ModifyUsageLimit(ctx context.Context, p ModifyUsageLimitParams, opts ...ActionOption) (types.UsageLimit, error) {
	return invoke(ctx, s, OpModifyUsageLimit, p.UsageLimitId, p, opts, func(ctx context.Context) (types.UsageLimit, error) {
		out, err := s.api.ModifyUsageLimit(ctx, &sdk.ModifyUsageLimitInput{
			UsageLimitId: aws.String(p.UsageLimitId),
			Amount:       p.Amount,
			BreachAction: types.UsageLimitBreachAction(p.BreachAction),
		})
		if err != nil {
			return types.UsageLimit{}, err
		}
		return types.UsageLimit{
			UsageLimitId:      out.UsageLimitId,
			ClusterIdentifier: out.ClusterIdentifier,
			FeatureType:       out.FeatureType,
			LimitType:         out.LimitType,
			Amount:            out.Amount,
			Period:            out.Period,
			BreachAction:      out.BreachAction,
			Tags:              out.Tags,
		}, nil
	})
}

// UsageLimitParams identifies the target of an action without extra inputs.
type UsageLimitParams struct {
	UsageLimitId string `validate:"required" flag:"usage-limit-id" help:"Usage limit identifier"`
}

// DeleteUsageLimit deletes a usage limit.
func (s *Service) DeleteUsageLimit(ctx context.Context, p UsageLimitParams, opts ...ActionOption) error {
	_, err := invoke(ctx, s, OpDeleteUsageLimit, p.UsageLimitId, p, opts, func(ctx context.Context) (struct{}, error) {
		_, err := s.api.DeleteUsageLimit(ctx, &sdk.DeleteUsageLimitInput{UsageLimitId: aws.String(p.UsageLimitId)})
		return struct{}{}, err
	})
	return err
}
