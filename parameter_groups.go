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
	OpDescribeClusterParameterGroups = registry.RegisterOperation(registry.Operation{Name: "DescribeClusterParameterGroups", Resource: "parameter-group", Verb: "list", Paginated: true})
	OpDescribeClusterParameters      = registry.RegisterOperation(registry.Operation{Name: "DescribeClusterParameters", Resource: "parameter-group", Verb: "parameters", Paginated: true})
	OpCreateClusterParameterGroup    = registry.RegisterOperation(registry.Operation{Name: "CreateClusterParameterGroup", Resource: "parameter-group", Verb: "create", Impact: registry.ImpactMedium})
	OpModifyClusterParameterGroup    = registry.RegisterOperation(registry.Operation{Name: "ModifyClusterParameterGroup", Resource: "parameter-group", Verb: "modify", Impact: registry.ImpactMedium})
	OpResetClusterParameterGroup     = registry.RegisterOperation(registry.Operation{Name: "ResetClusterParameterGroup", Resource: "parameter-group", Verb: "reset", Impact: registry.ImpactHigh})
	OpDeleteClusterParameterGroup    = registry.RegisterOperation(registry.Operation{Name: "DeleteClusterParameterGroup", Resource: "parameter-group", Verb: "delete", Impact: registry.ImpactHigh})
)

// ParameterGroupStatus is the result of modifying or resetting a parameter group.
type ParameterGroupStatus struct {
	ParameterGroupName   string
	ParameterGroupStatus string
}

// ParameterGroupSelectors project listed parameter groups.
var ParameterGroupSelectors = NewSelectorSet(SelectAll,
	Field("ParameterGroupName", func(g types.ClusterParameterGroup) any { return aws.ToString(g.ParameterGroupName) }),
	Field("ParameterGroupFamily", func(g types.ClusterParameterGroup) any { return aws.ToString(g.ParameterGroupFamily) }),
	Field("Description", func(g types.ClusterParameterGroup) any { return aws.ToString(g.Description) }),
)

// ParameterSelectors project listed parameters.
var ParameterSelectors = NewSelectorSet(SelectAll,
	Field("ParameterName", func(p types.Parameter) any { return aws.ToString(p.ParameterName) }),
	Field("ParameterValue", func(p types.Parameter) any { return aws.ToString(p.ParameterValue) }),
	Field("Source", func(p types.Parameter) any { return aws.ToString(p.Source) }),
)

// ParameterGroupResultSelectors project the resource an action on parameter groups returns.
var ParameterGroupResultSelectors = NewSelectorSet(SelectAll,
	Field("ParameterGroupName", func(g *types.ClusterParameterGroup) any { return aws.ToString(g.ParameterGroupName) }),
)

// ParameterGroupStatusSelectors project the status returned by modify and reset.
var ParameterGroupStatusSelectors = NewSelectorSet(SelectAll,
	Field("ParameterGroupStatus", func(s ParameterGroupStatus) any { return s.ParameterGroupStatus }),
)

// DescribeClusterParameterGroupsParams are the inputs of DescribeClusterParameterGroups.
type DescribeClusterParameterGroupsParams struct {
	ParameterGroupName string   `flag:"parameter-group-name" help:"Only this parameter group"`
	TagKeys            []string `flag:"tag-keys" help:"Only groups tagged with these keys"`
	TagValues          []string `flag:"tag-values" help:"Only groups tagged with these values"`
}

// DescribeClusterParameterGroups lists parameter groups.
func (s *Service) DescribeClusterParameterGroups(p DescribeClusterParameterGroupsParams, opts ...paging.Option) (*paging.Paginator[types.ClusterParameterGroup], error) {
	return list(s, OpDescribeClusterParameterGroups, p.ParameterGroupName, p,
		func(ctx context.Context, marker *string, maxRecords *int32) ([]types.ClusterParameterGroup, *string, error) {
			out, err := s.api.DescribeClusterParameterGroups(ctx, &sdk.DescribeClusterParameterGroupsInput{
				ParameterGroupName: optString(p.ParameterGroupName),
				TagKeys:            p.TagKeys,
				TagValues:          p.TagValues,
				Marker:             marker,
				MaxRecords:         maxRecords,
			})
			if err != nil {
				return nil, nil, err
			}
			return out.ParameterGroups, out.Marker, nil
		}, opts)
}

// DescribeClusterParametersParams are the inputs of DescribeClusterParameters.
type DescribeClusterParametersParams struct {
	ParameterGroupName string `validate:"required" flag:"parameter-group-name" help:"Parameter group to read"`
	Source             string `validate:"omitempty,oneof=user engine-default" flag:"source" help:"user or engine-default"`
}

// DescribeClusterParameters lists the parameters of one group.
func (s *Service) DescribeClusterParameters(p DescribeClusterParametersParams, opts ...paging.Option) (*paging.Paginator[types.Parameter], error) {
	return list(s, OpDescribeClusterParameters, p.ParameterGroupName, p,
		func(ctx context.Context, marker *string, maxRecords *int32) ([]types.Parameter, *string, error) {
			out, err := s.api.DescribeClusterParameters(ctx, &sdk.DescribeClusterParametersInput{
				ParameterGroupName: aws.String(p.ParameterGroupName),
				Source:             optString(p.Source),
				Marker:             marker,
				MaxRecords:         maxRecords,
			})
			if err != nil {
				return nil, nil, err
			}
			return out.Parameters, out.Marker, nil
		}, opts)
}

// CreateClusterParameterGroupParams are the inputs of CreateClusterParameterGroup.
type CreateClusterParameterGroupParams struct {
	ParameterGroupName   string            `validate:"required" flag:"parameter-group-name" help:"Name of the new group"`
	ParameterGroupFamily string            `validate:"required" flag:"parameter-group-family" help:"Engine family, e.g. redshift-1.0"`
	Description          string            `validate:"required" flag:"description" help:"Description"`
	Tags                 map[string]string `flag:"tags" help:"Tags as key=value pairs"`
}

// CreateClusterParameterGroup creates a parameter group.
func (s *Service) CreateClusterParameterGroup(ctx context.Context, p CreateClusterParameterGroupParams, opts ...ActionOption) (*types.ClusterParameterGroup, error) {
	return invoke(ctx, s, OpCreateClusterParameterGroup, p.ParameterGroupName, p, opts, func(ctx context.Context) (*types.ClusterParameterGroup, error) {
		out, err := s.api.CreateClusterParameterGroup(ctx, &sdk.CreateClusterParameterGroupInput{
			ParameterGroupName:   aws.String(p.ParameterGroupName),
			ParameterGroupFamily: aws.String(p.ParameterGroupFamily),
			Description:          aws.String(p.Description),
			Tags:                 toTags(p.Tags),
		})
		if err != nil {
			return nil, err
		}
		return out.ClusterParameterGroup, nil
	})
}

// ModifyClusterParameterGroupParams are the inputs of ModifyClusterParameterGroup.
type ModifyClusterParameterGroupParams struct {
	ParameterGroupName string            `validate:"required" flag:"parameter-group-name" help:"Group to modify"`
	Parameters         map[string]string `validate:"required,min=1" flag:"parameters" help:"Parameters as name=value pairs"`
}

// ModifyClusterParameterGroup sets parameter values.
func (s *Service) ModifyClusterParameterGroup(ctx context.Context, p ModifyClusterParameterGroupParams, opts ...ActionOption) (ParameterGroupStatus, error) {
	return invoke(ctx, s, OpModifyClusterParameterGroup, p.ParameterGroupName, p, opts, func(ctx context.Context) (ParameterGroupStatus, error) {
		out, err := s.api.ModifyClusterParameterGroup(ctx, &sdk.ModifyClusterParameterGroupInput{
			ParameterGroupName: aws.String(p.ParameterGroupName),
			Parameters:         toParameters(p.Parameters),
		})
		if err != nil {
			return ParameterGroupStatus{}, err
		}
		return ParameterGroupStatus{
			ParameterGroupName:   aws.ToString(out.ParameterGroupName),
			ParameterGroupStatus: aws.ToString(out.ParameterGroupStatus),
		}, nil
	})
}

// ResetClusterParameterGroupParams are the inputs of ResetClusterParameterGroup.
type ResetClusterParameterGroupParams struct {
	ParameterGroupName string   `validate:"required" flag:"parameter-group-name" help:"Group to reset"`
	ResetAllParameters bool     `flag:"reset-all-parameters" help:"Reset every parameter to its default"`
	ParameterNames     []string `validate:"required_without=ResetAllParameters,excluded_with=ResetAllParameters" flag:"parameter-names" help:"Parameters to reset"`
}

// ResetClusterParameterGroup resets parameters to their engine defaults.
func (s *Service) ResetClusterParameterGroup(ctx context.Context, p ResetClusterParameterGroupParams, opts ...ActionOption) (ParameterGroupStatus, error) {
	return invoke(ctx, s, OpResetClusterParameterGroup, p.ParameterGroupName, p, opts, func(ctx context.Context) (ParameterGroupStatus, error) {
		out, err := s.api.ResetClusterParameterGroup(ctx, &sdk.ResetClusterParameterGroupInput{
			ParameterGroupName: aws.String(p.ParameterGroupName),
			ResetAllParameters: aws.Bool(p.ResetAllParameters),
			Parameters:         namedParameters(p.ParameterNames),
		})
		if err != nil {
			return ParameterGroupStatus{}, err
		}
		return ParameterGroupStatus{
			ParameterGroupName:   aws.ToString(out.ParameterGroupName),
			ParameterGroupStatus: aws.ToString(out.ParameterGroupStatus),
		}, nil
	})
}

// ParameterGroupParams identifies the target of an action without extra inputs.
type ParameterGroupParams struct {
	ParameterGroupName string `validate:"required" flag:"parameter-group-name" help:"Parameter group name"`
}

// DeleteClusterParameterGroup deletes a parameter group.
func (s *Service) DeleteClusterParameterGroup(ctx context.Context, p ParameterGroupParams, opts ...ActionOption) error {
	_, err := invoke(ctx, s, OpDeleteClusterParameterGroup, p.ParameterGroupName, p, opts, func(ctx context.Context) (struct{}, error) {
		_, err := s.api.DeleteClusterParameterGroup(ctx, &sdk.DeleteClusterParameterGroupInput{
			ParameterGroupName: aws.String(p.ParameterGroupName),
		})
		return struct{}{}, err
	})
	return err
}
