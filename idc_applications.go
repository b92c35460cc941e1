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
	OpDescribeRedshiftIdcApplications = registry.RegisterOperation(registry.Operation{Name: "DescribeRedshiftIdcApplications", Resource: "idc-application", Verb: "list", Paginated: true})
	OpCreateRedshiftIdcApplication    = registry.RegisterOperation(registry.Operation{Name: "CreateRedshiftIdcApplication", Resource: "idc-application", Verb: "create", Impact: registry.ImpactMedium})
	OpModifyRedshiftIdcApplication    = registry.RegisterOperation(registry.Operation{Name: "ModifyRedshiftIdcApplication", Resource: "idc-application", Verb: "modify", Impact: registry.ImpactMedium})
	OpDeleteRedshiftIdcApplication    = registry.RegisterOperation(registry.Operation{Name: "DeleteRedshiftIdcApplication", Resource: "idc-application", Verb: "delete", Impact: registry.ImpactHigh})
)

// IdcApplicationSelectors project listed IdC applications.
var IdcApplicationSelectors = NewSelectorSet(SelectAll,
	Field("RedshiftIdcApplicationArn", func(a types.RedshiftIdcApplication) any { return aws.ToString(a.RedshiftIdcApplicationArn) }),
	Field("RedshiftIdcApplicationName", func(a types.RedshiftIdcApplication) any { return aws.ToString(a.RedshiftIdcApplicationName) }),
	Field("IdcDisplayName", func(a types.RedshiftIdcApplication) any { return aws.ToString(a.IdcDisplayName) }),
	Field("IdcOnboardStatus", func(a types.RedshiftIdcApplication) any { return aws.ToString(a.IdcOnboardStatus) }),
)

// IdcApplicationResultSelectors project the resource an action on IdC applications returns.
var IdcApplicationResultSelectors = NewSelectorSet(SelectAll,
	Field("RedshiftIdcApplicationArn", func(a *types.RedshiftIdcApplication) any { return aws.ToString(a.RedshiftIdcApplicationArn) }),
)

// DescribeRedshiftIdcApplicationsParams are the inputs of DescribeRedshiftIdcApplications.
type DescribeRedshiftIdcApplicationsParams struct {
	RedshiftIdcApplicationArn string `flag:"redshift-idc-application-arn" help:"Only this application"`
}

// DescribeRedshiftIdcApplications lists IAM Identity Center applications.
func (s *Service) DescribeRedshiftIdcApplications(p DescribeRedshiftIdcApplicationsParams, opts ...paging.Option) (*paging.Paginator[types.RedshiftIdcApplication], error) {
	return list(s, OpDescribeRedshiftIdcApplications, p.RedshiftIdcApplicationArn, p,
		func(ctx context.Context, marker *string, maxRecords *int32) ([]types.RedshiftIdcApplication, *string, error) {
			out, err := s.api.DescribeRedshiftIdcApplications(ctx, &sdk.DescribeRedshiftIdcApplicationsInput{
				RedshiftIdcApplicationArn: optString(p.RedshiftIdcApplicationArn),
				Marker:                    marker,
				MaxRecords:                maxRecords,
			})
			if err != nil {
				return nil, nil, err
			}
			return out.RedshiftIdcApplications, out.Marker, nil
		}, opts)
}

// CreateRedshiftIdcApplicationParams are the inputs of CreateRedshiftIdcApplication.
type CreateRedshiftIdcApplicationParams struct {
	IdcInstanceArn             string `validate:"required" flag:"idc-instance-arn" help:"IAM Identity Center instance"`
	RedshiftIdcApplicationName string `validate:"required" flag:"redshift-idc-application-name" help:"Name of the application"`
	IdcDisplayName             string `validate:"required" flag:"idc-display-name" help:"Display name in IAM Identity Center"`
	IamRoleArn                 string `validate:"required" flag:"iam-role-arn" help:"Role Redshift assumes for the application"`
	IdentityNamespace          string `flag:"identity-namespace" help:"Namespace for users and groups"`
}

// CreateRedshiftIdcApplication creates an IAM Identity Center application.
func (s *Service) CreateRedshiftIdcApplication(ctx context.Context, p CreateRedshiftIdcApplicationParams, opts ...ActionOption) (*types.RedshiftIdcApplication, error) {
	return invoke(ctx, s, OpCreateRedshiftIdcApplication, p.RedshiftIdcApplicationName, p, opts, func(ctx context.Context) (*types.RedshiftIdcApplication, error) {
		out, err := s.api.CreateRedshiftIdcApplication(ctx, &sdk.CreateRedshiftIdcApplicationInput{
			IdcInstanceArn:             aws.String(p.IdcInstanceArn),
			RedshiftIdcApplicationName: aws.String(p.RedshiftIdcApplicationName),
			IdcDisplayName:             aws.String(p.IdcDisplayName),
			IamRoleArn:                 aws.String(p.IamRoleArn),
			IdentityNamespace:          optString(p.IdentityNamespace),
		})
		if err != nil {
			return nil, err
		}
		return out.RedshiftIdcApplication, nil
	})
}

// ModifyRedshiftIdcApplicationParams are the inputs of ModifyRedshiftIdcApplication.
type ModifyRedshiftIdcApplicationParams struct {
	RedshiftIdcApplicationArn string `validate:"required" flag:"redshift-idc-application-arn" help:"Application to modify"`
	IdcDisplayName            string `flag:"idc-display-name" help:"New display name"`
	IamRoleArn                string `flag:"iam-role-arn" help:"New role"`
	IdentityNamespace         string `flag:"identity-namespace" help:"New namespace"`
}

// ModifyRedshiftIdcApplication changes an IAM Identity Center application.
func (s *Service) ModifyRedshiftIdcApplication(ctx context.Context, p ModifyRedshiftIdcApplicationParams, opts ...ActionOption) (*types.RedshiftIdcApplication, error) {
	return invoke(ctx, s, OpModifyRedshiftIdcApplication, p.RedshiftIdcApplicationArn, p, opts, func(ctx context.Context) (*types.RedshiftIdcApplication, error) {
		out, err := s.api.ModifyRedshiftIdcApplication(ctx, &sdk.ModifyRedshiftIdcApplicationInput{
			RedshiftIdcApplicationArn: aws.String(p.RedshiftIdcApplicationArn),
			IdcDisplayName:            optString(p.IdcDisplayName),
			IamRoleArn:                optString(p.IamRoleArn),
			IdentityNamespace:         optString(p.IdentityNamespace),
		})
		if err != nil {
			return nil, err
		}
		return out.RedshiftIdcApplication, nil
	})
}

// IdcApplicationParams identifies the target of an action without extra inputs.
type IdcApplicationParams struct {
	RedshiftIdcApplicationArn string `validate:"required" flag:"redshift-idc-application-arn" help:"Application ARN"`
}

// DeleteRedshiftIdcApplication deletes an IAM Identity Center application.
func (s *Service) DeleteRedshiftIdcApplication(ctx context.Context, p IdcApplicationParams, opts ...ActionOption) error {
	_, err := invoke(ctx, s, OpDeleteRedshiftIdcApplication, p.RedshiftIdcApplicationArn, p, opts, func(ctx context.Context) (struct{}, error) {
		_, err := s.api.DeleteRedshiftIdcApplication(ctx, &sdk.DeleteRedshiftIdcApplicationInput{
			RedshiftIdcApplicationArn: aws.String(p.RedshiftIdcApplicationArn),
		})
		return struct{}{}, err
	})
	return err
}
