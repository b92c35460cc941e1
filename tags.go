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
	OpDescribeTags = registry.RegisterOperation(registry.Operation{Name: "DescribeTags", Resource: "tag", Verb: "list", Paginated: true})
	OpCreateTags   = registry.RegisterOperation(registry.Operation{Name: "CreateTags", Resource: "tag", Verb: "add", Impact: registry.ImpactMedium})
	OpDeleteTags   = registry.RegisterOperation(registry.Operation{Name: "DeleteTags", Resource: "tag", Verb: "remove", Impact: registry.ImpactHigh})
)

// TaggedResourceSelectors project listed tagged resources.
var TaggedResourceSelectors = NewSelectorSet(SelectAll,
	Field("ResourceName", func(r types.TaggedResource) any { return aws.ToString(r.ResourceName) }),
	Field("ResourceType", func(r types.TaggedResource) any { return aws.ToString(r.ResourceType) }),
	Field("Tag", func(r types.TaggedResource) any { return r.Tag }),
)

// DescribeTagsParams are the inputs of DescribeTags.
type DescribeTagsParams struct {
	ResourceName string   `flag:"resource-name" help:"ARN of the resource"`
	ResourceType string   `flag:"resource-type" help:"Resource type, e.g. cluster or snapshot"`
	TagKeys      []string `flag:"tag-keys" help:"Only these keys"`
	TagValues    []string `flag:"tag-values" help:"Only these values"`
}

// DescribeTags lists tags.
func (s *Service) DescribeTags(p DescribeTagsParams, opts ...paging.Option) (*paging.Paginator[types.TaggedResource], error) {
	return list(s, OpDescribeTags, p.ResourceName, p,
		func(ctx context.Context, marker *string, maxRecords *int32) ([]types.TaggedResource, *string, error) {
			out, err := s.api.DescribeTags(ctx, &sdk.DescribeTagsInput{
				ResourceName: optString(p.ResourceName),
				ResourceType: optString(p.ResourceType),
				TagKeys:      p.TagKeys,
				TagValues:    p.TagValues,
				Marker:       marker,
				MaxRecords:   maxRecords,
			})
			if err != nil {
				return nil, nil, err
			}
			return out.TaggedResources, out.Marker, nil
		}, opts)
}

// CreateTagsParams are the inputs of CreateTags.
type CreateTagsParams struct {
	ResourceName string            `validate:"required" flag:"resource-name" help:"ARN of the resource"`
	Tags         map[string]string `validate:"required,min=1" flag:"tags" help:"Tags as key=value pairs"`
}

// CreateTags adds or overwrites tags.
func (s *Service) CreateTags(ctx context.Context, p CreateTagsParams, opts ...ActionOption) error {
	_, err := invoke(ctx, s, OpCreateTags, p.ResourceName, p, opts, func(ctx context.Context) (struct{}, error) {
		_, err := s.api.CreateTags(ctx, &sdk.CreateTagsInput{
			ResourceName: aws.String(p.ResourceName),
			Tags:         toTags(p.Tags),
		})
		return struct{}{}, err
	})
	return err
}

// DeleteTagsParams are the inputs of DeleteTags.
type DeleteTagsParams struct {
	ResourceName string   `validate:"required" flag:"resource-name" help:"ARN of the resource"`
	TagKeys      []string `validate:"required,min=1" flag:"tag-keys" help:"Keys to remove"`
}

// DeleteTags removes tags.
func (s *Service) DeleteTags(ctx context.Context, p DeleteTagsParams, opts ...ActionOption) error {
	_, err := invoke(ctx, s, OpDeleteTags, p.ResourceName, p, opts, func(ctx context.Context) (struct{}, error) {
		_, err := s.api.DeleteTags(ctx, &sdk.DeleteTagsInput{
			ResourceName: aws.String(p.ResourceName),
			TagKeys:      p.TagKeys,
		})
		return struct{}{}, err
	})
	return err
}
