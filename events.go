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
	OpDescribeEvents             = registry.RegisterOperation(registry.Operation{Name: "DescribeEvents", Resource: "event", Verb: "list", Paginated: true})
	OpDescribeEventSubscriptions = registry.RegisterOperation(registry.Operation{Name: "DescribeEventSubscriptions", Resource: "event-subscription", Verb: "list", Paginated: true})
	OpCreateEventSubscription    = registry.RegisterOperation(registry.Operation{Name: "CreateEventSubscription", Resource: "event-subscription", Verb: "create", Impact: registry.ImpactMedium})
	OpModifyEventSubscription    = registry.RegisterOperation(registry.Operation{Name: "ModifyEventSubscription", Resource: "event-subscription", Verb: "modify", Impact: registry.ImpactMedium})
	OpDeleteEventSubscription    = registry.RegisterOperation(registry.Operation{Name: "DeleteEventSubscription", Resource: "event-subscription", Verb: "delete", Impact: registry.ImpactHigh})
)

// EventSelectors project listed events.
var EventSelectors = NewSelectorSet(SelectAll,
	Field("Date", func(e types.Event) any { return e.Date }),
	Field("SourceIdentifier", func(e types.Event) any { return aws.ToString(e.SourceIdentifier) }),
	Field("Message", func(e types.Event) any { return aws.ToString(e.Message) }),
	Field("Severity", func(e types.Event) any { return aws.ToString(e.Severity) }),
)

// EventSubscriptionSelectors project listed event subscriptions.
var EventSubscriptionSelectors = NewSelectorSet(SelectAll,
	Field("CustSubscriptionId", func(s types.EventSubscription) any { return aws.ToString(s.CustSubscriptionId) }),
	Field("SnsTopicArn", func(s types.EventSubscription) any { return aws.ToString(s.SnsTopicArn) }),
	Field("Status", func(s types.EventSubscription) any { return aws.ToString(s.Status) }),
	Field("Enabled", func(s types.EventSubscription) any { return aws.ToBool(s.Enabled) }),
)

// EventSubscriptionResultSelectors project the resource an action on event subscriptions returns.
var EventSubscriptionResultSelectors = NewSelectorSet(SelectAll,
	Field("CustSubscriptionId", func(s *types.EventSubscription) any { return aws.ToString(s.CustSubscriptionId) }),
	Field("Status", func(s *types.EventSubscription) any { return aws.ToString(s.Status) }),
)

// DescribeEventsParams are the inputs of DescribeEvents.
type DescribeEventsParams struct {
	SourceIdentifier string     `validate:"required_with=SourceType" flag:"source-identifier" help:"Only events of this source"`
	SourceType       string     `validate:"omitempty,oneof=cluster cluster-parameter-group cluster-security-group cluster-snapshot scheduled-action" flag:"source-type" help:"Type of the source"`
	StartTime        *time.Time `flag:"start-time" help:"Only events at or after this time"`
	EndTime          *time.Time `flag:"end-time" help:"Only events at or before this time"`
	Duration         *int32     `validate:"omitempty,min=1,max=20160" flag:"duration" help:"Minutes of history to return"`
}

// DescribeEvents lists events of the last 14 days.
func (s *Service) DescribeEvents(p DescribeEventsParams, opts ...paging.Option) (*paging.Paginator[types.Event], error) {
	return list(s, OpDescribeEvents, p.SourceIdentifier, p,
		func(ctx context.Context, marker *string, maxRecords *int32) ([]types.Event, *string, error) {
			out, err := s.api.DescribeEvents(ctx, &sdk.DescribeEventsInput{
				SourceIdentifier: optString(p.SourceIdentifier),
				SourceType:       types.SourceType(p.SourceType),
				StartTime:        p.StartTime,
				EndTime:          p.EndTime,
				Duration:         p.Duration,
				Marker:           marker,
				MaxRecords:       maxRecords,
			})
			if err != nil {
				return nil, nil, err
			}
			return out.Events, out.Marker, nil
		}, opts)
}

// DescribeEventSubscriptionsParams are the inputs of DescribeEventSubscriptions.
type DescribeEventSubscriptionsParams struct {
	SubscriptionName string   `flag:"subscription-name" help:"Only this subscription"`
	TagKeys          []string `flag:"tag-keys" help:"Only subscriptions tagged with these keys"`
	TagValues        []string `flag:"tag-values" help:"Only subscriptions tagged with these values"`
}

// DescribeEventSubscriptions lists event notification subscriptions.
func (s *Service) DescribeEventSubscriptions(p DescribeEventSubscriptionsParams, opts ...paging.Option) (*paging.Paginator[types.EventSubscription], error) {
	return list(s, OpDescribeEventSubscriptions, p.SubscriptionName, p,
		func(ctx context.Context, marker *string, maxRecords *int32) ([]types.EventSubscription, *string, error) {
			out, err := s.api.DescribeEventSubscriptions(ctx, &sdk.DescribeEventSubscriptionsInput{
				SubscriptionName: optString(p.SubscriptionName),
				TagKeys:          p.TagKeys,
				TagValues:        p.TagValues,
				Marker:           marker,
				MaxRecords:       maxRecords,
			})
			if err != nil {
				return nil, nil, err
			}
			return out.EventSubscriptionsList, out.Marker, nil
		}, opts)
}

// CreateEventSubscriptionParams are the inputs of CreateEventSubscription.
type CreateEventSubscriptionParams struct {
	SubscriptionName string            `validate:"required,max=255" flag:"subscription-name" help:"Name of the subscription"`
	SnsTopicArn      string            `validate:"required" flag:"sns-topic-arn" help:"SNS topic notifications are sent to"`
	SourceType       string            `validate:"omitempty,oneof=cluster cluster-parameter-group cluster-security-group cluster-snapshot scheduled-action" flag:"source-type" help:"Type of source generating events"`
	SourceIds        []string          `validate:"omitempty,dive,required" flag:"source-ids" help:"Sources to watch"`
	EventCategories  []string          `validate:"omitempty,dive,oneof=configuration management monitoring security pending" flag:"event-categories" help:"Event categories"`
	Severity         string            `validate:"omitempty,oneof=ERROR INFO" flag:"severity" help:"ERROR or INFO"`
	Enabled          *bool             `flag:"enabled" help:"Enable the subscription"`
	Tags             map[string]string `flag:"tags" help:"Tags as key=value pairs"`
}

// CreateEventSubscription creates an event notification subscription.
func (s *Service) CreateEventSubscription(ctx context.Context, p CreateEventSubscriptionParams, opts ...ActionOption) (*types.EventSubscription, error) {
	return invoke(ctx, s, OpCreateEventSubscription, p.SubscriptionName, p, opts, func(ctx context.Context) (*types.EventSubscription, error) {
		out, err := s.api.CreateEventSubscription(ctx, &sdk.CreateEventSubscriptionInput{
			SubscriptionName: aws.String(p.SubscriptionName),
			SnsTopicArn:      aws.String(p.SnsTopicArn),
			SourceType:       optString(p.SourceType),
			SourceIds:        p.SourceIds,
			EventCategories:  p.EventCategories,
			Severity:         optString(p.Severity),
			Enabled:          p.Enabled,
			Tags:             toTags(p.Tags),
		})
		if err != nil {
			return nil, err
		}
		return out.EventSubscription, nil
	})
}

// ModifyEventSubscriptionParams are the inputs of ModifyEventSubscription.
type ModifyEventSubscriptionParams struct {
	SubscriptionName string   `validate:"required" flag:"subscription-name" help:"Subscription to modify"`
	SnsTopicArn      string   `flag:"sns-topic-arn" help:"New SNS topic"`
	SourceType       string   `validate:"omitempty,oneof=cluster cluster-parameter-group cluster-security-group cluster-snapshot scheduled-action" flag:"source-type" help:"Type of source generating events"`
	SourceIds        []string `flag:"source-ids" help:"Sources to watch"`
	EventCategories  []string `validate:"omitempty,dive,oneof=configuration management monitoring security pending" flag:"event-categories" help:"Event categories"`
	Severity         string   `validate:"omitempty,oneof=ERROR INFO" flag:"severity" help:"ERROR or INFO"`
	Enabled          *bool    `flag:"enabled" help:"Enable or disable the subscription"`
}

// ModifyEventSubscription changes an event notification subscription.
func (s *Service) ModifyEventSubscription(ctx context.Context, p ModifyEventSubscriptionParams, opts ...ActionOption) (*types.EventSubscription, error) {
	return invoke(ctx, s, OpModifyEventSubscription, p.SubscriptionName, p, opts, func(ctx context.Context) (*types.EventSubscription, error) {
		out, err := s.api.ModifyEventSubscription(ctx, &sdk.ModifyEventSubscriptionInput{
			SubscriptionName: aws.String(p.SubscriptionName),
			SnsTopicArn:      optString(p.SnsTopicArn),
			SourceType:       optString(p.SourceType),
			SourceIds:        p.SourceIds,
			EventCategories:  p.EventCategories,
			Severity:         optString(p.Severity),
			Enabled:          p.Enabled,
		})
		if err != nil {
			return nil, err
		}
		return out.EventSubscription, nil
	})
}

// EventSubscriptionParams identifies the target of an action without extra inputs.
type EventSubscriptionParams struct {
	SubscriptionName string `validate:"required" flag:"subscription-name" help:"Subscription name"`
}

// DeleteEventSubscription deletes an event notification subscription.
func (s *Service) DeleteEventSubscription(ctx context.Context, p EventSubscriptionParams, opts ...ActionOption) error {
	_, err := invoke(ctx, s, OpDeleteEventSubscription, p.SubscriptionName, p, opts, func(ctx context.Context) (struct{}, error) {
		_, err := s.api.DeleteEventSubscription(ctx, &sdk.DeleteEventSubscriptionInput{SubscriptionName: aws.String(p.SubscriptionName)})
		return struct{}{}, err
	})
	return err
}
