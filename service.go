/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package redshiftctl

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/suparena/redshiftctl/audit"
	"github.com/suparena/redshiftctl/client"
	"github.com/suparena/redshiftctl/confirm"
	rserrors "github.com/suparena/redshiftctl/errors"
	"github.com/suparena/redshiftctl/paging"
	"github.com/suparena/redshiftctl/registry"
	"github.com/suparena/redshiftctl/validate"
)

// Service page size limits for Redshift Describe* calls.
const (
	MinPageSize     = 20
	MaxPageSize     = 100
	DefaultPageSize = MaxPageSize
)

// Service exposes one method per Redshift operation. It holds no per-call
// state and can be shared, but each Paginator it returns belongs to one caller.
type Service struct {
	api       client.API
	region    string
	logger    *slog.Logger
	journal   audit.Journal
	prompter  confirm.Prompter
	threshold registry.Impact
	pageSize  int32
}

// Option configures a Service.
type Option func(*Service)

// WithRegion names the region the client talks to. It only feeds error messages
// and audit records.
func WithRegion(region string) Option {
	return func(s *Service) {
		s.region = region
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithJournal records every mutating invocation in journal.
func WithJournal(journal audit.Journal) Option {
	return func(s *Service) {
		s.journal = journal
	}
}

// WithPrompter enables the confirmation gate. Without a prompter no
// operation is gated.
func WithPrompter(p confirm.Prompter) Option {
	return func(s *Service) {
		s.prompter = p
	}
}

// WithConfirmThreshold sets the lowest impact that needs confirmation.
func WithConfirmThreshold(impact registry.Impact) Option {
	return func(s *Service) {
		s.threshold = impact
	}
}

// WithPageSize sets the default MaxRecords for listing calls, clamped to the
// service limits.
func WithPageSize(size int32) Option {
	return func(s *Service) {
		s.pageSize = size
	}
}

// New creates a Service over api.
func New(api client.API, opts ...Option) *Service {
	s := &Service{
		api:       api,
		threshold: registry.ImpactHigh,
		pageSize:  DefaultPageSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	s.pageSize = min(max(s.pageSize, MinPageSize), MaxPageSize)
	return s
}

// Region returns the configured region.
func (s *Service) Region() string {
	return s.region
}

// ActionOption tunes a single mutating call.
type ActionOption func(*actionConfig)

type actionConfig struct {
	force bool
}

// WithForce skips the confirmation prompt.
func WithForce() ActionOption {
	return func(c *actionConfig) {
		c.force = true
	}
}

// WithForceIf skips the confirmation prompt when force is true.
func WithForceIf(force bool) ActionOption {
	return func(c *actionConfig) {
		c.force = c.force || force
	}
}

type pageCall[T any] func(ctx context.Context, marker *string, maxRecords *int32) ([]T, *string, error)

// list validates params and returns a paginator over call. Caller options
// are applied after the service defaults.
func list[T any](s *Service, op registry.Operation, target string, params any, call pageCall[T], opts []paging.Option) (*paging.Paginator[T], error) {
	if err := validate.Struct(params); err != nil {
		return nil, fmt.Errorf("%s: %w", op.Name, err)
	}

	fetch := func(ctx context.Context, marker *string, maxRecords *int32) (paging.Page[T], error) {
		s.logger.Debug("listing", "operation", op.Name, "marker", marker, "maxRecords", maxRecords)
		items, next, err := call(ctx, marker, maxRecords)
		if err != nil {
			return paging.Page[T]{}, rserrors.Classify(op.Name, target, s.region, err)
		}
		return paging.Page[T]{Items: items, NextToken: next}, nil
	}

	all := append([]paging.Option{
		paging.WithPageSize(s.pageSize),
		paging.WithMinPageSize(MinPageSize),
		paging.WithLogger(s.logger),
	}, opts...)
	return paging.New(fetch, all...), nil
}

// invoke runs one mutating call: validate, confirm, call, classify, audit.
func invoke[O any](ctx context.Context, s *Service, op registry.Operation, target string, params any, opts []ActionOption, call func(ctx context.Context) (O, error)) (O, error) {
	var zero O

	if err := validate.Struct(params); err != nil {
		return zero, fmt.Errorf("%s: %w", op.Name, err)
	}

	cfg := actionConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	if s.prompter != nil && confirm.Required(op.Impact, s.threshold, cfg.force) {
		ok, err := s.prompter.Confirm(ctx, confirm.Request{Operation: op.Name, Target: target, Impact: op.Impact})
		if err != nil {
			return zero, fmt.Errorf("%s: %w", op.Name, err)
		}
		if !ok {
			declined := rserrors.NewDeclinedError(op.Name, target)
			s.record(ctx, op, target, audit.OutcomeDeclined, nil)
			return zero, declined
		}
	}

	s.logger.Debug("invoking", "operation", op.Name, "target", target, "impact", op.Impact)
	out, err := call(ctx)
	if err != nil {
		err = rserrors.Classify(op.Name, target, s.region, err)
		s.record(ctx, op, target, audit.OutcomeFailed, err)
		return zero, err
	}

	s.record(ctx, op, target, audit.OutcomeSucceeded, nil)
	return out, nil
}

// record writes an audit record. Journal failures are logged, the remote
// call has already happened.
func (s *Service) record(ctx context.Context, op registry.Operation, target string, outcome audit.Outcome, err error) {
	if s.journal == nil {
		return
	}
	r := audit.NewRecord(op.Name, target, s.region, op.Impact)
	r.Finish(outcome, err)
	if jerr := s.journal.Put(ctx, r); jerr != nil {
		s.logger.Warn("failed to write audit record", "operation", op.Name, "target", target, "error", jerr)
	}
}
