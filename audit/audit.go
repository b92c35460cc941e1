/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package audit

import (
	"context"
	"time"

	"github.com/google/uuid"

	rserrors "github.com/suparena/redshiftctl/errors"
	"github.com/suparena/redshiftctl/paging"
	"github.com/suparena/redshiftctl/registry"
)

// Outcome is the result of an audited invocation.
type Outcome string

const (
	OutcomeSucceeded Outcome = "succeeded"
	OutcomeFailed    Outcome = "failed"
	OutcomeDeclined  Outcome = "declined"
)

// Record is one mutating invocation.
type Record struct {
	ID        string    `dynamodbav:"ID" json:"id" yaml:"id"`
	Operation string    `dynamodbav:"Operation" json:"operation" yaml:"operation"`
	Target    string    `dynamodbav:"Target" json:"target" yaml:"target"`
	Region    string    `dynamodbav:"Region,omitempty" json:"region,omitempty" yaml:"region,omitempty"`
	Impact    string    `dynamodbav:"Impact" json:"impact" yaml:"impact"`
	Outcome   Outcome   `dynamodbav:"Outcome" json:"outcome" yaml:"outcome"`
	Error     string    `dynamodbav:"Error,omitempty" json:"error,omitempty" yaml:"error,omitempty"`
	CreatedAt time.Time `dynamodbav:"CreatedAt" json:"createdAt" yaml:"createdAt"`
}

// NewRecord starts a record for operation on target with a fresh ID.
func NewRecord(operation, target, region string, impact registry.Impact) Record {
	return Record{
		ID:        uuid.NewString(),
		Operation: operation,
		Target:    target,
		Region:    region,
		Impact:    impact.String(),
		CreatedAt: time.Now().UTC(),
	}
}

// Finish sets the outcome from the invocation error.
func (r *Record) Finish(outcome Outcome, err error) {
	r.Outcome = outcome
	if err != nil {
		r.Error = err.Error()
	}
}

// Query selects the records of one target, one operation or both,
// optionally bounded in time. Results are newest first.
type Query struct {
	Target    string
	Operation string
	Since     time.Time
	Until     time.Time
}

// Includes reports whether t lies inside the query's time bounds.
func (q Query) Includes(t time.Time) bool {
	if !q.Since.IsZero() && t.Before(q.Since) {
		return false
	}
	if !q.Until.IsZero() && t.After(q.Until) {
		return false
	}
	return true
}

// Matches reports whether r is selected by q.
func (q Query) Matches(r Record) bool {
	if q.Target != "" && r.Target != q.Target {
		return false
	}
	if q.Operation != "" && r.Operation != q.Operation {
		return false
	}
	return q.Includes(r.CreatedAt)
}

// Validate rejects a query that names neither a target nor an operation.
func (q Query) Validate() error {
	if q.Target == "" && q.Operation == "" {
		return rserrors.NewValidationError("--target", "a target or an operation is required")
	}
	return nil
}

// Journal stores audit records.
type Journal interface {
	Put(ctx context.Context, record Record) error
	List(q Query, opts ...paging.Option) *paging.Paginator[Record]
}
