/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/go-openapi/strfmt"
	"github.com/spf13/cobra"

	"github.com/suparena/redshiftctl/audit"
	rserrors "github.com/suparena/redshiftctl/errors"
	"github.com/suparena/redshiftctl/paging"
)

// auditRow renders a record with a fixed timestamp format.
type auditRow struct {
	CreatedAt strfmt.DateTime `json:"CreatedAt"`
	Operation string          `json:"Operation"`
	Target    string          `json:"Target"`
	Impact    string          `json:"Impact"`
	Outcome   string          `json:"Outcome"`
	Error     string          `json:"Error,omitempty"`
	ID        string          `json:"ID"`
}

func (a *app) auditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Read the journal of mutating operations",
	}
	cmd.AddCommand(a.auditListCmd())
	return cmd
}

func (a *app) auditListCmd() *cobra.Command {
	var (
		target        string
		operation     string
		since, until  time.Time
		maxItems      int32
		startingToken string
		noPaginate    bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded operations by target or operation, newest first",
		Args:  cobra.NoArgs,
	}
	fs := cmd.Flags()
	fs.StringVar(&target, "target", "", "resource identifier the operations addressed")
	fs.StringVar(&operation, "operation", "", "only this operation, e.g. DeleteCluster")
	fs.Var((*dateTimeValue)(&since), "since", "only records at or after this time")
	fs.Var((*dateTimeValue)(&until), "until", "only records at or before this time")
	fs.Int32Var(&maxItems, "max-items", 0, "stop after this many records")
	fs.StringVar(&startingToken, "starting-token", "", "resume from a token printed by --no-paginate")
	fs.BoolVar(&noPaginate, "no-paginate", false, "fetch a single page and print the token for the next one")

	cmd.RunE = a.withService(func(cc *CommandContext, _ *cobra.Command) error {
		if cc.Journal == nil {
			return rserrors.NewValidationError("--audit-table", "a journal table is required to list audit records")
		}
		q := audit.Query{Target: target, Operation: operation, Since: since, Until: until}
		if err := q.Validate(); err != nil {
			return err
		}
		if !since.IsZero() && !until.IsZero() && until.Before(since) {
			return rserrors.NewValidationError("--until", "must not be before --since")
		}

		opts := []paging.Option{
			paging.WithLogger(cc.Logger),
			paging.WithNoAutoIteration(noPaginate),
		}
		if maxItems > 0 {
			opts = append(opts, paging.WithMaxItems(maxItems))
		}
		if startingToken != "" {
			opts = append(opts, paging.WithStartingToken(aws.String(startingToken)))
		}

		p := cc.Journal.List(q, opts...)
		records, err := p.All(cc.Context)
		if err != nil {
			return err
		}

		rows := make([]auditRow, len(records))
		for i, r := range records {
			rows[i] = auditRow{
				CreatedAt: strfmt.DateTime(r.CreatedAt),
				Operation: r.Operation,
				Target:    r.Target,
				Impact:    r.Impact,
				Outcome:   string(r.Outcome),
				Error:     r.Error,
				ID:        r.ID,
			}
		}
		if err := cc.render(rows); err != nil {
			return err
		}
		if noPaginate {
			printNextToken(cc.Err, p.NextToken())
		}
		return nil
	})
	return cmd
}
