/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/spf13/cobra"

	"github.com/suparena/redshiftctl"
	"github.com/suparena/redshiftctl/audit"
	"github.com/suparena/redshiftctl/client"
	"github.com/suparena/redshiftctl/config"
	rserrors "github.com/suparena/redshiftctl/errors"
	"github.com/suparena/redshiftctl/filter"
	"github.com/suparena/redshiftctl/output"
	"github.com/suparena/redshiftctl/paging"
	"github.com/suparena/redshiftctl/registry"
)

// CommandContext provides common command dependencies.
type CommandContext struct {
	Context context.Context
	Service *redshiftctl.Service
	Journal audit.Journal
	Config  *config.Config
	Logger  *slog.Logger
	Out     io.Writer
	Err     io.Writer
}

// CommandHandler is a function that executes with initialized dependencies.
type CommandHandler func(*CommandContext, *cobra.Command) error

// withService wraps a command handler with client and service initialization.
func (a *app) withService(handler CommandHandler) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		awsCfg, err := a.deps.loadAWS(cmd.Context(), client.Config{
			Region:      a.cfg.Region,
			Profile:     a.cfg.Profile,
			EndpointURL: a.cfg.EndpointURL,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize application: %w", err)
		}

		cc := &CommandContext{
			Context: cmd.Context(),
			Config:  a.cfg,
			Logger:  a.logger,
			Out:     a.deps.stdout,
			Err:     a.deps.stderr,
		}

		opts := []redshiftctl.Option{
			redshiftctl.WithRegion(awsCfg.Region),
			redshiftctl.WithLogger(a.logger),
			redshiftctl.WithConfirmThreshold(a.cfg.ConfirmImpact),
			redshiftctl.WithPageSize(a.cfg.PageSize),
		}
		if a.deps.prompter != nil {
			opts = append(opts, redshiftctl.WithPrompter(a.deps.prompter))
		}
		if a.cfg.AuditTable != "" {
			cc.Journal = a.journal(awsCfg)
			opts = append(opts, redshiftctl.WithJournal(cc.Journal))
		}
		cc.Service = redshiftctl.New(a.deps.newAPI(awsCfg, a.cfg.EndpointURL), opts...)

		return handler(cc, cmd)
	}
}

func (a *app) journal(awsCfg aws.Config) audit.Journal {
	a.logger.Debug("recording mutating operations", "table", a.cfg.AuditTable)
	return a.deps.newJournal(awsCfg, a.cfg.AuditTable, a.logger)
}

// render writes v in the configured output format.
func (cc *CommandContext) render(v any) error {
	formatter, err := output.Create(cc.Config.Output, cc.Out)
	if err != nil {
		return err
	}
	return formatter.Format(v)
}

// listFlags are shared by every listing command.
type listFlags struct {
	startingToken string
	maxItems      int32
	pageSize      int32
	noPaginate    bool
	strictPaging  bool
	selectName    string
	filter        string
}

func (f *listFlags) register(cmd *cobra.Command, selectNames []string) {
	fs := cmd.Flags()
	fs.StringVar(&f.startingToken, "starting-token", "", "resume listing from a token printed by --no-paginate")
	fs.Int32Var(&f.maxItems, "max-items", 0, "stop after this many items (0 lists everything)")
	fs.Int32Var(&f.pageSize, "page-size", 0, fmt.Sprintf("items requested per call, %d to %d (default from config)", redshiftctl.MinPageSize, redshiftctl.MaxPageSize))
	fs.BoolVar(&f.noPaginate, "no-paginate", false, "issue a single call and print the token for the next page")
	fs.BoolVar(&f.strictPaging, "strict-paging", false, "fail instead of returning partial results when a later page errors")
	fs.StringVar(&f.selectName, "select", "", fmt.Sprintf("projection: %v", selectNames))
	fs.StringVar(&f.filter, "filter", "", "expression items must satisfy, e.g. 'ClusterStatus == \"available\"'")
}

func (f *listFlags) pagingOptions() ([]paging.Option, error) {
	if f.maxItems < 0 {
		return nil, rserrors.NewValidationError("--max-items", "must not be negative")
	}
	opts := []paging.Option{
		paging.WithNoAutoIteration(f.noPaginate),
	}
	if f.startingToken != "" {
		opts = append(opts, paging.WithStartingToken(aws.String(f.startingToken)))
	}
	if f.maxItems > 0 {
		if f.noPaginate && f.maxItems < redshiftctl.MinPageSize {
			return nil, rserrors.NewValidationError("--max-items",
				fmt.Sprintf("must be at least %d with --no-paginate", redshiftctl.MinPageSize))
		}
		opts = append(opts, paging.WithMaxItems(f.maxItems))
	}
	if f.pageSize != 0 {
		if f.pageSize < redshiftctl.MinPageSize || f.pageSize > redshiftctl.MaxPageSize {
			return nil, rserrors.NewValidationError("--page-size",
				fmt.Sprintf("must be between %d and %d", redshiftctl.MinPageSize, redshiftctl.MaxPageSize))
		}
		opts = append(opts, paging.WithPageSize(f.pageSize))
	}
	if f.strictPaging {
		opts = append(opts, paging.WithPartialResults(paging.FailFast))
	}
	return opts, nil
}

// printNextToken tells the user how to resume a manually paged listing.
func printNextToken(w io.Writer, token *string) {
	if token != nil {
		fmt.Fprintf(w, "NextToken: %s\n", *token)
	}
}

// listCommand builds `<resource> <verb>` for a paginated operation.
func listCommand[P, T any](
	a *app,
	op registry.Operation,
	short string,
	selectors redshiftctl.SelectorSet[T],
	run func(*redshiftctl.Service, P, ...paging.Option) (*paging.Paginator[T], error),
) *cobra.Command {
	var (
		params P
		lf     listFlags
	)

	cmd := &cobra.Command{
		Use:   op.Verb,
		Short: short,
		Args:  cobra.NoArgs,
	}
	finish := bindParams(cmd.Flags(), &params)
	lf.register(cmd, selectors.Names())

	cmd.RunE = a.withService(func(cc *CommandContext, cmd *cobra.Command) error {
		finish(cmd.Flags())

		project, err := selectors.Resolve(lf.selectName)
		if err != nil {
			return err
		}
		predicate, err := filter.Compile(lf.filter)
		if err != nil {
			return rserrors.NewValidationError("--filter", err.Error())
		}
		opts, err := lf.pagingOptions()
		if err != nil {
			return err
		}

		p, err := run(cc.Service, params, opts...)
		if err != nil {
			return err
		}
		items, err := p.All(cc.Context)
		if err != nil {
			return err
		}
		if errs := p.Progress().Errors; len(errs) > 0 {
			cc.Logger.Warn("results are incomplete", "operation", op.Name, "items", len(items), "error", errs[0])
		}

		items, err = filter.Apply(predicate, items)
		if err != nil {
			return err
		}
		if err := cc.render(redshiftctl.ProjectAll(project, items)); err != nil {
			return err
		}
		if lf.noPaginate {
			printNextToken(cc.Err, p.NextToken())
		}
		return nil
	})
	return cmd
}

// actionCommand builds `<resource> <verb>` for a mutating operation that
// returns the affected resource.
func actionCommand[P, O any](
	a *app,
	op registry.Operation,
	short string,
	selectors redshiftctl.SelectorSet[O],
	run func(*redshiftctl.Service, context.Context, P, ...redshiftctl.ActionOption) (O, error),
) *cobra.Command {
	var (
		params     P
		force      bool
		selectName string
	)

	cmd := &cobra.Command{
		Use:   op.Verb,
		Short: short,
		Args:  cobra.NoArgs,
	}
	finish := bindParams(cmd.Flags(), &params)
	cmd.Flags().BoolVar(&force, "force", false, "skip the confirmation prompt")
	cmd.Flags().StringVar(&selectName, "select", "", fmt.Sprintf("projection: %v", selectors.Names()))

	cmd.RunE = a.withService(func(cc *CommandContext, cmd *cobra.Command) error {
		finish(cmd.Flags())

		project, err := selectors.Resolve(selectName)
		if err != nil {
			return err
		}
		out, err := run(cc.Service, cc.Context, params, redshiftctl.WithForceIf(force))
		if err != nil {
			return err
		}
		return cc.render(project(out))
	})
	return cmd
}

// commandOnly builds `<resource> <verb>` for a mutating operation whose
// response carries nothing to print.
func commandOnly[P any](
	a *app,
	op registry.Operation,
	short string,
	run func(*redshiftctl.Service, context.Context, P, ...redshiftctl.ActionOption) error,
) *cobra.Command {
	var (
		params P
		force  bool
	)

	cmd := &cobra.Command{
		Use:   op.Verb,
		Short: short,
		Args:  cobra.NoArgs,
	}
	finish := bindParams(cmd.Flags(), &params)
	cmd.Flags().BoolVar(&force, "force", false, "skip the confirmation prompt")

	cmd.RunE = a.withService(func(cc *CommandContext, cmd *cobra.Command) error {
		finish(cmd.Flags())

		if err := run(cc.Service, cc.Context, params, redshiftctl.WithForceIf(force)); err != nil {
			return err
		}
		cc.Logger.Info("operation completed", "operation", op.Name)
		return nil
	})
	return cmd
}
