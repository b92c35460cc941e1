/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/suparena/redshiftctl/audit"
	auditddb "github.com/suparena/redshiftctl/audit/ddb"
	"github.com/suparena/redshiftctl/client"
	"github.com/suparena/redshiftctl/config"
	"github.com/suparena/redshiftctl/confirm"
	"github.com/suparena/redshiftctl/registry"
)

// deps are the collaborators a command run needs from the outside world.
type deps struct {
	loadAWS    func(ctx context.Context, cfg client.Config) (aws.Config, error)
	newAPI     func(awsCfg aws.Config, endpointURL string) client.API
	newJournal func(awsCfg aws.Config, table string, logger *slog.Logger) audit.Journal
	prompter   confirm.Prompter
	stdout     io.Writer
	stderr     io.Writer
}

func defaultDeps() deps {
	return deps{
		loadAWS: client.LoadAWSConfig,
		newAPI: func(awsCfg aws.Config, endpointURL string) client.API {
			return client.NewFromConfig(awsCfg, endpointURL)
		},
		newJournal: func(awsCfg aws.Config, table string, logger *slog.Logger) audit.Journal {
			return auditddb.NewFromConfig(awsCfg, table, logger)
		},
		prompter: confirm.NewTerminalPrompter(),
		stdout:   os.Stdout,
		stderr:   os.Stderr,
	}
}

// app holds the state of one CLI invocation.
type app struct {
	deps    deps
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
	logger  *slog.Logger
}

// newRootCmd builds the command tree.
func newRootCmd(d deps) *cobra.Command {
	a := &app{deps: d, v: viper.New(), logger: slog.Default()}
	config.SetDefaults(a.v)

	root := &cobra.Command{
		Use:   "redshiftctl",
		Short: "Manage Amazon Redshift clusters and their resources",
		Long: `redshiftctl drives the Amazon Redshift control-plane API: clusters,
snapshots, parameter groups, usage limits, event subscriptions, IAM Identity
Center applications, tags and subnet groups.

Listing commands page through results transparently; mutating commands ask
for confirmation when their impact reaches --confirm-impact.`,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.initConfig()
		},
		SilenceUsage: true,
	}
	root.SetOut(d.stdout)
	root.SetErr(d.stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.redshiftctl.yaml)")
	pf.String(config.KeyRegion, "", "AWS region")
	pf.String(config.KeyProfile, "", "shared config profile")
	pf.String(config.KeyEndpointURL, "", "override the Redshift endpoint URL")
	pf.StringP(config.KeyOutput, "o", "table", "output format: table, json, yaml, text")
	pf.BoolP(config.KeyVerbose, "v", false, "enable verbose output")
	pf.String(config.KeyAuditTable, "", "DynamoDB table recording mutating operations")
	pf.String(config.KeyConfirmImpact, registry.ImpactHigh.String(), "lowest impact that asks for confirmation: none, low, medium, high")

	for _, key := range []string{
		config.KeyRegion, config.KeyProfile, config.KeyEndpointURL, config.KeyOutput,
		config.KeyVerbose, config.KeyAuditTable, config.KeyConfirmImpact,
	} {
		_ = a.v.BindPFlag(key, pf.Lookup(key))
	}

	root.AddCommand(
		a.clusterCmd(),
		a.snapshotCmd(),
		a.parameterGroupCmd(),
		a.usageLimitCmd(),
		a.eventSubscriptionCmd(),
		a.eventCmd(),
		a.idcApplicationCmd(),
		a.tagCmd(),
		a.subnetGroupCmd(),
		a.operationsCmd(),
		a.auditCmd(),
		a.versionCmd(),
	)
	return root
}

// initConfig loads .env, the config file and the environment, then
// configures logging.
func (a *app) initConfig() error {
	if err := config.LoadDotEnv(""); err != nil {
		return err
	}
	if err := config.Init(a.v, a.cfgFile); err != nil {
		return err
	}
	cfg, err := config.Resolve(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = setupLogging(cfg.Verbose, a.deps.stderr)
	return nil
}

func setupLogging(verbose bool, w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	// Using TextHandler for CLI friendliness
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return logger
}
