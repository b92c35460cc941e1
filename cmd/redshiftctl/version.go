/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/suparena/redshiftctl"
	"github.com/suparena/redshiftctl/output"
)

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of redshiftctl",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			info := redshiftctl.GetVersionInfo()
			if a.cfg.Output == "table" || a.cfg.Output == "text" {
				fmt.Fprintf(a.deps.stdout, "redshiftctl version %s (commit %s, built %s)\n", info.Version, info.GitCommit, info.BuildDate)
				return nil
			}
			formatter, err := output.Create(a.cfg.Output, a.deps.stdout)
			if err != nil {
				return err
			}
			return formatter.Format(info)
		},
	}
}
