/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"github.com/spf13/cobra"

	"github.com/suparena/redshiftctl/output"
	"github.com/suparena/redshiftctl/registry"
)

type operationRow struct {
	Name      string `json:"Name"`
	Command   string `json:"Command"`
	Paginated bool   `json:"Paginated"`
	Impact    string `json:"Impact"`
}

func (a *app) operationsCmd() *cobra.Command {
	var resource string

	cmd := &cobra.Command{
		Use:   "operations",
		Short: "List the Redshift operations redshiftctl exposes",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			var rows []operationRow
			for _, op := range registry.Operations() {
				if resource != "" && op.Resource != resource {
					continue
				}
				rows = append(rows, operationRow{
					Name:      op.Name,
					Command:   op.Resource + " " + op.Verb,
					Paginated: op.Paginated,
					Impact:    op.Impact.String(),
				})
			}

			formatter, err := output.Create(a.cfg.Output, a.deps.stdout)
			if err != nil {
				return err
			}
			return formatter.Format(rows)
		},
	}
	cmd.Flags().StringVar(&resource, "resource", "", "only operations of this resource")
	return cmd
}
