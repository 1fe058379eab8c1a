// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/canonical/outbound-impact/pkg/admin"
)

var adminsCmd = &cobra.Command{
	Use:   "admins",
	Short: "Inspect internal admin operators",
}

var adminsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List admin operators",
	Args: func(cmd *cobra.Command, args []string) error {
		if err := cobra.NoArgs(cmd, args); err != nil {
			return err
		}
		return validFormat(formatFlag)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		a, err := connect(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		svc := admin.NewService(a.storage, admin.NewBcryptHasher(a.specs.BcryptCost), a.tracer, a.monitor, a.logger)

		ops, err := svc.ListOperators(cmd.Context())
		if err != nil {
			return err
		}

		if formatFlag == "json" {
			return writeJSON(cmd.OutOrStdout(), ops)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tEMAIL\tFULL NAME\tROLE\tSTATUS")
		for _, op := range ops {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", op.ID, op.Email, op.FullName, op.Role, op.Status)
		}
		return w.Flush()
	},
}

func init() {
	adminsCmd.AddCommand(adminsListCmd)
	rootCmd.AddCommand(adminsCmd)
}
