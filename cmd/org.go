// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/canonical/outbound-impact/internal/types"
	"github.com/canonical/outbound-impact/pkg/organization"
)

var orgCmd = &cobra.Command{
	Use:   "org",
	Short: "Manage tenant organizations",
}

var orgCreateCmd = &cobra.Command{
	Use:   "create <name> <email> [plan]",
	Short: "Create an organization",
	Long: `Create an organization with the quotas and price of its plan.

plan must be one of personal, small_business, medium_business or enterprise and defaults to personal.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if _, err := organization.ParseCreateArgs(args); err != nil {
			return err
		}
		return validFormat(formatFlag)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		req, err := organization.ParseCreateArgs(args)
		if err != nil {
			return err
		}

		a, err := connect(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		o, err := organization.NewService(a.storage, a.tracer, a.monitor, a.logger).CreateOrganization(cmd.Context(), req)
		if err != nil {
			return err
		}

		return printOrganizations(cmd.OutOrStdout(), o)
	},
}

var orgListCmd = &cobra.Command{
	Use:   "list",
	Short: "List organizations",
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

		orgs, err := organization.NewService(a.storage, a.tracer, a.monitor, a.logger).ListOrganizations(cmd.Context())
		if err != nil {
			return err
		}

		return printOrganizations(cmd.OutOrStdout(), orgs...)
	},
}

var orgGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show an organization with its plan quotas and usage counters",
	Args: func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(1)(cmd, args); err != nil {
			return err
		}
		if _, err := organization.ParseID(args[0]); err != nil {
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

		o, err := organization.NewService(a.storage, a.tracer, a.monitor, a.logger).GetOrganization(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		if formatFlag == "json" {
			return writeJSON(cmd.OutOrStdout(), o)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "ID:\t%s\n", o.ID)
		fmt.Fprintf(w, "Name:\t%s\n", o.Name)
		fmt.Fprintf(w, "Email:\t%s\n", o.Email)
		fmt.Fprintf(w, "Plan:\t%s (%.2f/month)\n", o.PlanType, o.MonthlyPrice)
		fmt.Fprintf(w, "Status:\t%s\n", o.Status)
		fmt.Fprintf(w, "QR codes:\t%d\n", o.MaxQRCodes)
		fmt.Fprintf(w, "Contributors:\t%d\n", o.MaxContributors)
		fmt.Fprintf(w, "Storage (bytes):\t%d\n", o.StorageLimitBytes)
		fmt.Fprintf(w, "Total scans:\t%d\n", o.TotalScans)
		fmt.Fprintf(w, "Total uploads:\t%d\n", o.TotalUploads)
		return w.Flush()
	},
}

var orgSetStatusCmd = &cobra.Command{
	Use:   "set-status <id> <status>",
	Short: "Activate, suspend or cancel an organization",
	Long:  `Change the status of an organization. status must be one of active, suspended or cancelled.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(2)(cmd, args); err != nil {
			return err
		}
		if _, err := organization.ParseID(args[0]); err != nil {
			return err
		}
		if _, err := organization.ParseStatus(args[1]); err != nil {
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

		o, err := organization.NewService(a.storage, a.tracer, a.monitor, a.logger).
			SetStatus(cmd.Context(), args[0], types.OrganizationStatus(args[1]))
		if err != nil {
			return err
		}

		return printOrganizations(cmd.OutOrStdout(), o)
	},
}

func printOrganizations(out io.Writer, orgs ...*types.Organization) error {
	if formatFlag == "json" {
		if len(orgs) == 1 {
			return writeJSON(out, orgs[0])
		}
		return writeJSON(out, orgs)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tPLAN\tSTATUS\tQR CODES\tCONTRIBUTORS\tSTORAGE (BYTES)")
	for _, o := range orgs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\t%d\t%d\n", o.ID, o.Name, o.Email, o.PlanType, o.Status, o.MaxQRCodes, o.MaxContributors, o.StorageLimitBytes)
	}
	return w.Flush()
}

func init() {
	orgCmd.AddCommand(orgCreateCmd, orgListCmd, orgGetCmd, orgSetStatusCmd)
	rootCmd.AddCommand(orgCmd)
}
