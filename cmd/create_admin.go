// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/canonical/outbound-impact/pkg/admin"
)

var createAdminCmd = &cobra.Command{
	Use:   "create-admin <email> <password> <full_name> [role]",
	Short: "Create or update an internal admin operator",
	Long: `Create the admin operator identified by email, or overwrite the password, full name
and role of the operator already using it. Emails are compared case-insensitively.

role must be one of analyst, admin or super_admin and defaults to admin.
The admin_users table is created when missing, the command can run against a fresh database.`,
	Example: `  oi create-admin ops@example.com 'Secret123!' "Ops Person"
  oi create-admin ops@example.com 'NewPass456!' "Ops Person" super_admin`,
	Args: func(cmd *cobra.Command, args []string) error {
		if _, err := admin.ParseArgs(args); err != nil {
			return err
		}
		return validFormat(formatFlag)
	},
	RunE: runCreateAdmin,
}

func runCreateAdmin(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	req, err := admin.ParseArgs(args)
	if err != nil {
		return err
	}

	a, err := connect(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	svc := admin.NewService(a.storage, admin.NewBcryptHasher(a.specs.BcryptCost), a.tracer, a.monitor, a.logger)

	op, created, err := svc.Bootstrap(cmd.Context(), req)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if formatFlag == "json" {
		return writeJSON(out, map[string]interface{}{
			"created":  created,
			"operator": op,
		})
	}

	action := "Updated"
	if created {
		action = "Created"
	}

	fmt.Fprintf(out, "%s admin operator\n", action)
	fmt.Fprintf(out, "  id:        %s\n", op.ID)
	fmt.Fprintf(out, "  email:     %s\n", op.Email)
	fmt.Fprintf(out, "  full name: %s\n", op.FullName)
	fmt.Fprintf(out, "  role:      %s\n", op.Role)

	return nil
}

func init() {
	rootCmd.AddCommand(createAdminCmd)
}
