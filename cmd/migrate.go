// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/canonical/outbound-impact/internal/db"
	"github.com/canonical/outbound-impact/migrations"
	"github.com/canonical/outbound-impact/pkg/migration"
)

// migrateCmd performs DB migrations
var migrateCmd = &cobra.Command{
	Use:   "migrate [up|status|check]",
	Short: "Run database migrations",
	Long: `Apply the tenant schema and report the tables present in the working schema.

Migrations are strictly additive, existing tables are never dropped or altered.
Running the command again against a migrated database is a no-op.`,
	Args: customValidArgs(),
	RunE: runMigrate,
}

func customValidArgs() func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.RangeArgs(0, 1)(cmd, args); err != nil {
			return err
		}

		if len(args) == 1 {
			switch args[0] {
			case "up", "status", "check":
			default:
				return fmt.Errorf("invalid first argument: %q", args[0])
			}
		}

		return validFormat(formatFlag)
	}
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	command := "up"
	if len(args) > 0 {
		command = args[0]
	}

	out := cmd.OutOrStdout()
	text := formatFlag == "text"

	if text {
		fmt.Fprintln(out, "Connecting to database...")
	}

	a, err := connect(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	if text {
		fmt.Fprintln(out, "Connected.")
	}

	provider, err := newMigrationProvider(a.dbClient)
	if err != nil {
		return err
	}

	svc := migration.NewService(provider, a.storage, a.tracer, a.monitor, a.logger)

	var report *migration.Report
	switch command {
	case "up":
		report, err = svc.Up(cmd.Context())
	case "status":
		report, err = svc.Status(cmd.Context())
	case "check":
		report, err = svc.Check(cmd.Context())
	}

	if report != nil {
		if !text {
			if jErr := writeJSON(out, report); jErr != nil {
				return jErr
			}
		} else {
			printReport(out, command, report)
		}
	}

	return err
}

func newMigrationProvider(dbClient *db.DBClient) (*goose.Provider, error) {
	provider, err := goose.NewProvider(goose.DialectPostgres, dbClient.DB(), migrations.EmbedMigrations)
	if err != nil {
		return nil, fmt.Errorf("failed to create goose provider: %w", err)
	}

	return provider, nil
}

func printReport(out io.Writer, command string, report *migration.Report) {
	switch command {
	case "up":
		if len(report.Applied) == 0 {
			fmt.Fprintln(out, "No pending migrations.")
		}
		for _, source := range report.Applied {
			fmt.Fprintf(out, "Applied %s\n", source)
		}
	case "status":
		fmt.Fprintln(out, "    Applied At                  Migration")
		fmt.Fprintln(out, "    =======================================")
		for _, m := range report.Migrations {
			appliedAt := "Pending"
			if m.AppliedAt != nil {
				appliedAt = m.AppliedAt.Format(time.RFC3339)
			}
			fmt.Fprintf(out, "    %-24s -- %s\n", appliedAt, m.Source)
		}
	case "check":
		if !report.Pending {
			fmt.Fprintf(out, "Database is up to date (version %d)\n", report.Version)
		}
	}

	fmt.Fprintf(out, "Schema version: %d\n", report.Version)
	fmt.Fprintln(out, "Tables:")
	for _, t := range report.Tables {
		fmt.Fprintf(out, "  - %s\n", t)
	}

	if len(report.Missing) > 0 {
		fmt.Fprintln(out, "Missing:")
		for _, t := range report.Missing {
			fmt.Fprintf(out, "  - %s\n", t)
		}
	}
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
