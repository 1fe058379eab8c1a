// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	dsnFlag     string
	tlsModeFlag string
	formatFlag  string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "oi",
	Short: "Outbound Impact data-layer tooling",
	Long:  `Provision the Outbound Impact tenant schema, bootstrap admin operators and manage organizations.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// a missing .env is the normal case outside local development
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dsnFlag, "dsn", "", "PostgreSQL DSN connection string, overrides DATABASE_URL")
	rootCmd.PersistentFlags().StringVar(&tlsModeFlag, "tls-mode", "", "Database TLS certificate validation (strict or permissive), overrides DB_TLS_MODE")
	rootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "text", "Output format (text or json)")
}
