package main

import (
	"userdesk/internal/config"
	"userdesk/internal/database"

	"github.com/samber/oops"
	"github.com/spf13/cobra"
)

var rollbackAllFn = database.RollbackAll

// NewMigrateCmd creates the migrate subcommand with up and down.
func NewMigrateCmd(configFile *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back database migrations",
	}
	config.RegisterFlags(cmd.PersistentFlags())

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMigrate(cmd, *configFile, runMigrationsFn, "Migrations applied")
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back all migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMigrate(cmd, *configFile, rollbackAllFn, "Migrations rolled back")
		},
	})
	return cmd
}

func runMigrate(cmd *cobra.Command, configFile string, fn func(string) error, done string) error {
	cfg, err := config.Load(cmd.Flags(), configFile)
	if err != nil {
		return oops.Code("CONFIG_INVALID").Wrap(err)
	}
	if err := cfg.ValidateMigrate(); err != nil {
		return oops.Code("CONFIG_INVALID").Wrap(err)
	}
	if err := fn(cfg.DatabaseURL); err != nil {
		return oops.Code("MIGRATION_FAILED").Wrap(err)
	}
	cmd.Println(done)
	return nil
}
