package main

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for the userdesk CLI.
func NewRootCmd() *cobra.Command {
	var configFile string
	cmd := &cobra.Command{
		Use:           "userdesk",
		Short:         "Userdesk user management service",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	cmd.PersistentFlags().StringVar(&configFile, "config", "", "YAML config file path")

	cmd.AddCommand(NewServeCmd(&configFile))
	cmd.AddCommand(NewMigrateCmd(&configFile))
	return cmd
}
