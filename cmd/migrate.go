package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the teams and players tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := openDatabase()
		if err != nil {
			return err
		}
		color.New(color.FgGreen, color.Bold).Fprintf(cmd.OutOrStdout(), "✅ Schema up to date (%s)\n", cfg.Database.Driver)
		return nil
	},
}
