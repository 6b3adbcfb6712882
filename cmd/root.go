package cmd

import (
	"fmt"
	"os"

	"cricket/config"
	"cricket/database"
	"cricket/logger"
	"cricket/store"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var rootCmd = &cobra.Command{
	Use:   "cricket",
	Short: "Manage cricket teams and players",
	Long: `cricket serves the team and player pages and offers a few
maintenance commands over the same database.

Examples:

  cricket serve
  cricket migrate
  cricket seed --file seed.yaml
  cricket teams
`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed, color.Bold).Fprintln(os.Stderr, "❌", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(teamsCmd)
	rootCmd.AddCommand(deleteTeamCmd)
}

// openDatabase loads configuration, sets up logging and opens a migrated
// database.
func openDatabase() (*config.Config, *gorm.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	level := logger.Setup(cfg.Log.Level, cfg.Log.Pretty)

	if err := database.Init(cfg, level); err != nil {
		return nil, nil, fmt.Errorf("initialize database: %w", err)
	}
	return cfg, database.GetDB(), nil
}

func newStore(cfg *config.Config, db *gorm.DB) *store.Store {
	return store.New(db, store.Options{UniqueShirtNo: cfg.Players.UniqueShirtNo})
}
