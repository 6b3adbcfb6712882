package cmd

import (
	"errors"

	"cricket/seed"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load teams and players from a YAML file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if seedFile == "" {
			return errors.New("--file is required")
		}

		f, err := seed.Load(seedFile)
		if err != nil {
			return err
		}

		cfg, db, err := openDatabase()
		if err != nil {
			return err
		}

		res, err := seed.Apply(cmd.Context(), newStore(cfg, db), f)
		if err != nil {
			return err
		}
		color.New(color.FgGreen, color.Bold).Fprintf(cmd.OutOrStdout(), "✅ Seeded %d teams and %d players\n", res.Teams, res.Players)
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "YAML file with teams and their players")
}
