package cmd

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"cricket/store"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var teamsCmd = &cobra.Command{
	Use:   "teams",
	Short: "List teams with their player counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, db, err := openDatabase()
		if err != nil {
			return err
		}

		rows, err := newStore(cfg, db).TeamSummaries(cmd.Context())
		if err != nil {
			return err
		}
		printTeams(cmd.OutOrStdout(), rows)
		return nil
	},
}

var deleteTeamCmd = &cobra.Command{
	Use:   "delete-team ID",
	Short: "Delete a team together with all of its players",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil || id == 0 {
			return fmt.Errorf("invalid team id %q", args[0])
		}

		cfg, db, err := openDatabase()
		if err != nil {
			return err
		}

		removed, err := newStore(cfg, db).DeleteTeam(cmd.Context(), uint(id))
		if errors.Is(err, store.ErrTeamNotFound) {
			return fmt.Errorf("team %d not found", id)
		}
		if err != nil {
			return err
		}
		color.New(color.FgGreen, color.Bold).Fprintf(cmd.OutOrStdout(), "✅ Deleted team %d and %d players\n", id, removed)
		return nil
	},
}

func printTeams(w io.Writer, rows []store.TeamSummary) {
	if len(rows) == 0 {
		color.New(color.FgYellow).Fprintln(w, "No teams yet.")
		return
	}

	bold := color.New(color.Bold)
	cyan := color.New(color.FgCyan)
	bold.Fprintf(w, "%-5s %-30s %-20s %s\n", "ID", "NAME", "CITY", "PLAYERS")
	for _, r := range rows {
		fmt.Fprintf(w, "%-5d %-30s %-20s ", r.ID, r.Name, r.City)
		cyan.Fprintf(w, "%d\n", r.PlayerCount)
	}
}
