package main

import (
	"strings"

	"github.com/spf13/cobra"

	"leaguelookup/internal/report"
)

var historyCmd = &cobra.Command{
	Use:   "history <username...>",
	Short: "Outcome of the player's recent matches",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	username := strings.Join(args, " ")

	return withApp(ctx, riotOptions(), func(a *app) error {
		history, err := a.lookup.LookupHistory(ctx, username)
		if err != nil {
			return err
		}

		report.PrintHistory(cmd.OutOrStdout(), history, a.championNames(ctx))
		return nil
	})
}
