package main

import (
	"strings"

	"github.com/spf13/cobra"

	"leaguelookup/internal/report"
)

var gameCmd = &cobra.Command{
	Use:   "game <username...>",
	Short: "Ranks of everyone in the player's current game",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runGame,
}

func runGame(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	username := strings.Join(args, " ")

	return withApp(ctx, riotOptions(), func(a *app) error {
		match, err := a.lookup.LookupLiveMatch(ctx, username)
		if err != nil {
			return err
		}

		report.PrintLiveMatch(cmd.OutOrStdout(), match, a.championNames(ctx))
		return nil
	})
}
