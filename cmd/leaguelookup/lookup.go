package main

import (
	"strings"

	"github.com/spf13/cobra"

	"leaguelookup/internal/report"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <username...>",
	Short: "Ranked profile and main role of a player",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runLookup,
}

func runLookup(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	username := strings.Join(args, " ")

	return withApp(ctx, riotOptions(), func(a *app) error {
		profile, err := a.lookup.LookupProfile(ctx, username)
		if err != nil {
			return err
		}

		report.PrintProfile(cmd.OutOrStdout(), profile)
		return nil
	})
}
