package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// championsCmd refreshes the cached champion names, meant to run after a patch.
var championsCmd = &cobra.Command{
	Use:   "champions",
	Short: "Refresh the cached champion names from the Data Dragon",
	Args:  cobra.NoArgs,
	RunE:  runChampions,
}

func runChampions(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	return withApp(ctx, assetOptions(), func(a *app) error {
		if a.redis == nil {
			a.logger.Warnf("Redis is not configured, the names won't be kept")
		}

		names, err := a.assets.RevalidateChampionNames(ctx)
		if err != nil {
			return fmt.Errorf("couldn't revalidate the champion names: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%d champions revalidated\n", len(names))
		return nil
	})
}
