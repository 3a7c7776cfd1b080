package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	region      string
	uploadLog   bool
	pushMetrics bool
)

var rootCmd = &cobra.Command{
	Use:           "leaguelookup",
	Short:         "League of Legends player statistics",
	Long:          "Look up a player's ranked profile, live game and recent match history from the Riot API.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&region, "region", "r", "", "platform region, like NA1 or EUW1 (overrides RIOT_REGION)")
	rootCmd.PersistentFlags().BoolVar(&uploadLog, "upload-log", false, "upload the session log to the configured bucket")
	rootCmd.PersistentFlags().BoolVar(&pushMetrics, "push-metrics", false, "push the metrics to the configured Pushgateway")

	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(gameCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(championsCmd)
}
