package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "update-tracker-bot",
	Short: "Tracks daily updates posted in a chat topic",
	Long: `Collects the daily updates each roster member posts in a chat topic,
records them in a spreadsheet and reminds the members who have not posted.

Every subcommand is a single run meant to be started by an external scheduler.
Configuration is read from the environment and an optional .env file.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rosterPath, "roster", "", "roster file (overrides ROSTER_PATH)")
}

func main() {
	// .env is optional, the environment wins
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
