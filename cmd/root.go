package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "telegram-audio-bot",
	Short: "A Telegram bot for sharing and browsing a music library.",
	Run: func(cmd *cobra.Command, args []string) {
		// Default mode: bot and companion web server in one process, so
		// submitted track requests reach connected dashboards live.
		runBot(true)
	},
}

// Execute executes the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
