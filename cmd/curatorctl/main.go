package main

import (
	"os"

	"book-curator/backend/internal/logging"

	"github.com/spf13/cobra"
)

var jsonOutput bool

var rootCmd = &cobra.Command{
	Use:   "curatorctl",
	Short: "Query the book catalog and curator from the command line",
	Long: `curatorctl runs the same catalog search and AI curation the API server does,
using ALADIN_API_KEY and the configured completion provider from the environment.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print raw JSON")

	level := "warn"
	if os.Getenv("LOG_LEVEL") != "" {
		level = os.Getenv("LOG_LEVEL")
	}
	logging.Init(logging.Config{Level: level, Format: "console"})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
