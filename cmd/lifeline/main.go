package main

import (
	"os"

	"github.com/spf13/cobra"

	"lifeline/internal/interfaces/cli/migrate"
	"lifeline/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "lifeline",
		Short: "Lifeline - content trust and protection service",
		Long:  `Lifeline anchors content fingerprints, issues per-access watermarks, tracks capture violations, and gates protected content behind agreement consent.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
