package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const appName = "vifprune"

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "v0.1.0"

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Remove multicollinear features from a numeric CSV by variance inflation factor",
		Long: `vifprune repeatedly scores every feature of a numeric table with its
variance inflation factor (VIF) and removes the worst non-protected feature
until every remaining feature scores at or below the threshold.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("config", "", "YAML configuration file")
	root.PersistentFlags().String("log-level", "", "Log level (trace|debug|info|warn|error)")
	root.PersistentFlags().String("log-format", "", "Log format (auto|console|json)")

	root.AddCommand(newRunCmd(), newScoreCmd(), newVersionCmd())

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", appName, version)
		},
	}
}
