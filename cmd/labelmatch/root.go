package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/gcbaptista/go-label-matcher/config"
)

const version = "1.0.0"

// flagBindings maps command-line flags to configuration keys.
var flagBindings = map[string]string{
	"port":      "server.port",
	"env":       "server.env",
	"log-level": "server.log_level",
}

// newRootCmd builds the command tree. A fresh tree per call keeps flag state isolated.
func newRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "labelmatch",
		Short: "Rank labels against short typed queries",
		Long: `labelmatch scores candidate labels against a short query using exact,
prefix, substring and fuzzy strategies, and reports the character ranges
to highlight for every match.

Run "labelmatch serve" for the HTTP API, or use the score, search, merge
and distance commands directly.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./labelmatch.yaml)")

	rootCmd.AddCommand(
		newServeCmd(&cfgFile),
		newScoreCmd(&cfgFile),
		newSearchCmd(&cfgFile),
		newMergeCmd(),
		newDistanceCmd(),
	)

	return rootCmd
}

// loadConfig reads configuration from file and environment, with any flags
// of cmd that were set on the command line taking precedence.
func loadConfig(cmd *cobra.Command, cfgFile string) (config.Config, error) {
	v := config.NewViper(cfgFile)

	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		key, ok := flagBindings[f.Name]
		if !ok || bindErr != nil {
			return
		}
		bindErr = v.BindPFlag(key, f)
	})
	if bindErr != nil {
		return config.Config{}, fmt.Errorf("bind flags: %w", bindErr)
	}

	return config.Load(v)
}
