// Package main provides the context-cvss CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "context-cvss",
		Short: "Contextual CVSS scoring",
		Long: `context-cvss applies threat and environmental metrics to CVSS 2.0, 3.0, 3.1
and 4.0 vectors and reports the resulting scores and ratings.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newScoreCmd(),
		newRateCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
