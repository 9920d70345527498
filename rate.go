package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/xerrors"

	"context-cvss/cvss40"
)

func newRateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rate SCORE",
		Short: "Print the qualitative severity rating of a CVSS score",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			score, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return xerrors.Errorf("invalid score %q: %w", args[0], err)
			}
			rating, err := cvss40.Rating(score)
			if err != nil {
				return xerrors.Errorf("score %v: %w", score, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), rating)
			return nil
		},
	}
}
