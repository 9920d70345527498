package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aquasecurity/trivy/pkg/log"
	"github.com/spf13/cobra"
	"golang.org/x/xerrors"

	"context-cvss/internal/config"
	"context-cvss/internal/flags"
	"context-cvss/internal/report"
)

func newScoreCmd() *cobra.Command {
	var ro flags.RunOptions

	cmd := &cobra.Command{
		Use:   "score [VECTOR]",
		Short: "Score a CVSS vector with contextual metrics",
		Long: `Applies the contextual metrics given by flags or by the profile to a CVSS vector
and prints the JSON report. The vector is read from stdin when no argument is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return xerrors.Errorf("unable to get working directory: %w", err)
			}
			cfg, err := config.Load(config.Resolve(ro.ConfigPath, cwd))
			if err != nil {
				return err
			}
			if err := ro.Complete(cmd.Flags(), cfg); err != nil {
				return err
			}
			log.InitLogger(ro.Debug, ro.Quiet)

			vector, err := readVector(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			return runScore(cmd.OutOrStdout(), vector, ro)
		},
	}
	ro.AddFlags(cmd.Flags())

	return cmd
}

func readVector(args []string, stdin io.Reader) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		return args[0], nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", xerrors.Errorf("failed to read from stdin: %w", err)
	}
	vector := strings.TrimSpace(string(data))
	if vector == "" {
		return "", xerrors.New("no vector given")
	}
	return vector, nil
}

func runScore(w io.Writer, vector string, ro flags.RunOptions) error {
	result, err := report.Build(vector, ro)
	if err != nil {
		return err
	}
	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return xerrors.Errorf("failed to encode report: %w", err)
	}
	_, err = fmt.Fprintln(w, string(output))
	return err
}
