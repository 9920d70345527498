package flags

import (
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/xerrors"

	"context-cvss/cvss"
	"context-cvss/internal/config"
)

// RunOptions holds CVSS options and feature flags for a run.
type RunOptions struct {
	Opts       cvss.MetricsOptions
	EPSS       *float64
	ConfigPath string
	Debug      bool
	Quiet      bool

	epss float64
}

// AddFlags registers the run options on fs.
func (ro *RunOptions) AddFlags(fs *pflag.FlagSet) {
	// Threat / Temporal
	fs.StringVar(&ro.Opts.E, "e", "", "Exploit (Code) Maturity: v3 (X, U, P, F, H), v4.0 (X, U, P, A)")
	fs.StringVar(&ro.Opts.RL, "rl", "", "Remediation Level, v3 only (X, O, T, W, U)")
	fs.StringVar(&ro.Opts.RC, "rc", "", "Report Confidence, v3 only (X, U, R, C)")
	// Requirements
	fs.StringVar(&ro.Opts.CR, "cr", "", "Confidentiality Requirement (X, L, M, H)")
	fs.StringVar(&ro.Opts.IR, "ir", "", "Integrity Requirement (X, L, M, H)")
	fs.StringVar(&ro.Opts.AR, "ar", "", "Availability Requirement (X, L, M, H)")
	// Modified Base metrics
	fs.StringVar(&ro.Opts.MAV, "mav", "", "Modified Attack Vector (X, N, A, L, P)")
	fs.StringVar(&ro.Opts.MAC, "mac", "", "Modified Attack Complexity (X, L, H)")
	fs.StringVar(&ro.Opts.MAT, "mat", "", "Modified Attack Requirements, v4.0 only (X, N, P)")
	fs.StringVar(&ro.Opts.MPR, "mpr", "", "Modified Privileges Required (X, N, L, H)")
	fs.StringVar(&ro.Opts.MUI, "mui", "", "Modified User Interaction: v3 (X, N, R), v4.0 (X, N, P, A)")
	fs.StringVar(&ro.Opts.MC, "mc", "", "Modified Confidentiality, v3 only (X, N, L, H)")
	fs.StringVar(&ro.Opts.MI, "mi", "", "Modified Integrity, v3 only (X, N, L, H)")
	fs.StringVar(&ro.Opts.MA, "ma", "", "Modified Availability, v3 only (X, N, L, H)")
	fs.StringVar(&ro.Opts.MVC, "mvc", "", "Modified Vulnerable System Confidentiality, v4.0 only (X, H, L, N)")
	fs.StringVar(&ro.Opts.MVI, "mvi", "", "Modified Vulnerable System Integrity, v4.0 only (X, H, L, N)")
	fs.StringVar(&ro.Opts.MVA, "mva", "", "Modified Vulnerable System Availability, v4.0 only (X, H, L, N)")
	fs.StringVar(&ro.Opts.MSC, "msc", "", "Modified Subsequent System Confidentiality, v4.0 only (X, H, L, N)")
	fs.StringVar(&ro.Opts.MSI, "msi", "", "Modified Subsequent System Integrity, v4.0 only (X, S, H, L, N)")
	fs.StringVar(&ro.Opts.MSA, "msa", "", "Modified Subsequent System Availability, v4.0 only (X, S, H, L, N)")

	fs.BoolVar(&ro.Opts.Smart, "smart", false, "Smartly apply environmental metrics only if the environmental score would be lowered, does not affect CR/IR/AR.")
	fs.Float64Var(&ro.epss, "epss", 0, "EPSS probability (0-1) of the vulnerability, sets the Exploit Maturity (E) from EPSS score bands")
	fs.StringVar(&ro.ConfigPath, "config", "", "Path to a contextual metrics profile (default: $"+config.EnvConfigPath+" or .context-cvss/config.yaml)")
	fs.BoolVar(&ro.Debug, "debug", false, "Enable debug logs")
	fs.BoolVar(&ro.Quiet, "quiet", false, "Disable logs")
}

// Complete validates the parsed flags and merges the profile in:
// flags explicitly set take precedence over profile values.
func (ro *RunOptions) Complete(fs *pflag.FlagSet, cfg *config.Config) error {
	if fs.Changed("epss") {
		if ro.epss < 0 || ro.epss > 1 {
			return xerrors.Errorf("--epss %v out of [0, 1]", ro.epss)
		}
		ro.EPSS = &ro.epss
	} else if cfg.EPSS != nil {
		ro.EPSS = cfg.EPSS
	}

	if !fs.Changed("smart") {
		ro.Opts.Smart = cfg.Smart
	}

	for abv, value := range cfg.Metrics {
		if fs.Changed(strings.ToLower(abv)) {
			continue
		}
		if err := ro.Opts.Set(abv, value); err != nil {
			return xerrors.Errorf("profile: %w", err)
		}
	}
	return nil
}
