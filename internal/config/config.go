// Package config handles loading the contextual metrics profile.
package config

import (
	"os"
	"path/filepath"

	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable holding the profile path.
const EnvConfigPath = "CONTEXT_CVSS_CONFIG"

// Config is a profile of the environment vulnerabilities are scored in.
type Config struct {
	// Smart only applies Modified metrics lowering the severity.
	Smart bool `yaml:"smart"`
	// EPSS probability (0-1) used to derive the exploit maturity.
	EPSS *float64 `yaml:"epss"`
	// Metrics maps contextual metric abbreviations to their value, e.g. CR: H.
	Metrics map[string]string `yaml:"metrics"`
}

// DefaultConfig returns an empty profile: vectors are scored as is.
func DefaultConfig() *Config {
	return &Config{
		Metrics: map[string]string{},
	}
}

// Load reads a profile from the given path.
// If the file does not exist, it returns the default config.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, xerrors.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, xerrors.Errorf("parsing config: %w", err)
	}
	if cfg.EPSS != nil && (*cfg.EPSS < 0 || *cfg.EPSS > 1) {
		return nil, xerrors.Errorf("parsing config: epss %v out of [0, 1]", *cfg.EPSS)
	}
	if cfg.Metrics == nil {
		cfg.Metrics = map[string]string{}
	}

	return cfg, nil
}

// FindConfigFile looks for .context-cvss/config.yaml in the given directory
// and its parents, returning the path if found, or "" if not.
func FindConfigFile(dir string) string {
	for {
		candidate := filepath.Join(dir, ".context-cvss", "config.yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}

// Resolve picks the profile path: the explicit one, then the
// CONTEXT_CVSS_CONFIG environment variable, then a lookup from dir.
func Resolve(explicit, dir string) string {
	if explicit != "" {
		return explicit
	}
	if env := os.Getenv(EnvConfigPath); env != "" {
		return env
	}
	return FindConfigFile(dir)
}
