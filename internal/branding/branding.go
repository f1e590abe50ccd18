// Package branding provides compile-time identity values for the CLI.
//
// Values live in branding.yaml next to this file and are baked into the
// binary with //go:embed. Anything missing from the file falls back to the
// defaults below.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	CrateName   string `yaml:"crate_name"`
}

func load() {
	once.Do(func() {
		defaults = brand{
			CLIName:     "gen-features",
			DisplayName: "gen-features",
			Description: "Generate per-day Cargo feature boilerplate for a puzzle year",
			HomeDir:     ".gen-features",
			EnvPrefix:   "GENFEATURES",
			CrateName:   "narigama_aoc",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "gen-features").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".gen-features").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "GENFEATURES").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// CrateName returns the default Rust crate path used by generated `use` lines.
func CrateName() string { load(); return defaults.CrateName }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("log_level") → "GENFEATURES_LOG_LEVEL".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
