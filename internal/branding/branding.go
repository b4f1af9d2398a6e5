// Package branding provides compile-time identity values for the CLI.
//
// branding.yaml is embedded with //go:embed, so forks change the CLI name,
// environment prefix, and the default index identity without touching code.
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
	CLIName      string `yaml:"cli_name"`
	DisplayName  string `yaml:"display_name"`
	Description  string `yaml:"description"`
	EnvPrefix    string `yaml:"env_prefix"`
	ConfigName   string `yaml:"config_name"`
	IndexName    string `yaml:"index_name"`
	IndexVersion string `yaml:"index_version"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:      "marketplace",
			DisplayName:  "Marketplace",
			Description:  "Builds the extension marketplace index from descriptor files",
			EnvPrefix:    "MARKETPLACE",
			ConfigName:   "marketplace",
			IndexName:    "@nothing/marketplace",
			IndexVersion: "1.0.0",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "marketplace").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// EnvPrefix returns the environment variable prefix (e.g., "MARKETPLACE").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// ConfigName returns the project config file name without extension.
func ConfigName() string { load(); return defaults.ConfigName }

// IndexName returns the index name used when no package metadata is configured.
func IndexName() string { load(); return defaults.IndexName }

// IndexVersion returns the index version used when no package metadata is configured.
func IndexVersion() string { load(); return defaults.IndexVersion }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("src") → "MARKETPLACE_SRC".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
