package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nothing-labs/marketplace/internal/branding"
	"github.com/nothing-labs/marketplace/internal/config"
	"github.com/nothing-labs/marketplace/internal/descriptor"
	"github.com/nothing-labs/marketplace/internal/logging"
	"github.com/spf13/cobra"
)

// buildInfo is injected via ldflags at build time.
type buildInfo struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

func newRootCmd(info buildInfo) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   branding.CLIName(),
		Short: branding.Description(),
		Long: branding.DisplayName() + ` merges every extension descriptor (*.json) in the source directory
into a single index document with the extensions sorted by identifier and the
union of their tags.

Run without a subcommand to build the index.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runBuild,
	}

	config.RegisterFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(newBuildCmd())
	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newVersionCmd(info))
	return rootCmd
}

// Execute runs the root command with build info injected via ldflags.
// Errors are printed to stderr before being returned.
func Execute(version, commit, date string) error {
	rootCmd := newRootCmd(buildInfo{Version: version, Commit: commit, Date: date})
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// loadConfig resolves configuration against the current working directory.
func loadConfig(cmd *cobra.Command) (*config.BuildConfig, string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, "", fmt.Errorf("resolving working directory: %w", err)
	}
	cfg, err := config.Load(wd, cmd.Flags())
	if err != nil {
		return nil, "", err
	}
	return cfg, wd, nil
}

func newLogger(cmd *cobra.Command, cfg *config.BuildConfig) logging.Logger {
	log := logging.NewConsoleLoggerTo(cmd.ErrOrStderr(), cfg.Verbose)
	if cfg.ConfigFile != "" {
		log.Verbose("using config file %s", cfg.ConfigFile)
	}
	return log
}

// loadValidator returns the schema validator for strict builds, or nil.
func loadValidator(cfg *config.BuildConfig, wd string) (*descriptor.Validator, error) {
	if cfg.SchemaPath != "" {
		return descriptor.NewValidator(absPath(wd, cfg.SchemaPath))
	}
	if cfg.Strict {
		return descriptor.DefaultValidator()
	}
	return nil, nil
}

func absPath(wd, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(wd, path)
}
