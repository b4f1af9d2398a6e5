package cli

import (
	"github.com/nothing-labs/marketplace/internal/index"
	"github.com/nothing-labs/marketplace/internal/ui"
	"github.com/spf13/cobra"
)

func newBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Build the marketplace index (default command)",
		Long: `Read every *.json descriptor in the source directory and write the index.

The build stops at the first unreadable or malformed descriptor unless
--keep-going is set; either way nothing is written when a descriptor fails.
The index is named after --package when given, otherwise after the built-in
name and version.`,
		Args: cobra.NoArgs,
		RunE: runBuild,
	}
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, wd, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log := newLogger(cmd, cfg)

	validator, err := loadValidator(cfg, wd)
	if err != nil {
		return err
	}

	res, err := index.Build(index.Options{
		WorkDir:      wd,
		SourceDir:    cfg.SourceDir,
		OutputPath:   cfg.OutputPath,
		MetadataPath: cfg.MetadataPath,
		Locale:       cfg.Locale,
		Validator:    validator,
		KeepGoing:    cfg.KeepGoing,
		Logger:       log,
	})
	if err != nil {
		return err
	}

	ui.BuildSummary(cmd.OutOrStdout(), res.Extensions, res.Tags, cfg.OutputPath)
	return nil
}
