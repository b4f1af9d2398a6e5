package cli

import (
	"errors"
	"fmt"

	"github.com/nothing-labs/marketplace/internal/descriptor"
	"github.com/nothing-labs/marketplace/internal/index"
	"github.com/nothing-labs/marketplace/internal/pkgmeta"
	"github.com/nothing-labs/marketplace/internal/ui"
	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check descriptors without writing the index",
		Long: `Parse every descriptor in the source directory and check it against the
descriptor schema (the built-in one, or --schema). All problems are reported,
not just the first. Package metadata is checked too when --package is set.`,
		Args: cobra.NoArgs,
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, wd, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	cfg.Strict = true
	log := newLogger(cmd, cfg)

	validator, err := loadValidator(cfg, wd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	var problems []error

	if cfg.MetadataPath != "" {
		meta, err := pkgmeta.Load(absPath(wd, cfg.MetadataPath))
		if err != nil {
			problems = append(problems, err)
		} else if err := pkgmeta.CheckVersion(meta.Version); err != nil {
			log.Warn("%s: %v", cfg.MetadataPath, err)
		}
	}

	col, err := index.Collect(absPath(wd, cfg.SourceDir), index.CollectOptions{
		Locale:    cfg.Locale,
		Validator: validator,
		KeepGoing: true,
		Logger:    log,
	})
	if err != nil {
		problems = append(problems, splitErrors(err)...)
	}

	if len(problems) > 0 {
		for _, p := range problems {
			ui.Failure(out, "%v", p)
		}
		return fmt.Errorf("%d problem(s) found", len(problems))
	}

	ui.Success(out, "%d descriptors valid, %d tags", len(col.Extensions), len(col.Tags))
	return nil
}

// splitErrors flattens the per-file errors joined by index.Collect.
// Errors that are not per-file (e.g. a missing source directory) are
// returned as-is.
func splitErrors(err error) []error {
	var pe *descriptor.ParseError
	var ve *descriptor.ValidationError
	if errors.As(err, &pe) || errors.As(err, &ve) {
		if joined, ok := errors.Unwrap(err).(interface{ Unwrap() []error }); ok {
			return joined.Unwrap()
		}
	}
	return []error{err}
}
