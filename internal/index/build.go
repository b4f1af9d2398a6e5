package index

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nothing-labs/marketplace/internal/logging"
	"github.com/nothing-labs/marketplace/internal/pkgmeta"
)

// Build reads the source directory and writes the index file.
//
// The output directory is created up front. Descriptors are all read and
// validated before anything is written, so a failed build leaves any
// previous index untouched.
func Build(opts Options) (*Result, error) {
	log := opts.Logger
	if log == nil {
		log = logging.NewNullLogger()
	}

	workDir := opts.WorkDir
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("resolving working directory: %w", err)
		}
		workDir = wd
	}

	sourceDir := resolve(workDir, opts.SourceDir, DefaultSourceDir)
	outputPath := resolve(workDir, opts.OutputPath, DefaultOutputPath)

	if err := ensureDir(filepath.Dir(outputPath)); err != nil {
		return nil, err
	}

	meta := pkgmeta.Default()
	if opts.MetadataPath != "" {
		path := resolve(workDir, opts.MetadataPath, "")
		loaded, err := pkgmeta.Load(path)
		if err != nil {
			return nil, err
		}
		if err := pkgmeta.CheckVersion(loaded.Version); err != nil {
			log.Warn("%s: %v", path, err)
		}
		meta = *loaded
		log.Verbose("using package metadata %s@%s from %s", meta.Name, meta.Version, path)
	}

	col, err := Collect(sourceDir, CollectOptions{
		Locale:    opts.Locale,
		Validator: opts.Validator,
		KeepGoing: opts.KeepGoing,
		Logger:    log,
	})
	if err != nil {
		return nil, err
	}

	doc := Assemble(col, meta)
	if err := WriteFile(outputPath, doc); err != nil {
		return nil, err
	}
	log.Verbose("wrote %s", outputPath)

	return &Result{
		Extensions: len(doc.Extensions),
		Tags:       len(doc.Tags),
		OutputPath: outputPath,
	}, nil
}

// resolve joins a relative path onto base, using def when path is empty.
func resolve(base, path, def string) string {
	if path == "" {
		path = def
	}
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}
