package index

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nothing-labs/marketplace/internal/descriptor"
	"github.com/nothing-labs/marketplace/internal/logging"
)

// Collect reads every descriptor in sourceDir, then sorts descriptors by
// identifier and tags ascending. It stops at the first bad file unless
// opts.KeepGoing is set, in which case all failures are joined into one error.
// No Collection is returned when any file fails.
func Collect(sourceDir string, opts CollectOptions) (*Collection, error) {
	log := opts.Logger
	if log == nil {
		log = logging.NewNullLogger()
	}

	collator, err := newCollator(opts.Locale)
	if err != nil {
		return nil, err
	}

	files, err := descriptorFiles(sourceDir)
	if err != nil {
		return nil, err
	}

	extensions := make([]descriptor.Descriptor, 0, len(files))
	tags := make(tagSet)
	var errs []error

	for _, path := range files {
		log.Verbose("reading %s", path)

		d, err := readDescriptor(path, opts.Validator)
		if err != nil {
			if !opts.KeepGoing {
				return nil, err
			}
			log.Error("%v", err)
			errs = append(errs, err)
			continue
		}

		extensions = append(extensions, *d)
		tags.add(d.Tags...)
	}

	if opts.KeepGoing {
		log.Info("checked %d descriptors, %d failed", len(files), len(errs))
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("%d of %d descriptors failed: %w", len(errs), len(files), errors.Join(errs...))
	}

	sortByIdentifier(extensions, collator)

	return &Collection{
		Extensions: extensions,
		Tags:       tags.sorted(),
	}, nil
}

// descriptorFiles lists the *.json files directly inside dir.
// os.ReadDir returns entries sorted by name, which fixes the encounter order.
func descriptorFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading source directory %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), descriptorExt) {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	return files, nil
}

func readDescriptor(path string, v *descriptor.Validator) (*descriptor.Descriptor, error) {
	d, err := descriptor.ParseFile(path)
	if err != nil {
		return nil, err
	}
	if v != nil {
		if err := v.Check(d); err != nil {
			return nil, err
		}
	}
	return d, nil
}
