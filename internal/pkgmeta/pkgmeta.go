package pkgmeta

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nothing-labs/marketplace/internal/branding"
	"go.yaml.in/yaml/v3"
)

// Metadata is the name/version pair copied into the index.
type Metadata struct {
	Name    string `json:"name" yaml:"name"`
	Version string `json:"version" yaml:"version"`
}

var (
	ErrMissingName    = errors.New("package metadata missing 'name'")
	ErrMissingVersion = errors.New("package metadata missing 'version'")
)

// ParseError reports a metadata file that is missing or not valid JSON/YAML.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing package metadata %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Default returns the metadata used when no metadata file is configured.
func Default() Metadata {
	return Metadata{
		Name:    branding.IndexName(),
		Version: branding.IndexVersion(),
	}
}

// Load reads name and version from a package.json-style file.
// Files ending in .yaml or .yml are decoded as YAML, everything else as JSON.
func Load(path string) (*Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: fmt.Errorf("reading file: %w", err)}
	}

	var m Metadata
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &m)
	default:
		err = json.Unmarshal(data, &m)
	}
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	if m.Name == "" {
		return nil, &ParseError{Path: path, Err: ErrMissingName}
	}
	if m.Version == "" {
		return nil, &ParseError{Path: path, Err: ErrMissingVersion}
	}
	return &m, nil
}
