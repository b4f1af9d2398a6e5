package index

import (
	"github.com/nothing-labs/marketplace/internal/descriptor"
	"github.com/nothing-labs/marketplace/internal/logging"
)

const (
	// DefaultSourceDir is the descriptor directory, relative to the working directory.
	DefaultSourceDir = "src"

	// DefaultOutputPath is the index file, relative to the working directory.
	DefaultOutputPath = "public/index.json"

	// DefaultLocale is the BCP 47 tag used to collate identifiers.
	DefaultLocale = "en"

	descriptorExt = ".json"
)

// Options configures a build. Zero values fall back to the defaults above.
type Options struct {
	WorkDir      string // base for relative paths; defaults to the process working directory
	SourceDir    string
	OutputPath   string
	MetadataPath string // package metadata file; empty uses the branded name/version

	Locale    string
	Validator *descriptor.Validator // optional schema check per descriptor
	KeepGoing bool                  // report every bad file instead of stopping at the first

	Logger logging.Logger
}

// CollectOptions configures Collect.
type CollectOptions struct {
	Locale    string
	Validator *descriptor.Validator
	KeepGoing bool
	Logger    logging.Logger
}

// Collection is the sorted set of descriptors and tags read from a source directory.
type Collection struct {
	Extensions []descriptor.Descriptor
	Tags       []string
}

// Document is the index written to disk. Field order is the output order.
type Document struct {
	Name       string                  `json:"name"`
	Version    string                  `json:"version"`
	Extensions []descriptor.Descriptor `json:"extensions"`
	Tags       []string                `json:"tags"`
}

// Result summarizes a completed build.
type Result struct {
	Extensions int
	Tags       int
	OutputPath string // resolved output path
}
