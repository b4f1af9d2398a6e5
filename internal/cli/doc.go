// Package cli defines the Cobra command tree for the marketplace CLI. Running
// the root command with no arguments builds the index; subcommands validate
// descriptors, list a built index, and print version information. Commands
// only resolve configuration and format output; the work happens in
// internal/index.
package cli
