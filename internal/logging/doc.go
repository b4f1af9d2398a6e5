// Package logging provides the console logger used for build progress and
// diagnostics. Output goes to stderr so stdout stays reserved for the build
// summary.
package logging
