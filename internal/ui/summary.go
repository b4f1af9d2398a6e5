// Package ui renders user-facing status lines for the CLI.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorSuccess = lipgloss.Color("34")  // Green
	colorError   = lipgloss.Color("196") // Red

	successMark = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true).Render("✓")
	failureMark = lipgloss.NewStyle().Foreground(colorError).Bold(true).Render("✗")
)

// BuildSummary prints the two lines reported after a successful build.
func BuildSummary(w io.Writer, extensions, tags int, outputPath string) {
	fmt.Fprintf(w, "%s Built %d extensions to %s\n", successMark, extensions, outputPath)
	fmt.Fprintf(w, "%s Total tags: %d\n", successMark, tags)
}

// Success prints a single success line.
func Success(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(w, "%s %s\n", successMark, fmt.Sprintf(format, args...))
}

// Failure prints a single failure line.
func Failure(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(w, "%s %s\n", failureMark, fmt.Sprintf(format, args...))
}
