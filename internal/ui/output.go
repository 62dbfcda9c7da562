// Package ui provides terminal output for cachekey: colored status messages
// that respect NO_COLOR and TTY detection, and the redacted environment
// summary table.
package ui

import (
	"os"

	"github.com/fatih/color"
)

// Error prints a red-colored message to stderr.
func Error(format string, args ...interface{}) {
	color.New(color.FgRed).Fprintf(os.Stderr, format, args...)
}

// Info prints a cyan-colored message to stderr.
func Info(format string, args ...interface{}) {
	color.New(color.FgCyan).Fprintf(os.Stderr, format, args...)
}
