// Package cmd defines command-line interface commands for cachekey.
package cmd

import (
	"github.com/spf13/cobra"
)

var version string

var rootCmd = &cobra.Command{
	Use:   "cachekey",
	Short: "Build cache-key computation for environment-dependent tasks",
	Long: `cachekey computes the environment-variable contribution to a build
task's cache key. Variables are selected with wildcard patterns from
.cachekey.yaml, combined with a fixed default allow-list, and serialized
deterministically so identical environments always hash identically.`,
}

// Execute runs the root CLI command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string for the CLI.
func SetVersion(v string) {
	version = v
	rootCmd.Version = version
}

func init() {
	rootCmd.AddCommand(hashCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(matchCmd)
}
