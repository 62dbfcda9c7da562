package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/wellmaintained/cachekey/internal/errors"
	"github.com/wellmaintained/cachekey/internal/ui"
	"github.com/wellmaintained/cachekey/pkg/env"
)

var matchCmd = &cobra.Command{
	Use:   "match <pattern>...",
	Short: "Test wildcard patterns against the current environment",
	Long: `Test wildcard patterns against the current environment without
computing a hash. Prints which variable names the patterns include and
which they exclude; an excluded name never reaches the hash even when it
also matches an inclusion.

Only variable names are printed, never values.`,
	Example: `  # Which variables would BUILD_* select?
  cachekey match 'BUILD_*'

  # Inclusion and exclusion together
  cachekey match 'BUILD_*' '!BUILD_SCRATCH'`,
	Args: cobra.MinimumNArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		for _, pattern := range args {
			if strings.TrimSpace(pattern) == "" {
				return errors.NewValidationError("patterns cannot be empty", nil)
			}
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		if err := runMatch(args); err != nil {
			ui.Error("Error: %v\n", err)
			os.Exit(errors.GetExitCode(err))
		}
	},
}

func runMatch(patterns []string) error {
	maps, err := env.Infer().FromWildcardsUnresolved(patterns)
	if err != nil {
		return errors.NewValidationError("invalid patterns", err)
	}

	resolved := maps.Resolve()

	var rows [][]string
	for _, name := range maps.Inclusions.Names() {
		status := "included"
		if _, excluded := maps.Exclusions[name]; excluded {
			status = "excluded"
		}
		rows = append(rows, []string{name, status})
	}
	for _, name := range maps.Exclusions.Names() {
		if _, alsoIncluded := maps.Inclusions[name]; !alsoIncluded {
			rows = append(rows, []string{name, "excluded"})
		}
	}

	if len(rows) == 0 {
		fmt.Println("No variables match.")
		return nil
	}

	if err := ui.PrintTable(os.Stdout, []string{"VARIABLE", "STATUS"}, rows); err != nil {
		return err
	}
	ui.Info("%d variable(s) selected after exclusions.\n", len(resolved))
	return nil
}
