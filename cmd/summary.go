package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/wellmaintained/cachekey/internal/config"
	"github.com/wellmaintained/cachekey/internal/errors"
	"github.com/wellmaintained/cachekey/internal/hashing"
	"github.com/wellmaintained/cachekey/internal/ui"
	"github.com/wellmaintained/cachekey/pkg/env"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show which environment variables feed the hash",
	Long: `Show the environment variables that feed the global hash, broken down
by source: "explicit" variables matched a user-declared globalEnv pattern,
"matching" variables matched the built-in default allow-list.

Values are shown as sha256 digests. An empty digest column means the
variable is present but empty.`,
	Example: `  # Show the by-source breakdown for the current environment
  cachekey summary`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runSummary(); err != nil {
			ui.Error("Error: %v\n", err)
			os.Exit(errors.GetExitCode(err))
		}
	},
}

func runSummary() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	detailed, err := hashing.GlobalHashableEnvVars(env.Infer(), cfg.GlobalEnv)
	if err != nil {
		return errors.NewValidationError("invalid globalEnv patterns", err)
	}

	return ui.PrintEnvSummary(os.Stdout, detailed)
}
