package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/wellmaintained/cachekey/internal/config"
	"github.com/wellmaintained/cachekey/internal/errors"
	"github.com/wellmaintained/cachekey/internal/hashing"
	"github.com/wellmaintained/cachekey/internal/ui"
	"github.com/wellmaintained/cachekey/pkg/env"
)

var (
	hashVerbose      bool
	hashRootDepsHash string
)

var hashCmd = &cobra.Command{
	Use:   "hash",
	Short: "Compute the global cache-key hash",
	Long: `Compute the global cache-key hash for the current workspace.

The hash covers:
1. Environment variables selected by the globalEnv patterns plus defaults
2. Content hashes of the configured globalDependencies files
3. The pattern lists themselves
4. An opaque external dependency hash, if the caller supplies one

Raw variable values feed the hash but are never printed; --verbose shows
the selected variables with sha256-redacted values.`,
	Example: `  # Print the global hash
  cachekey hash

  # Print the hash and the redacted variables behind it
  cachekey hash --verbose

  # Fold a lockfile-derived dependency hash into the result
  cachekey hash --root-deps-hash "$(my-lockfile-hasher)"`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runHash(); err != nil {
			ui.Error("Error: %v\n", err)
			os.Exit(errors.GetExitCode(err))
		}
	},
}

func runHash() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	envAtExecutionStart := env.Infer()

	detailed, err := hashing.GlobalHashableEnvVars(envAtExecutionStart, cfg.GlobalEnv)
	if err != nil {
		return errors.NewValidationError("invalid globalEnv patterns", err)
	}

	fileHashes, err := hashing.HashFiles(cfg.WorkspaceRoot, cfg.GlobalDependencies)
	if err != nil {
		return err
	}

	inputs := hashing.GlobalHashableInputs{
		GlobalFileHashMap:    fileHashes,
		RootExternalDepsHash: hashRootDepsHash,
		Env:                  cfg.GlobalEnv,
		ResolvedEnvVars:      detailed,
		PassThroughEnv:       cfg.GlobalPassThroughEnv,
	}
	fmt.Println(hashing.CalculateGlobalHash(inputs))

	if hashVerbose {
		for _, pair := range detailed.All.ToSecretHashable() {
			fmt.Println(pair)
		}
	}
	return nil
}

func init() {
	hashCmd.Flags().BoolVarP(&hashVerbose, "verbose", "v", false, "also print the selected variables with redacted values")
	hashCmd.Flags().StringVar(&hashRootDepsHash, "root-deps-hash", "", "opaque external dependency hash to fold into the global hash")
}
