// Package workspace provides utilities for finding the workspace root directory.
package workspace

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// ConfigFileName is the cachekey configuration file looked up at the
// workspace root.
const ConfigFileName = ".cachekey.yaml"

// ErrNoRoot is returned when no workspace root can be determined.
var ErrNoRoot = errors.New("no workspace root found (not a git repository and no " + ConfigFileName + " in any parent directory)")

// FindRoot finds the workspace root directory. It first asks git
// (`git rev-parse --show-toplevel`); outside a repository it walks up from
// the current directory looking for a .cachekey.yaml file.
func FindRoot() (string, error) {
	cmd := exec.Command("git", "rev-parse", "--show-toplevel")
	output, err := cmd.Output()
	if err == nil {
		return strings.TrimSpace(string(output)), nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return findConfigRoot(cwd)
}

// findConfigRoot walks up from dir until it finds a directory containing
// the config file.
func findConfigRoot(dir string) (string, error) {
	for {
		if _, err := os.Stat(filepath.Join(dir, ConfigFileName)); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNoRoot
		}
		dir = parent
	}
}
