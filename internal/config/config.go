// Package config provides configuration management for cachekey.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	apperrors "github.com/wellmaintained/cachekey/internal/errors"
	"github.com/wellmaintained/cachekey/internal/workspace"
)

// Config holds the user-declared hash inputs read from .cachekey.yaml.
type Config struct {
	// GlobalEnv lists wildcard patterns selecting environment variables
	// that feed the global hash. A leading "!" excludes, a leading `\!`
	// includes a name that starts with a literal "!".
	GlobalEnv []string `yaml:"globalEnv"`

	// GlobalPassThroughEnv lists wildcard patterns for variables passed
	// through to tasks without contributing to the hash.
	GlobalPassThroughEnv []string `yaml:"globalPassThroughEnv"`

	// GlobalDependencies lists files (relative to the workspace root)
	// whose contents feed the global hash.
	GlobalDependencies []string `yaml:"globalDependencies"`

	// WorkspaceRoot is the directory the config was resolved against.
	WorkspaceRoot string `yaml:"-"`
}

// LoadConfig loads the cachekey configuration for the current workspace.
// The config file path can be overridden with CACHEKEY_CONFIG. A missing
// file is not an error: hashing with no declared patterns is valid and
// selects only the default variables.
func LoadConfig() (*Config, error) {
	root, err := workspace.FindRoot()
	if err != nil {
		return nil, err
	}

	path := os.Getenv("CACHEKEY_CONFIG")
	if path == "" {
		path = filepath.Join(root, workspace.ConfigFileName)
	}

	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	cfg.WorkspaceRoot = root
	return cfg, nil
}

// Load reads and parses a config file at an explicit path. A missing file
// yields a zero-value config.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, apperrors.NewRuntimeError(fmt.Sprintf("reading config %s", path), err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, apperrors.NewValidationError(fmt.Sprintf("parsing config %s", path), err)
	}
	return cfg, nil
}
