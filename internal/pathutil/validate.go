// Package pathutil provides boundary validation for configured file paths.
// Global dependency paths come from user configuration and are resolved
// relative to the workspace root; validation ensures a configured path
// cannot escape the root (CWE-22) and read arbitrary files into the hash.
package pathutil

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrPathEscapesRoot is returned when a configured path resolves outside the workspace root.
var ErrPathEscapesRoot = errors.New("path escapes the workspace root")

// ResolveInRoot resolves a configured path against the workspace root and
// verifies the result stays inside it. Relative paths are joined to the
// root; absolute paths are accepted only when already under the root.
// Returns the cleaned absolute path, or ErrPathEscapesRoot.
func ResolveInRoot(path, root string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("path cannot be empty")
	}
	if root == "" {
		return "", fmt.Errorf("root cannot be empty")
	}

	absRoot, err := filepath.Abs(filepath.Clean(root))
	if err != nil {
		return "", fmt.Errorf("cannot resolve root to absolute path: %w", err)
	}

	resolved := filepath.Clean(path)
	if !filepath.IsAbs(resolved) {
		resolved = filepath.Join(absRoot, resolved)
	}

	if resolved != absRoot && !strings.HasPrefix(resolved, absRoot+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q resolves to %q", ErrPathEscapesRoot, path, resolved)
	}
	return resolved, nil
}
