package hashing

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	apperrors "github.com/wellmaintained/cachekey/internal/errors"
	"github.com/wellmaintained/cachekey/internal/pathutil"
)

// HashFiles hashes the configured global dependency files. Paths are
// resolved relative to the workspace root and must stay inside it. The
// returned map is keyed by the configured (not resolved) path so the hash
// stays stable when the workspace moves between machines.
func HashFiles(root string, paths []string) (map[string]string, error) {
	hashes := make(map[string]string, len(paths))

	for _, path := range paths {
		resolved, err := pathutil.ResolveInRoot(path, root)
		if err != nil {
			return nil, apperrors.NewValidationError(fmt.Sprintf("invalid global dependency %q", path), err)
		}

		digest, err := hashFile(resolved)
		if err != nil {
			return nil, apperrors.NewRuntimeError(fmt.Sprintf("hashing global dependency %q", path), err)
		}
		hashes[path] = digest
	}

	return hashes, nil
}

func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
