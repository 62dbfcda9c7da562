package hashing

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	apperrors "github.com/wellmaintained/cachekey/internal/errors"
)

func TestHashFiles(t *testing.T) {
	root := t.TempDir()
	content := []byte("lockfile contents\n")
	assert.NoError(t, os.WriteFile(filepath.Join(root, "lockfile"), content, 0o644))
	assert.NoError(t, os.WriteFile(filepath.Join(root, "package.json"), []byte("{}"), 0o644))

	hashes, err := HashFiles(root, []string{"lockfile", "package.json"})
	assert.NoError(t, err)

	expected := sha256.Sum256(content)
	assert.Equal(t, hex.EncodeToString(expected[:]), hashes["lockfile"])
	assert.Len(t, hashes, 2)
}

func TestHashFilesEmptyList(t *testing.T) {
	hashes, err := HashFiles(t.TempDir(), nil)
	assert.NoError(t, err)
	assert.Empty(t, hashes)
}

func TestHashFilesRejectsTraversal(t *testing.T) {
	_, err := HashFiles(t.TempDir(), []string{filepath.Join("..", "outside")})
	assert.Error(t, err)

	var validationErr *apperrors.ValidationError
	assert.True(t, errors.As(err, &validationErr))
}

func TestHashFilesMissingFileIsRuntimeError(t *testing.T) {
	_, err := HashFiles(t.TempDir(), []string{"nope"})
	assert.Error(t, err)

	var runtimeErr *apperrors.RuntimeError
	assert.True(t, errors.As(err, &runtimeErr))
}
