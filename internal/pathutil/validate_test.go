package pathutil

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestResolveInRoot(t *testing.T) {
	root := t.TempDir()

	tests := []struct {
		name     string
		path     string
		expected string
		wantErr  error
	}{
		{
			name:     "relative path inside root",
			path:     "package.json",
			expected: filepath.Join(root, "package.json"),
		},
		{
			name:     "nested relative path",
			path:     filepath.Join("config", "build.yaml"),
			expected: filepath.Join(root, "config", "build.yaml"),
		},
		{
			name:     "dot segments that stay inside",
			path:     filepath.Join("a", "..", "b"),
			expected: filepath.Join(root, "b"),
		},
		{
			name:    "traversal out of root",
			path:    filepath.Join("..", "..", "etc", "passwd"),
			wantErr: ErrPathEscapesRoot,
		},
		{
			name:     "absolute path under root",
			path:     filepath.Join(root, "lockfile"),
			expected: filepath.Join(root, "lockfile"),
		},
		{
			name:    "absolute path outside root",
			path:    filepath.Join(filepath.Dir(root), "elsewhere"),
			wantErr: ErrPathEscapesRoot,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved, err := ResolveInRoot(tt.path, root)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if resolved != tt.expected {
				t.Errorf("resolved = %q, expected %q", resolved, tt.expected)
			}
		})
	}
}

func TestResolveInRootEmptyArguments(t *testing.T) {
	if _, err := ResolveInRoot("", "/root"); err == nil {
		t.Error("expected error for empty path")
	}
	if _, err := ResolveInRoot("file", ""); err == nil {
		t.Error("expected error for empty root")
	}
}
