package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLocalCreatesRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "downloads")

	s, err := NewLocal(root)
	require.NoError(t, err)

	info, err := os.Stat(root)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, root, s.Root())
}

func TestOutputPaths(t *testing.T) {
	root := t.TempDir()
	s, err := NewLocal(root)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, "abc.mp3"), s.OutputPath("abc", "mp3"))
	assert.Equal(t, filepath.Join(root, "abc.%(ext)s"), s.OutputTemplate("abc"))
}

func TestResolve(t *testing.T) {
	s, err := NewLocal(t.TempDir())
	require.NoError(t, err)

	tests := []struct {
		name     string
		filename string
		wantErr  bool
	}{
		{"plain filename", "abc-123.mp3", false},
		{"empty", "", true},
		{"parent traversal", "../../etc/passwd", true},
		{"forward slash", "a/b.mp3", true},
		{"backslash", `a\b.mp3`, true},
		{"dot dot only", "..", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, err := s.Resolve(tt.filename)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsafeFilename)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, filepath.Join(s.Root(), tt.filename), path)
		})
	}
}

func TestExists(t *testing.T) {
	s, err := NewLocal(t.TempDir())
	require.NoError(t, err)

	path := s.OutputPath("present", "mp3")
	assert.False(t, s.Exists(path))

	require.NoError(t, os.WriteFile(path, []byte("audio"), 0644))
	assert.True(t, s.Exists(path))

	// Directories are not downloadable files
	assert.False(t, s.Exists(s.Root()))
}
