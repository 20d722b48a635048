// Package storage manages the local download root where produced audio
// files live. Files are written once by the converter and never mutated;
// there is no expiry or cleanup policy.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var ErrUnsafeFilename = fmt.Errorf("unsafe filename")

// Local is a download root on the local filesystem.
type Local struct {
	root string
}

// NewLocal creates the download root if needed and returns a handle to it.
func NewLocal(root string) (*Local, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("failed to create download directory %s: %w", root, err)
	}
	return &Local{root: root}, nil
}

// Root returns the download root directory.
func (s *Local) Root() string {
	return s.root
}

// OutputPath returns the final path of a job's produced file.
func (s *Local) OutputPath(jobID, ext string) string {
	return filepath.Join(s.root, fmt.Sprintf("%s.%s", jobID, ext))
}

// OutputTemplate returns the output template handed to the converter.
// The extension placeholder is filled in by the external tool.
func (s *Local) OutputTemplate(jobID string) string {
	return filepath.Join(s.root, jobID+".%(ext)s")
}

// Resolve maps a client-supplied filename to a path inside the download
// root. Filenames carrying directory separators or parent references are
// rejected since they are reflected into a filesystem path.
func (s *Local) Resolve(filename string) (string, error) {
	if filename == "" ||
		strings.ContainsAny(filename, `/\`) ||
		strings.Contains(filename, "..") {
		return "", fmt.Errorf("%w: %q", ErrUnsafeFilename, filename)
	}
	return filepath.Join(s.root, filename), nil
}

// Exists reports whether a file is present at the given path.
func (s *Local) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
