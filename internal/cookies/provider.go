// Package cookies resolves optional session credential material for
// conversions. Inline content from a request takes precedence over the
// persisted cookies file; with neither, extraction runs unauthenticated.
package cookies

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Provider resolves credential material against a fixed persisted path.
type Provider struct {
	filePath string
}

// NewProvider creates a provider backed by the given persisted cookies
// file path.
func NewProvider(filePath string) *Provider {
	return &Provider{filePath: filePath}
}

// Resolve returns the cookie file path to hand to the converter for one
// conversion, or "" when no credential material is available. The
// returned cleanup func must be called after the conversion completes,
// success or failure; it releases any ephemeral file created for inline
// content so no credential material leaks across requests.
func (p *Provider) Resolve(inlineContent string) (string, func(), error) {
	noop := func() {}

	if inlineContent != "" {
		tmp, err := os.CreateTemp("", "cookies-*.txt")
		if err != nil {
			return "", noop, fmt.Errorf("failed to create ephemeral cookie file: %w", err)
		}

		if _, err := tmp.WriteString(inlineContent); err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
			return "", noop, fmt.Errorf("failed to write ephemeral cookie file: %w", err)
		}
		if err := tmp.Close(); err != nil {
			os.Remove(tmp.Name())
			return "", noop, fmt.Errorf("failed to close ephemeral cookie file: %w", err)
		}

		path := tmp.Name()
		cleanup := func() {
			if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
				slog.Error("Failed to remove ephemeral cookie file", "path", path, "error", err)
			}
		}
		return path, cleanup, nil
	}

	if _, err := os.Stat(p.filePath); err == nil {
		return p.filePath, noop, nil
	}

	return "", noop, nil
}

// Save persists credential content at the fixed path, fully replacing
// any prior content. The write goes through a temp file and rename so a
// failure leaves no partial content in place.
func (p *Provider) Save(content string) error {
	dir := filepath.Dir(p.filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create cookies directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".cookies-*")
	if err != nil {
		return fmt.Errorf("failed to create temp cookies file: %w", err)
	}

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write cookies file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close cookies file: %w", err)
	}

	if err := os.Rename(tmp.Name(), p.filePath); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace cookies file: %w", err)
	}

	slog.Info("Persisted cookies file updated", "path", p.filePath)
	return nil
}
