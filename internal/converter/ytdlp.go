package converter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
)

const defaultBinary = "yt-dlp"

// YtDlp converts media URLs to audio files by invoking yt-dlp as a
// subprocess. yt-dlp handles extraction and drives ffmpeg for the audio
// transcode; this type only assembles arguments and interprets results.
type YtDlp struct {
	binary string
}

// NewYtDlp creates a converter backed by the yt-dlp binary on PATH.
func NewYtDlp() *YtDlp {
	return &YtDlp{binary: defaultBinary}
}

// Convert downloads the source URL and transcodes its audio into the
// file described by opts. Blocks until yt-dlp exits.
func (y *YtDlp) Convert(ctx context.Context, url string, opts Options) (*Result, error) {
	if err := y.checkAvailable(); err != nil {
		return nil, err
	}

	args := []string{
		"-f", "bestaudio/best",
		"-x",
		"--audio-format", opts.AudioFormat,
		"--audio-quality", "0",
		"-o", opts.OutputTemplate,
		"--no-playlist",
		"--no-progress",
		"--no-simulate",
		"--print", "after_move:title",
	}
	if opts.CookieFile != "" {
		args = append(args, "--cookies", opts.CookieFile)
	}
	args = append(args, url)

	slog.Info("Invoking yt-dlp", "url", url, "format", opts.AudioFormat, "output", opts.OutputTemplate)

	cmd := exec.CommandContext(ctx, y.binary, args...)

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, fmt.Errorf("failed to run yt-dlp: %w", err)
		}
		slog.Error("yt-dlp failed", "url", url, "stderr", stderrBuf.String())
		return nil, classifyFailure(stderrBuf.String())
	}

	if _, err := os.Stat(opts.OutputPath); err != nil {
		slog.Error("yt-dlp reported success but output is missing", "path", opts.OutputPath)
		return nil, ErrOutputMissing
	}

	title := lastLine(stdoutBuf.String())
	slog.Info("Conversion completed", "url", url, "title", title, "path", opts.OutputPath)
	return &Result{Title: title}, nil
}

// checkAvailable verifies that yt-dlp is installed and runnable.
func (y *YtDlp) checkAvailable() error {
	if err := exec.Command(y.binary, "--version").Run(); err != nil {
		return fmt.Errorf("%w: %v", ErrToolNotAvailable, err)
	}
	return nil
}

// lastLine returns the last non-empty line of the tool's stdout, which
// holds the printed title.
func lastLine(out string) string {
	lines := strings.Split(strings.TrimSpace(out), "\n")
	return strings.TrimSpace(lines[len(lines)-1])
}
