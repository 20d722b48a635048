package converter

import (
	"errors"
	"strings"
)

var (
	// ErrRateLimited indicates the upstream source actively throttled the
	// request. Retryable by the client, mapped to 429 at the boundary.
	ErrRateLimited = errors.New("upstream rate limit exceeded")

	// ErrOutputMissing indicates the tool reported success but the
	// expected output file is absent from disk.
	ErrOutputMissing = errors.New("converted file was not found after download")

	// ErrToolNotAvailable indicates the external tool is not installed or
	// not on PATH.
	ErrToolNotAvailable = errors.New("yt-dlp not available")
)

// errorMarker precedes the human-readable cause in the tool's stderr.
// Splitting on it is a fragile contract coupled to the tool's error
// formatting, preserved for compatibility with existing clients.
const errorMarker = "ERROR: "

// ExtractionError is any tool-reported failure that is not a rate limit:
// invalid URL, private or unavailable content, network failure.
type ExtractionError struct {
	Reason string
}

func (e *ExtractionError) Error() string {
	return "extraction failed: " + e.Reason
}

// classifyFailure maps the tool's raw stderr to the error taxonomy.
func classifyFailure(stderr string) error {
	lower := strings.ToLower(stderr)
	if strings.Contains(lower, "429") || strings.Contains(lower, "too many requests") {
		return ErrRateLimited
	}
	return &ExtractionError{Reason: extractReason(stderr)}
}

// extractReason returns the substring after the last error marker, or
// the full trimmed message when no marker is present.
func extractReason(raw string) string {
	if i := strings.LastIndex(raw, errorMarker); i >= 0 {
		return strings.TrimSpace(raw[i+len(errorMarker):])
	}
	return strings.TrimSpace(raw)
}
