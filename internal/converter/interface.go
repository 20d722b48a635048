// Package converter wraps the external media extraction and transcoding
// capability. All actual fetching and transcoding is delegated to the
// external tool; this package translates a URL and optional credential
// material into a produced audio file on disk.
package converter

import "context"

// Options parameterize a single conversion.
type Options struct {
	// OutputTemplate is handed to the external tool; the tool substitutes
	// the container extension while transcoding.
	OutputTemplate string

	// OutputPath is the final file expected on disk after a successful
	// conversion.
	OutputPath string

	// AudioFormat is the target codec/extension (mp3 or wav).
	AudioFormat string

	// CookieFile optionally points at credential material for restricted
	// sources. Empty means unauthenticated extraction.
	CookieFile string
}

// Result carries extraction metadata for a completed conversion.
type Result struct {
	// Title is the human-readable title of the source media. May be
	// empty when the source has none.
	Title string
}

// Converter drives extraction and transcoding to completion. The call
// blocks for the duration of the download and may take minutes for long
// source media.
type Converter interface {
	Convert(ctx context.Context, url string, opts Options) (*Result, error)
}
