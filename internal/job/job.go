// Package job defines the transient conversion job created for each
// request. Jobs live only for the duration of a single request; the
// produced audio file is the only durable artifact.
package job

import (
	"fmt"

	"github.com/google/uuid"
)

// DefaultTitle is used when extraction metadata carries no title.
const DefaultTitle = "Untitled"

// Job correlates one conversion request with its output file.
type Job struct {
	ID        string
	SourceURL string
	Title     string
}

// NewID returns a collision-resistant identifier for a conversion job.
func NewID() string {
	return uuid.NewString()
}

// New creates a job for the given source URL with a fresh ID.
func New(sourceURL string) *Job {
	return &Job{
		ID:        NewID(),
		SourceURL: sourceURL,
		Title:     DefaultTitle,
	}
}

// OutputName returns the file name of the job's produced audio file.
func (j *Job) OutputName(ext string) string {
	return fmt.Sprintf("%s.%s", j.ID, ext)
}
