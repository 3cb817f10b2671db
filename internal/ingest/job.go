// Package ingest coordinates the upload-ingest-status lifecycle: it creates
// transient job records for uploaded photos and reports their simulated
// progress until a one-time finalization marks the images processed.
package ingest

import (
	"context"
	"errors"
	"time"
)

// Job statuses.
const (
	StatusQueued    = "queued"
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// ErrNotFound is returned when a job does not exist or its record has expired.
var ErrNotFound = errors.New("job not found")

// Job is a transient record tracking the simulated progress of one ingest
// request. It lives in a keyed store under a TTL and is mutated exactly once,
// when finalization flips Finalized to true.
type Job struct {
	ID        string
	StartedAt time.Time
	Total     int
	Status    string
	Finalized bool
	Keys      []string
}

// Store persists Job records in a transient keyed store.
type Store interface {
	// Create writes a new job record with the given time-to-live.
	Create(ctx context.Context, job *Job, ttl time.Duration) error
	// Get fetches a job by id, returning ErrNotFound for unknown or expired ids.
	Get(ctx context.Context, id string) (*Job, error)
	// TryFinalize atomically flips the finalized flag and marks the job
	// completed. It reports true only for the caller that won the flip, so
	// racing status polls cannot both trigger the finalization side effect.
	TryFinalize(ctx context.Context, id string) (bool, error)
}
