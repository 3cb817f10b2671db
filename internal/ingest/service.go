package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	// jobDuration is the simulated processing time: a job is defined to
	// complete this long after creation. There is no real unit of work being
	// tracked; progress is derived from the wall clock alone.
	jobDuration = 8 * time.Second

	// jobTTL bounds how long a stale job record survives in the store.
	jobTTL = 10 * time.Minute
)

// PhotoRef identifies one uploaded photo in an ingest request.
type PhotoRef struct {
	Key         string `json:"key"         validate:"required"`
	URL         string `json:"url"         validate:"omitempty,url"`
	ContentType string `json:"contentType"`
}

// QueuedPhoto is an image handed to the catalog in queued state.
type QueuedPhoto struct {
	Key string
	URL string
}

// Cataloger is the slice of the image catalog the ingest flow needs.
type Cataloger interface {
	// AddQueued upserts the photos as queued images.
	AddQueued(ctx context.Context, photos []QueuedPhoto) error
	// MarkProcessed bulk-transitions queued images to processed and returns
	// the number of rows affected.
	MarkProcessed(ctx context.Context, keys []string) (int64, error)
}

// StatusResult is the progress report for one job.
type StatusResult struct {
	Status   string `json:"status"`
	Progress int    `json:"progress"`
}

// Service contains the business logic for starting jobs and reporting status.
type Service struct {
	store     Store
	catalog   Cataloger
	publicURL func(key string) string

	// now is swappable so tests can drive the simulated clock.
	now func() time.Time
}

// NewService creates a new ingest Service. publicURL resolves a storage key
// to its browser-accessible URL for photos that arrive without one.
func NewService(store Store, catalog Cataloger, publicURL func(key string) string) *Service {
	return &Service{
		store:     store,
		catalog:   catalog,
		publicURL: publicURL,
		now:       time.Now,
	}
}

// Start records the referenced photos as queued images, creates a running job
// with a fresh opaque id, and returns that id. The photos slice must be
// validated by the caller.
func (s *Service) Start(ctx context.Context, photos []PhotoRef) (string, error) {
	queued := make([]QueuedPhoto, len(photos))
	keys := make([]string, len(photos))
	for i, p := range photos {
		url := p.URL
		if url == "" {
			url = s.publicURL(p.Key)
		}
		queued[i] = QueuedPhoto{Key: p.Key, URL: url}
		keys[i] = p.Key
	}

	if err := s.catalog.AddQueued(ctx, queued); err != nil {
		return "", fmt.Errorf("queue images: %w", err)
	}

	job := &Job{
		ID:        uuid.NewString(),
		StartedAt: s.now().UTC(),
		Total:     len(photos),
		Status:    StatusRunning,
		Keys:      keys,
	}
	if err := s.store.Create(ctx, job, jobTTL); err != nil {
		return "", fmt.Errorf("create job: %w", err)
	}
	return job.ID, nil
}

// Status computes the job's progress from elapsed time. The first observation
// at 100% wins the finalized check-and-set and performs the bulk
// queued-to-processed transition; every later poll only reports completion.
func (s *Service) Status(ctx context.Context, id string) (StatusResult, error) {
	job, err := s.store.Get(ctx, id)
	if err != nil {
		return StatusResult{}, err
	}

	progress := progressAt(s.now(), job.StartedAt)
	if progress < 100 {
		return StatusResult{Status: StatusRunning, Progress: progress}, nil
	}

	first, err := s.store.TryFinalize(ctx, id)
	if err != nil {
		return StatusResult{}, err
	}
	if first {
		if _, err := s.catalog.MarkProcessed(ctx, job.Keys); err != nil {
			return StatusResult{}, fmt.Errorf("mark images processed: %w", err)
		}
	}
	return StatusResult{Status: StatusCompleted, Progress: 100}, nil
}

// progressAt is a pure function of now - startedAt, clamped to [0,100].
func progressAt(now, startedAt time.Time) int {
	elapsed := now.Sub(startedAt)
	if elapsed <= 0 {
		return 0
	}
	if elapsed >= jobDuration {
		return 100
	}
	return int(float64(elapsed) / float64(jobDuration) * 100)
}
