package ingest

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is an in-process Store with the same TTL and check-and-set
// semantics as the Redis implementation. It backs the tests and is usable
// for single-process development without a Redis instance.
type MemoryStore struct {
	mu   sync.Mutex
	jobs map[string]*memoryJob

	// now is swappable so tests can control expiry deterministically.
	now func() time.Time
}

type memoryJob struct {
	job       Job
	expiresAt time.Time
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		jobs: make(map[string]*memoryJob),
		now:  time.Now,
	}
}

// Create stores a copy of the job with its expiry deadline.
func (s *MemoryStore) Create(_ context.Context, job *Job, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *job
	stored.Keys = append([]string(nil), job.Keys...)
	s.jobs[job.ID] = &memoryJob{
		job:       stored,
		expiresAt: s.now().Add(ttl),
	}
	return nil
}

// Get returns a copy of the job, or ErrNotFound if unknown or expired.
func (s *MemoryStore) Get(_ context.Context, id string) (*Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	job := entry.job
	job.Keys = append([]string(nil), entry.job.Keys...)
	return &job, nil
}

// TryFinalize flips the finalized flag under the store lock.
func (s *MemoryStore) TryFinalize(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, err := s.lookup(id)
	if err != nil {
		return false, err
	}
	if entry.job.Finalized {
		return false, nil
	}
	entry.job.Finalized = true
	entry.job.Status = StatusCompleted
	return true, nil
}

// lookup must be called with the lock held.
func (s *MemoryStore) lookup(id string) (*memoryJob, error) {
	entry, ok := s.jobs[id]
	if !ok {
		return nil, ErrNotFound
	}
	if s.now().After(entry.expiresAt) {
		delete(s.jobs, id)
		return nil, ErrNotFound
	}
	return entry, nil
}
