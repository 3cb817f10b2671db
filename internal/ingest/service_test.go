package ingest

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCatalog struct {
	mu             sync.Mutex
	queued         []QueuedPhoto
	processedCalls int
	processedKeys  []string
	addErr         error
	markErr        error
}

func (f *fakeCatalog) AddQueued(_ context.Context, photos []QueuedPhoto) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.addErr != nil {
		return f.addErr
	}
	f.queued = append(f.queued, photos...)
	return nil
}

func (f *fakeCatalog) MarkProcessed(_ context.Context, keys []string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.markErr != nil {
		return 0, f.markErr
	}
	f.processedCalls++
	f.processedKeys = keys
	return int64(len(keys)), nil
}

func publicURL(key string) string {
	return "http://storage.local/photos/" + key
}

// newTestService wires a Service to a MemoryStore with a controllable clock.
func newTestService(catalog *fakeCatalog) (*Service, *MemoryStore, *time.Time) {
	store := NewMemoryStore()
	svc := NewService(store, catalog, publicURL)

	current := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	clock := &current
	svc.now = func() time.Time { return *clock }
	store.now = func() time.Time { return *clock }
	return svc, store, clock
}

func TestStart_CreatesJobAndQueuesImages(t *testing.T) {
	catalog := &fakeCatalog{}
	svc, store, _ := newTestService(catalog)

	photos := []PhotoRef{
		{Key: "uploads/2026/08/30/a.jpg", URL: "http://cdn.local/a.jpg"},
		{Key: "uploads/2026/08/30/b.jpg"},
	}
	jobID, err := svc.Start(context.Background(), photos)
	require.NoError(t, err)

	_, err = uuid.Parse(jobID)
	assert.NoError(t, err, "job id must be a well-formed unique identifier")

	require.Len(t, catalog.queued, 2)
	assert.Equal(t, "http://cdn.local/a.jpg", catalog.queued[0].URL, "given url is kept")
	assert.Equal(t, publicURL("uploads/2026/08/30/b.jpg"), catalog.queued[1].URL, "missing url falls back to the public one")

	job, err := store.Get(context.Background(), jobID)
	require.NoError(t, err)
	assert.Equal(t, StatusRunning, job.Status)
	assert.False(t, job.Finalized)
	assert.Equal(t, 2, job.Total)
	assert.Equal(t, []string{"uploads/2026/08/30/a.jpg", "uploads/2026/08/30/b.jpg"}, job.Keys)
}

func TestStart_CatalogFailureCreatesNoJob(t *testing.T) {
	catalog := &fakeCatalog{addErr: errors.New("db down")}
	svc, store, _ := newTestService(catalog)

	_, err := svc.Start(context.Background(), []PhotoRef{{Key: "k"}})
	require.Error(t, err)

	store.mu.Lock()
	defer store.mu.Unlock()
	assert.Empty(t, store.jobs)
}

func TestStatus_ProgressIsTimeDerived(t *testing.T) {
	catalog := &fakeCatalog{}
	svc, _, clock := newTestService(catalog)

	jobID, err := svc.Start(context.Background(), []PhotoRef{{Key: "k"}})
	require.NoError(t, err)

	res, err := svc.Status(context.Background(), jobID)
	require.NoError(t, err)
	assert.Equal(t, StatusRunning, res.Status)
	assert.Equal(t, 0, res.Progress)

	*clock = clock.Add(2 * time.Second)
	res, err = svc.Status(context.Background(), jobID)
	require.NoError(t, err)
	assert.Equal(t, StatusRunning, res.Status)
	assert.Equal(t, 25, res.Progress)

	*clock = clock.Add(2 * time.Second)
	res, err = svc.Status(context.Background(), jobID)
	require.NoError(t, err)
	assert.Equal(t, 50, res.Progress)

	assert.Equal(t, 0, catalog.processedCalls, "no finalization before the threshold")
}

func TestStatus_FinalizesExactlyOnce(t *testing.T) {
	catalog := &fakeCatalog{}
	svc, _, clock := newTestService(catalog)

	jobID, err := svc.Start(context.Background(), []PhotoRef{{Key: "k1"}, {Key: "k2"}})
	require.NoError(t, err)

	*clock = clock.Add(9 * time.Second)
	for i := 0; i < 5; i++ {
		res, err := svc.Status(context.Background(), jobID)
		require.NoError(t, err)
		assert.Equal(t, StatusCompleted, res.Status)
		assert.Equal(t, 100, res.Progress)
	}

	assert.Equal(t, 1, catalog.processedCalls, "side effect must fire exactly once")
	assert.Equal(t, []string{"k1", "k2"}, catalog.processedKeys)
}

func TestStatus_RacingPollsFinalizeOnce(t *testing.T) {
	catalog := &fakeCatalog{}
	svc, _, clock := newTestService(catalog)

	jobID, err := svc.Start(context.Background(), []PhotoRef{{Key: "k"}})
	require.NoError(t, err)

	*clock = clock.Add(jobDuration)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := svc.Status(context.Background(), jobID)
			assert.NoError(t, err)
			assert.Equal(t, StatusCompleted, res.Status)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, catalog.processedCalls)
}

func TestStatus_UnknownJob(t *testing.T) {
	svc, _, _ := newTestService(&fakeCatalog{})

	_, err := svc.Status(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStatus_ExpiredJob(t *testing.T) {
	svc, _, clock := newTestService(&fakeCatalog{})

	jobID, err := svc.Start(context.Background(), []PhotoRef{{Key: "k"}})
	require.NoError(t, err)

	*clock = clock.Add(jobTTL + time.Second)
	_, err = svc.Status(context.Background(), jobID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProgressAt_Clamps(t *testing.T) {
	started := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, progressAt(started.Add(-time.Second), started))
	assert.Equal(t, 0, progressAt(started, started))
	assert.Equal(t, 12, progressAt(started.Add(time.Second), started))
	assert.Equal(t, 100, progressAt(started.Add(jobDuration), started))
	assert.Equal(t, 100, progressAt(started.Add(time.Hour), started))
}
