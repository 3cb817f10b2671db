package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// finalizeScript performs the finalized check-and-set as a single atomic
// operation; without it two polls racing past the completion threshold could
// both observe finalized=0 and run the side effect twice.
var finalizeScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
  return -1
end
if redis.call('HGET', KEYS[1], 'finalized') == '1' then
  return 0
end
redis.call('HSET', KEYS[1], 'finalized', '1', 'status', ARGV[1])
return 1
`)

// RedisStore implements Store on Redis hashes. Record expiry is enforced by
// Redis itself via the TTL set at creation; no cleanup code exists.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a RedisStore backed by the given shared client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func jobKey(id string) string {
	return "jobs:" + id
}

// Create writes the job as a hash and sets its TTL in one transaction.
func (s *RedisStore) Create(ctx context.Context, job *Job, ttl time.Duration) error {
	keys, err := json.Marshal(job.Keys)
	if err != nil {
		return fmt.Errorf("marshal job keys: %w", err)
	}

	finalized := "0"
	if job.Finalized {
		finalized = "1"
	}

	key := jobKey(job.ID)
	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, key, map[string]interface{}{
		"started_at": job.StartedAt.UnixMilli(),
		"total":      job.Total,
		"status":     job.Status,
		"finalized":  finalized,
		"keys":       string(keys),
	})
	pipe.Expire(ctx, key, ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("create job %q: %w", job.ID, err)
	}
	return nil
}

// Get fetches a job hash; a missing or expired key yields ErrNotFound.
func (s *RedisStore) Get(ctx context.Context, id string) (*Job, error) {
	fields, err := s.client.HGetAll(ctx, jobKey(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("get job %q: %w", id, err)
	}
	if len(fields) == 0 {
		return nil, ErrNotFound
	}

	startedAtMs, err := strconv.ParseInt(fields["started_at"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("job %q has invalid started_at: %w", id, err)
	}
	total, err := strconv.Atoi(fields["total"])
	if err != nil {
		return nil, fmt.Errorf("job %q has invalid total: %w", id, err)
	}
	var keys []string
	if err := json.Unmarshal([]byte(fields["keys"]), &keys); err != nil {
		return nil, fmt.Errorf("job %q has invalid keys: %w", id, err)
	}

	return &Job{
		ID:        id,
		StartedAt: time.UnixMilli(startedAtMs).UTC(),
		Total:     total,
		Status:    fields["status"],
		Finalized: fields["finalized"] == "1",
		Keys:      keys,
	}, nil
}

// TryFinalize runs the CAS script; it reports true only for the winning caller.
func (s *RedisStore) TryFinalize(ctx context.Context, id string) (bool, error) {
	res, err := finalizeScript.Run(ctx, s.client, []string{jobKey(id)}, StatusCompleted).Int()
	if err != nil {
		return false, fmt.Errorf("finalize job %q: %w", id, err)
	}
	if res == -1 {
		return false, ErrNotFound
	}
	return res == 1, nil
}
