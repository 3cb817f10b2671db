// Package photo manages persisted image records and their listing.
package photo

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/photoflow/service/internal/ingest"
)

// Image statuses.
const (
	StatusQueued    = "queued"
	StatusProcessed = "processed"
	StatusFailed    = "failed"
)

// Image is a persisted photo record.
type Image struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// Repository handles all image database operations.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new Repository with the given connection pool.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// AddQueued upserts the photos as queued images, keyed by storage key so that
// re-ingesting a key re-queues the existing row instead of duplicating it.
func (r *Repository) AddQueued(ctx context.Context, photos []ingest.QueuedPhoto) error {
	batch := &pgx.Batch{}
	for _, p := range photos {
		batch.Queue(
			`INSERT INTO images (storage_key, url, status)
			 VALUES ($1, $2, 'queued')
			 ON CONFLICT (storage_key)
			 DO UPDATE SET url = EXCLUDED.url, status = 'queued', updated_at = now()`,
			p.Key, p.URL,
		)
	}

	results := r.db.SendBatch(ctx, batch)
	defer results.Close()
	for range photos {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("upsert queued image: %w", err)
		}
	}
	return nil
}

// MarkProcessed bulk-transitions queued images to processed.
func (r *Repository) MarkProcessed(ctx context.Context, keys []string) (int64, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE images
		 SET status = 'processed', updated_at = now()
		 WHERE storage_key = ANY($1) AND status = 'queued'`,
		keys,
	)
	if err != nil {
		return 0, fmt.Errorf("mark images processed: %w", err)
	}
	return tag.RowsAffected(), nil
}

// List returns up to limit images with the given status, newest first, id as
// tiebreaker. cursor is the id of the first row of the page; an empty cursor
// starts at the newest row. The second return value is the cursor of the next
// page, or empty on the last page. An unknown cursor yields an empty page.
func (r *Repository) List(ctx context.Context, status string, limit int, cursor string) ([]Image, string, error) {
	var rows pgx.Rows
	var err error

	if cursor == "" {
		rows, err = r.db.Query(ctx,
			`SELECT id, url, status, created_at
			 FROM images
			 WHERE status = $1
			 ORDER BY created_at DESC, id DESC
			 LIMIT $2`,
			status, limit+1,
		)
	} else {
		rows, err = r.db.Query(ctx,
			`SELECT id, url, status, created_at
			 FROM images
			 WHERE status = $1
			   AND (created_at, id) <= (SELECT created_at, id FROM images WHERE id = $3)
			 ORDER BY created_at DESC, id DESC
			 LIMIT $2`,
			status, limit+1, cursor,
		)
	}
	if err != nil {
		return nil, "", fmt.Errorf("list images: %w", err)
	}
	defer rows.Close()

	images := make([]Image, 0, limit+1)
	for rows.Next() {
		var img Image
		if err := rows.Scan(&img.ID, &img.URL, &img.Status, &img.CreatedAt); err != nil {
			return nil, "", fmt.Errorf("scan image: %w", err)
		}
		images = append(images, img)
	}
	if err := rows.Err(); err != nil {
		return nil, "", fmt.Errorf("list images: %w", err)
	}

	var nextCursor string
	if len(images) > limit {
		nextCursor = images[limit].ID
		images = images[:limit]
	}
	return images, nextCursor, nil
}
