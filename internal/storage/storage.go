// Package storage defines the interface for object storage operations.
// Swap implementations by changing the concrete type injected at startup —
// the MinIO implementation works with any S3-compatible provider.
package storage

import (
	"context"
	"time"
)

// Storage is the interface for issuing direct-upload URLs against the store.
type Storage interface {
	// PresignPut returns a time-limited URL that allows a client to PUT an
	// object under the given key without holding credentials.
	PresignPut(ctx context.Context, key string, ttl time.Duration) (string, error)
	// PresignGet returns a time-limited URL for reading the object at key.
	PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error)
	// PublicURL constructs the browser-accessible URL for a given key.
	PublicURL(key string) string
}
