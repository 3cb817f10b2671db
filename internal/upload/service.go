// Package upload issues presigned upload targets for direct-to-storage PUTs.
package upload

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/photoflow/service/internal/storage"
)

// presignTTL bounds how long an issued target stays usable.
const presignTTL = 10 * time.Minute

// MaxTargets is the maximum number of targets issued per request.
const MaxTargets = 200

// Target is one presigned upload slot: a storage key plus its PUT and GET URLs.
type Target struct {
	Key         string `json:"key"`
	PutURL      string `json:"putUrl"`
	GetURL      string `json:"getUrl"`
	ContentType string `json:"contentType"`
}

// extensionMap covers the content types the gallery accepts natively.
var extensionMap = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
	"image/heic": "heic",
	"image/heif": "heif",
}

var subtypePattern = regexp.MustCompile(`^[a-z0-9.+-]+$`)

// Service creates storage keys and signs upload targets.
type Service struct {
	store storage.Storage
}

// NewService creates a new upload Service.
func NewService(store storage.Storage) *Service {
	return &Service{store: store}
}

// CreateTargets derives one storage key per content type and presigns PUT and
// GET URLs for each. Signing runs concurrently; the returned slice preserves
// input order. Content types must be validated by the caller.
func (s *Service) CreateTargets(ctx context.Context, contentTypes []string) ([]Target, error) {
	targets := make([]Target, len(contentTypes))
	now := time.Now().UTC()

	g, ctx := errgroup.WithContext(ctx)
	for i, contentType := range contentTypes {
		key := buildKey(contentType, now)
		g.Go(func() error {
			putURL, err := s.store.PresignPut(ctx, key, presignTTL)
			if err != nil {
				return fmt.Errorf("presign put: %w", err)
			}
			getURL, err := s.store.PresignGet(ctx, key, presignTTL)
			if err != nil {
				return fmt.Errorf("presign get: %w", err)
			}
			targets[i] = Target{
				Key:         key,
				PutURL:      putURL,
				GetURL:      getURL,
				ContentType: contentType,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return targets, nil
}

// buildKey derives a date-partitioned storage key with a random unique suffix,
// e.g. "uploads/2026/08/30/8b9f...e1.jpg".
func buildKey(contentType string, now time.Time) string {
	base := fmt.Sprintf("uploads/%04d/%02d/%02d", now.Year(), now.Month(), now.Day())
	if ext := deriveExtension(contentType); ext != "" {
		return fmt.Sprintf("%s/%s.%s", base, uuid.NewString(), ext)
	}
	return fmt.Sprintf("%s/%s", base, uuid.NewString())
}

// deriveExtension maps a content type to a file extension. Unknown image
// subtypes are sanitized and used as-is; anything else yields no extension.
func deriveExtension(contentType string) string {
	if ext, ok := extensionMap[contentType]; ok {
		return ext
	}
	parts := strings.SplitN(contentType, "/", 2)
	if len(parts) != 2 || parts[1] == "" {
		return ""
	}
	sub := strings.ToLower(parts[1])
	if subtypePattern.MatchString(sub) {
		return sub
	}
	return ""
}
