package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"garage-desk/internal/config"

	"github.com/google/uuid"
)

// ErrNotExist reports that the backend has no object under the given key.
// Delete flows treat it as a warning, not a failure.
var ErrNotExist = errors.New("storage: object does not exist")

// Store is the swappable byte backend behind the document table. The
// relational rows only carry the key; everything about where the bytes
// actually live is the backend's business.
type Store interface {
	Save(ctx context.Context, key string, r io.Reader) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
	URL(key string) string
}

// New selects the backend from configuration: local disk by default,
// Google Cloud Storage when STORAGE_PROVIDER=gcs.
func New(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.StorageProvider {
	case config.StorageProviderGCS:
		return NewGCS(ctx, cfg.GCSBucket)
	case config.StorageProviderLocal:
		return NewLocal(cfg.UploadDir)
	default:
		return nil, fmt.Errorf("storage: unknown provider %q", cfg.StorageProvider)
	}
}

// NewKey builds a collision-resistant storage key for an uploaded file,
// keeping the original extension so served files get a sensible MIME type.
func NewKey(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	return fmt.Sprintf("%d-%s%s", time.Now().UnixNano(), uuid.NewString()[:8], ext)
}
