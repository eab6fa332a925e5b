// Package storage defines the interface for object storage operations.
// Two implementations are provided: MinIO (any S3-compatible provider) and
// Google Cloud Storage; the concrete type is chosen by configuration at startup.
package storage

import (
	"context"
	"errors"
	"io"
	"time"
)

// ErrObjectNotFound is returned when the named object does not exist in the bucket.
var ErrObjectNotFound = errors.New("storage: object not found")

// ObjectMetadata describes a stored object.
type ObjectMetadata struct {
	Key         string    `json:"key"`
	Size        int64     `json:"size"`
	ContentType string    `json:"contentType"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Store is the interface for the bucket-scoped object operations the gateway needs.
type Store interface {
	// Upload streams data to the store under the given key.
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	// List returns metadata for every object in the bucket.
	List(ctx context.Context) ([]ObjectMetadata, error)
	// Delete removes the object identified by key, returning ErrObjectNotFound
	// if it does not exist.
	Delete(ctx context.Context, key string) error
}
