package storage

import (
	"context"
	"io"
)

// Storage abstracts saving and deleting uploaded site assets (project
// images, avatars, the resume PDF). The local filesystem implementation
// can be swapped for S3-compatible object storage.
type Storage interface {
	// Save stores the file under key (a unique path like
	// "projects/<uuid>.jpg") and returns its public URL.
	Save(ctx context.Context, key string, data io.Reader, contentType string) (url string, err error)

	// Delete removes the file stored under key.
	Delete(ctx context.Context, key string) error
}
