package storage

import (
	"context"
	"io"
)

// ObjectStorage stores named binary blobs under a logical folder.
type ObjectStorage interface {
	// Upload stores the content and returns a durable retrieval URL.
	Upload(ctx context.Context, content io.Reader, folder string, name string) (url string, err error)
	// Delete removes a stored blob. Callers may treat failures as best-effort.
	Delete(ctx context.Context, folder string, name string) error
}
