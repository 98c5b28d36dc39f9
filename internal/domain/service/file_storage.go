package service

import (
	"context"
	"io"
)

// FileStorage abstracts where uploaded images end up. The core only deals in
// returned URLs; the storage mechanics live behind this boundary.
type FileStorage interface {
	// Save writes the object under the given key and returns its public URL.
	Save(ctx context.Context, key string, contentType string, body io.Reader) (string, error)

	// Delete removes the object stored under the given key, if present.
	Delete(ctx context.Context, key string) error
}
