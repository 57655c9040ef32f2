package storage

import (
	"context"
	"io"
)

// FileStorage is the opaque object-storage collaborator: it accepts
// file bytes and hands back a public URL.
type FileStorage interface {
	// Upload stores a file under path and returns the stored path/key
	Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error)

	// Delete removes a file
	Delete(ctx context.Context, path string) error

	// GetURL returns the public URL for a stored path
	GetURL(ctx context.Context, path string) (string, error)
}
