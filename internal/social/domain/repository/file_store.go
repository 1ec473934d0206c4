package repository

import (
	"context"
	"io"
)

// FileStore is the port for binary media storage.
type FileStore interface {
	// Upload stores content and returns the new file ID.
	Upload(ctx context.Context, content io.Reader, contentType string) (string, error)
	// PreviewURL derives a display URL for a stored file with the service's
	// fixed preview rendition parameters.
	PreviewURL(fileID string) string
	// Delete removes a stored file by ID.
	Delete(ctx context.Context, fileID string) error
}
