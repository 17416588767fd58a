package storage

import (
	"context"
	"io"
)

// UploadInput describes a blob to be stored.
type UploadInput struct {
	FileName    string
	ContentType string
	Size        int64
	Data        io.Reader
}

// UploadResult holds the location of a stored blob.
type UploadResult struct {
	// URL is the public URL of the stored blob.
	URL string

	// Key identifies the blob within the store for later deletion.
	Key string
}

// Storage abstracts the blob store backing product images.
type Storage interface {
	// Upload stores a blob and returns its public URL.
	Upload(ctx context.Context, input *UploadInput) (*UploadResult, error)

	// Delete removes a blob by its key. Deleting a missing blob is not an
	// error.
	Delete(ctx context.Context, key string) error
}
