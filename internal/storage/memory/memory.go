package memory

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"

	"github.com/MAnojSHA5799/Candebrilla-web-1/internal/storage"
)

// blobEntry stores an uploaded blob in memory.
type blobEntry struct {
	Key         string
	ContentType string
	Size        int64
	URL         string
}

// Storage implements storage.Storage using an in-memory map. It stores
// metadata only (no actual blob bytes) for development and testing.
type Storage struct {
	mu      sync.RWMutex
	blobs   map[string]*blobEntry
	baseURL string
}

// New creates a new in-memory storage instance.
func New(baseURL string) *Storage {
	return &Storage{
		blobs:   make(map[string]*blobEntry),
		baseURL: baseURL,
	}
}

// Upload records blob metadata in memory and returns a generated URL.
func (s *Storage) Upload(_ context.Context, input *storage.UploadInput) (*storage.UploadResult, error) {
	// Drain the reader so callers see the same consumption semantics as a
	// real blob store.
	n, err := io.Copy(io.Discard, input.Data)
	if err != nil {
		return nil, fmt.Errorf("read upload data: %w", err)
	}

	key := fmt.Sprintf("%s-%s", uuid.New().String(), input.FileName)
	url := fmt.Sprintf("%s/blobs/%s", s.baseURL, key)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.blobs[key] = &blobEntry{
		Key:         key,
		ContentType: input.ContentType,
		Size:        n,
		URL:         url,
	}

	return &storage.UploadResult{
		Key: key,
		URL: url,
	}, nil
}

// Delete removes blob metadata from memory. Missing keys are ignored.
func (s *Storage) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.blobs, key)
	return nil
}

// Len returns the number of stored blobs.
func (s *Storage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.blobs)
}
