package blob

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/MAnojSHA5799/Candebrilla-web-1/internal/storage"
	apperrors "github.com/MAnojSHA5799/Candebrilla-web-1/pkg/errors"
	"github.com/MAnojSHA5799/Candebrilla-web-1/pkg/httpclient"
)

// Config holds blob store client configuration.
type Config struct {
	// Endpoint is the base URL of the blob store API.
	Endpoint string

	// Token is the bearer token authorizing uploads and deletes.
	Token string
}

// Storage implements storage.Storage against an HTTP blob store. Uploads
// PUT the raw bytes to <endpoint>/<key> and the store answers with a JSON
// body carrying the public URL.
type Storage struct {
	cfg    Config
	client *httpclient.CircuitBreakerClient
	logger *slog.Logger
}

// New creates a new blob store client.
func New(cfg Config, client *httpclient.CircuitBreakerClient, logger *slog.Logger) *Storage {
	return &Storage{
		cfg:    cfg,
		client: client,
		logger: logger,
	}
}

// uploadResponse is the blob store's reply to a successful upload.
type uploadResponse struct {
	URL string `json:"url"`
}

// Upload sends the blob to the store and returns its public URL.
func (s *Storage) Upload(ctx context.Context, input *storage.UploadInput) (*storage.UploadResult, error) {
	if s.cfg.Token == "" {
		return nil, apperrors.UploadFailed(fmt.Errorf("blob store token is not configured"))
	}

	key := fmt.Sprintf("%s-%s", uuid.New().String(), input.FileName)

	req, err := http.NewRequestWithContext(ctx, http.MethodPut,
		s.cfg.Endpoint+"/"+url.PathEscape(key), input.Data)
	if err != nil {
		return nil, fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.cfg.Token)
	if input.ContentType != "" {
		req.Header.Set("Content-Type", input.ContentType)
	}
	if input.Size > 0 {
		req.ContentLength = input.Size
	}

	resp, err := s.client.Do(ctx, req)
	if err != nil {
		return nil, apperrors.UploadFailed(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apperrors.UploadFailed(fmt.Errorf("blob store returned status %d", resp.StatusCode))
	}

	var ur uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&ur); err != nil {
		return nil, apperrors.UploadFailed(fmt.Errorf("decode upload response: %w", err))
	}
	if ur.URL == "" {
		return nil, apperrors.UploadFailed(fmt.Errorf("blob store response missing url"))
	}

	return &storage.UploadResult{
		URL: ur.URL,
		Key: key,
	}, nil
}

// Delete removes a blob from the store. Missing blobs are ignored.
func (s *Storage) Delete(ctx context.Context, key string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete,
		s.cfg.Endpoint+"/"+url.PathEscape(key), nil)
	if err != nil {
		return fmt.Errorf("build delete request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.cfg.Token)

	resp, err := s.client.Do(ctx, req)
	if err != nil {
		return fmt.Errorf("delete blob %s: %w", key, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode == http.StatusNotFound {
		return nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("delete blob %s: status %d", key, resp.StatusCode)
	}

	return nil
}
