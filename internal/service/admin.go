package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/MAnojSHA5799/Candebrilla-web-1/internal/domain"
	"github.com/MAnojSHA5799/Candebrilla-web-1/internal/repository"
	"github.com/MAnojSHA5799/Candebrilla-web-1/internal/storage"
	apperrors "github.com/MAnojSHA5799/Candebrilla-web-1/pkg/errors"
)

// EventPublisher emits product lifecycle events. Publishing is
// best-effort: AdminService logs failures and never fails the operation
// over them.
type EventPublisher interface {
	PublishProductCreated(ctx context.Context, product *domain.Product) error
	PublishProductUpdated(ctx context.Context, product *domain.Product) error
	PublishProductDeleted(ctx context.Context, id string) error
}

// AdminService implements the write side of the storefront: product
// create, update, and delete, coordinating image uploads with the blob
// store.
type AdminService struct {
	repo     repository.ProductRepository
	store    storage.Storage
	producer EventPublisher
	logger   *slog.Logger
}

// NewAdminService creates a new admin service.
func NewAdminService(repo repository.ProductRepository, store storage.Storage, producer EventPublisher, logger *slog.Logger) *AdminService {
	return &AdminService{
		repo:     repo,
		store:    store,
		producer: producer,
		logger:   logger,
	}
}

// CreateProductInput holds the parameters for creating a product. Image
// carries raw bytes to upload; ImageURL attaches an already-uploaded blob
// (the two-step flow through the uploads endpoint). When both are set the
// uploaded bytes win.
type CreateProductInput struct {
	Name          string
	Description   string
	Price         float64
	Category      string
	Size          string
	StockQuantity int
	Image         *storage.UploadInput
	ImageURL      *string
}

// UpdateProductInput holds the parameters for updating a product. Nil
// fields keep their current value. An empty ImageURL clears the image.
type UpdateProductInput struct {
	Name          *string
	Description   *string
	Price         *float64
	Category      *string
	Size          *string
	StockQuantity *int
	Image         *storage.UploadInput
	ImageURL      *string
}

// CreateProduct validates the input, uploads the image when one is
// supplied, and persists the new product.
func (s *AdminService) CreateProduct(ctx context.Context, input *CreateProductInput) (*domain.Product, error) {
	if input.Name == "" {
		return nil, apperrors.InvalidInput("product name is required")
	}
	if input.Price < 0 {
		return nil, apperrors.InvalidInput("price must not be negative")
	}
	if !domain.IsValidCategory(input.Category) {
		return nil, apperrors.InvalidInput(fmt.Sprintf("unknown category: %q", input.Category))
	}
	if input.StockQuantity < 0 {
		return nil, apperrors.InvalidInput("stock quantity must not be negative")
	}

	var (
		imageURL *string
		imageKey string
	)
	switch {
	case input.Image != nil:
		result, err := s.store.Upload(ctx, input.Image)
		if err != nil {
			return nil, fmt.Errorf("upload product image: %w", err)
		}
		imageURL = &result.URL
		imageKey = result.Key
	case input.ImageURL != nil && *input.ImageURL != "":
		imageURL = input.ImageURL
	}

	now := time.Now().UTC()
	product := &domain.Product{
		ID:            uuid.New().String(),
		Name:          input.Name,
		Description:   input.Description,
		Price:         input.Price,
		Category:      input.Category,
		Size:          input.Size,
		StockQuantity: input.StockQuantity,
		ImageURL:      imageURL,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Create(ctx, product); err != nil {
		s.cleanupBlob(ctx, imageKey)
		return nil, fmt.Errorf("create product: %w", err)
	}

	if err := s.producer.PublishProductCreated(ctx, product); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish product.created event",
			slog.String("product_id", product.ID),
			slog.String("error", err.Error()),
		)
		// Do not fail the operation if event publishing fails.
	}

	s.logger.InfoContext(ctx, "product created",
		slog.String("product_id", product.ID),
		slog.String("category", product.Category),
	)

	return product, nil
}

// UpdateProduct loads the existing product, merges the patch, re-uploads
// the image only when new bytes are supplied, and persists the result.
func (s *AdminService) UpdateProduct(ctx context.Context, id string, input *UpdateProductInput) (*domain.Product, error) {
	if input.Name != nil && *input.Name == "" {
		return nil, apperrors.InvalidInput("product name must not be empty")
	}
	if input.Price != nil && *input.Price < 0 {
		return nil, apperrors.InvalidInput("price must not be negative")
	}
	if input.Category != nil && !domain.IsValidCategory(*input.Category) {
		return nil, apperrors.InvalidInput(fmt.Sprintf("unknown category: %q", *input.Category))
	}
	if input.StockQuantity != nil && *input.StockQuantity < 0 {
		return nil, apperrors.InvalidInput("stock quantity must not be negative")
	}

	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product by id: %w", err)
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Category != nil {
		product.Category = *input.Category
	}
	if input.Size != nil {
		product.Size = *input.Size
	}
	if input.StockQuantity != nil {
		product.StockQuantity = *input.StockQuantity
	}

	var imageKey string
	switch {
	case input.Image != nil:
		result, err := s.store.Upload(ctx, input.Image)
		if err != nil {
			return nil, fmt.Errorf("upload product image: %w", err)
		}
		product.ImageURL = &result.URL
		imageKey = result.Key
	case input.ImageURL != nil:
		if *input.ImageURL == "" {
			product.ImageURL = nil
		} else {
			product.ImageURL = input.ImageURL
		}
	}

	product.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, product); err != nil {
		s.cleanupBlob(ctx, imageKey)
		return nil, fmt.Errorf("update product: %w", err)
	}

	if err := s.producer.PublishProductUpdated(ctx, product); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish product.updated event",
			slog.String("product_id", product.ID),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "product updated",
		slog.String("product_id", product.ID),
	)

	return product, nil
}

// DeleteProduct removes a product. Its image, if any, stays in the blob
// store.
func (s *AdminService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	if err := s.producer.PublishProductDeleted(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish product.deleted event",
			slog.String("product_id", id),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "product deleted",
		slog.String("product_id", id),
	)

	return nil
}

// UploadImage stores a standalone blob and returns its public URL.
func (s *AdminService) UploadImage(ctx context.Context, input *storage.UploadInput) (string, error) {
	if input.FileName == "" {
		return "", apperrors.InvalidInput("file name is required")
	}

	result, err := s.store.Upload(ctx, input)
	if err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}

	return result.URL, nil
}

// cleanupBlob removes an orphaned blob after a failed row write. Best
// effort only.
func (s *AdminService) cleanupBlob(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := s.store.Delete(ctx, key); err != nil {
		s.logger.WarnContext(ctx, "failed to clean up orphaned blob",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
	}
}
