package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/MAnojSHA5799/Candebrilla-web-1/internal/domain"
	"github.com/MAnojSHA5799/Candebrilla-web-1/internal/repository"
	apperrors "github.com/MAnojSHA5799/Candebrilla-web-1/pkg/errors"
)

// CatalogService implements the read side of the storefront: product
// listings, product detail, and category summaries.
type CatalogService struct {
	repo   repository.ProductRepository
	logger *slog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(repo repository.ProductRepository, logger *slog.Logger) *CatalogService {
	return &CatalogService{
		repo:   repo,
		logger: logger,
	}
}

// ListProducts returns products filtered by category and ordered by the
// given sort key. An empty category or the "All Products" sentinel lists
// the whole catalog. An empty sort defaults to featured.
func (s *CatalogService) ListProducts(ctx context.Context, category, sort string) ([]domain.Product, error) {
	if sort == "" {
		sort = domain.SortFeatured
	}
	if !domain.IsValidSort(sort) {
		return nil, apperrors.InvalidInput(fmt.Sprintf("unknown sort key: %q", sort))
	}

	filter := repository.ListFilter{Sort: sort}
	if category != "" && category != domain.CategoryAllProducts {
		if !domain.IsValidCategory(category) {
			return nil, apperrors.InvalidInput(fmt.Sprintf("unknown category: %q", category))
		}
		filter.Category = &category
	}

	products, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	return products, nil
}

// GetProduct retrieves a product by its ID.
func (s *CatalogService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product by id: %w", err)
	}
	return product, nil
}

// Categories returns one summary per category present in the catalog,
// recomputed from the current product set on every call.
func (s *CatalogService) Categories(ctx context.Context) ([]domain.CategorySummary, error) {
	products, err := s.repo.List(ctx, repository.ListFilter{Sort: domain.SortFeatured})
	if err != nil {
		return nil, fmt.Errorf("list products for summaries: %w", err)
	}

	summaries := domain.GroupByCategory(products)
	if summaries == nil {
		summaries = []domain.CategorySummary{}
	}

	return summaries, nil
}
