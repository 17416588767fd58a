package repository

import (
	"context"

	"github.com/MAnojSHA5799/Candebrilla-web-1/internal/domain"
)

// ListFilter narrows and orders a product listing.
type ListFilter struct {
	// Category restricts the listing to a single category label. Nil means
	// no filter.
	Category *string

	// Sort is one of the domain sort keys. Empty defaults to featured.
	Sort string
}

// ProductRepository defines the interface for product persistence operations.
type ProductRepository interface {
	// Create inserts a new product into the store.
	Create(ctx context.Context, product *domain.Product) error

	// GetByID retrieves a product by its unique identifier.
	GetByID(ctx context.Context, id string) (*domain.Product, error)

	// List returns products matching the given filter in the requested order.
	List(ctx context.Context, filter ListFilter) ([]domain.Product, error)

	// Update modifies an existing product in the store.
	Update(ctx context.Context, product *domain.Product) error

	// Delete removes a product from the store by its identifier.
	Delete(ctx context.Context, id string) error
}
