package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/MAnojSHA5799/Candebrilla-web-1/internal/domain"
	"github.com/MAnojSHA5799/Candebrilla-web-1/internal/repository"
	"github.com/MAnojSHA5799/Candebrilla-web-1/pkg/database"
	apperrors "github.com/MAnojSHA5799/Candebrilla-web-1/pkg/errors"
)

const productColumns = "id, name, description, price, category, size, stock_quantity, image_url, created_at, updated_at"

// ProductRepository implements repository.ProductRepository using PostgreSQL.
type ProductRepository struct {
	db database.DBTX
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(db database.DBTX) *ProductRepository {
	return &ProductRepository{db: db}
}

// Create inserts a new product into the database.
func (r *ProductRepository) Create(ctx context.Context, p *domain.Product) error {
	query := `
		INSERT INTO products (id, name, description, price, category, size, stock_quantity, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.Exec(ctx, query,
		p.ID,
		p.Name,
		p.Description,
		p.Price,
		p.Category,
		p.Size,
		p.StockQuantity,
		p.ImageURL,
		p.CreatedAt,
		p.UpdatedAt,
	)
	if err != nil {
		if database.IsConnectionError(err) {
			return apperrors.StoreUnavailable(err)
		}
		return fmt.Errorf("insert product: %w", err)
	}

	return nil
}

// GetByID retrieves a product by its ID.
func (r *ProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM products
		WHERE id = $1`, productColumns)

	var p domain.Product
	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Price,
		&p.Category,
		&p.Size,
		&p.StockQuantity,
		&p.ImageURL,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("product", id)
		}
		if database.IsConnectionError(err) {
			return nil, apperrors.StoreUnavailable(err)
		}
		return nil, fmt.Errorf("scan product: %w", err)
	}

	return &p, nil
}

// List returns products matching the given filter in the requested order.
func (r *ProductRepository) List(ctx context.Context, filter repository.ListFilter) ([]domain.Product, error) {
	var (
		whereClause string
		args        []any
	)

	if filter.Category != nil {
		whereClause = "WHERE category = $1"
		args = append(args, *filter.Category)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM products
		%s
		ORDER BY %s`, productColumns, whereClause, orderClause(filter.Sort))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		if database.IsConnectionError(err) {
			return nil, apperrors.StoreUnavailable(err)
		}
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Description,
			&p.Price,
			&p.Category,
			&p.Size,
			&p.StockQuantity,
			&p.ImageURL,
			&p.CreatedAt,
			&p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		if database.IsConnectionError(err) {
			return nil, apperrors.StoreUnavailable(err)
		}
		return nil, fmt.Errorf("iterate product rows: %w", err)
	}

	if products == nil {
		products = []domain.Product{}
	}

	return products, nil
}

// Update modifies an existing product in the database.
func (r *ProductRepository) Update(ctx context.Context, p *domain.Product) error {
	query := `
		UPDATE products
		SET name = $1, description = $2, price = $3, category = $4, size = $5,
		    stock_quantity = $6, image_url = $7, updated_at = $8
		WHERE id = $9`

	ct, err := r.db.Exec(ctx, query,
		p.Name,
		p.Description,
		p.Price,
		p.Category,
		p.Size,
		p.StockQuantity,
		p.ImageURL,
		p.UpdatedAt,
		p.ID,
	)
	if err != nil {
		if database.IsConnectionError(err) {
			return apperrors.StoreUnavailable(err)
		}
		return fmt.Errorf("update product: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("product", p.ID)
	}

	return nil
}

// Delete removes a product from the database by its ID.
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM products WHERE id = $1`

	ct, err := r.db.Exec(ctx, query, id)
	if err != nil {
		if database.IsConnectionError(err) {
			return apperrors.StoreUnavailable(err)
		}
		return fmt.Errorf("delete product: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("product", id)
	}

	return nil
}

// orderClause maps a sort key onto a SQL ORDER BY expression. Ties always
// break by identifier ascending so listings are deterministic.
func orderClause(sort string) string {
	switch sort {
	case domain.SortPriceLow:
		return "price ASC, id ASC"
	case domain.SortPriceHigh:
		return "price DESC, id ASC"
	case domain.SortNewest:
		return "created_at DESC, id ASC"
	default:
		// Featured keeps the store's natural newest-first order.
		return "created_at DESC, id ASC"
	}
}
