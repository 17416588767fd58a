package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MAnojSHA5799/Candebrilla-web-1/internal/domain"
	"github.com/MAnojSHA5799/Candebrilla-web-1/internal/repository"
	"github.com/MAnojSHA5799/Candebrilla-web-1/pkg/database"
	apperrors "github.com/MAnojSHA5799/Candebrilla-web-1/pkg/errors"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := database.NewMockPool()
	require.NoError(t, err)
	return mock
}

func strPtr(s string) *string { return &s }

var now = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

var productCols = []string{
	"id", "name", "description", "price", "category", "size",
	"stock_quantity", "image_url", "created_at", "updated_at",
}

func sampleProduct() domain.Product {
	return domain.Product{
		ID:            "prod-1",
		Name:          "Lotus Studs",
		Description:   "Hand-painted brass studs",
		Price:         349.50,
		Category:      domain.CategoryEarrings,
		Size:          "One size",
		StockQuantity: 12,
		ImageURL:      strPtr("https://blob.example.com/lotus-studs.jpg"),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func productRow(p domain.Product) []any {
	return []any{
		p.ID, p.Name, p.Description, p.Price, p.Category, p.Size,
		p.StockQuantity, p.ImageURL, p.CreatedAt, p.UpdatedAt,
	}
}

func TestProductRepository_Create_Success(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewProductRepository(mock)

	p := sampleProduct()
	mock.ExpectExec("INSERT INTO products").
		WithArgs(
			p.ID, p.Name, p.Description, p.Price, p.Category, p.Size,
			p.StockQuantity, p.ImageURL, p.CreatedAt, p.UpdatedAt,
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.Create(context.Background(), &p)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_Create_ConnectionError(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewProductRepository(mock)

	p := sampleProduct()
	mock.ExpectExec("INSERT INTO products").
		WithArgs(
			p.ID, p.Name, p.Description, p.Price, p.Category, p.Size,
			p.StockQuantity, p.ImageURL, p.CreatedAt, p.UpdatedAt,
		).
		WillReturnError(errors.New("failed to connect to `host=localhost`: connection refused"))

	err := repo.Create(context.Background(), &p)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrStoreUnavailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_GetByID_Success(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewProductRepository(mock)

	p := sampleProduct()
	mock.ExpectQuery("SELECT .+ FROM products WHERE id").
		WithArgs(p.ID).
		WillReturnRows(
			pgxmock.NewRows(productCols).AddRow(productRow(p)...),
		)

	result, err := repo.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, result.ID)
	assert.Equal(t, p.Name, result.Name)
	assert.Equal(t, p.Price, result.Price)
	assert.Equal(t, p.Category, result.Category)
	assert.Equal(t, p.ImageURL, result.ImageURL)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_GetByID_NotFound(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewProductRepository(mock)

	mock.ExpectQuery("SELECT .+ FROM products WHERE id").
		WithArgs("missing-id").
		WillReturnError(pgx.ErrNoRows)

	result, err := repo.GetByID(context.Background(), "missing-id")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_List_All(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewProductRepository(mock)

	p1 := sampleProduct()
	p2 := sampleProduct()
	p2.ID = "prod-2"
	p2.Name = "Temple Ring"
	p2.Category = domain.CategoryRings

	mock.ExpectQuery("SELECT .+ FROM products .*ORDER BY created_at DESC, id ASC").
		WillReturnRows(
			pgxmock.NewRows(productCols).
				AddRow(productRow(p1)...).
				AddRow(productRow(p2)...),
		)

	products, err := repo.List(context.Background(), repository.ListFilter{})
	require.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, p1.ID, products[0].ID)
	assert.Equal(t, p2.ID, products[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_List_CategoryFilter(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewProductRepository(mock)

	p := sampleProduct()
	mock.ExpectQuery("SELECT .+ FROM products WHERE category").
		WithArgs(domain.CategoryEarrings).
		WillReturnRows(
			pgxmock.NewRows(productCols).AddRow(productRow(p)...),
		)

	products, err := repo.List(context.Background(), repository.ListFilter{
		Category: strPtr(domain.CategoryEarrings),
	})
	require.NoError(t, err)
	assert.Len(t, products, 1)
	assert.Equal(t, p.ID, products[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_List_PriceSort(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewProductRepository(mock)

	mock.ExpectQuery("SELECT .+ FROM products .*ORDER BY price ASC, id ASC").
		WillReturnRows(pgxmock.NewRows(productCols))

	products, err := repo.List(context.Background(), repository.ListFilter{
		Sort: domain.SortPriceLow,
	})
	require.NoError(t, err)
	assert.Equal(t, []domain.Product{}, products)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_List_Empty(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewProductRepository(mock)

	mock.ExpectQuery("SELECT .+ FROM products").
		WillReturnRows(pgxmock.NewRows(productCols))

	products, err := repo.List(context.Background(), repository.ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, []domain.Product{}, products)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_List_ConnectionError(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewProductRepository(mock)

	mock.ExpectQuery("SELECT .+ FROM products").
		WillReturnError(errors.New("read tcp 127.0.0.1:5432: connection reset by peer"))

	products, err := repo.List(context.Background(), repository.ListFilter{})
	assert.Nil(t, products)
	assert.ErrorIs(t, err, apperrors.ErrStoreUnavailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_Update_Success(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewProductRepository(mock)

	p := sampleProduct()
	mock.ExpectExec("UPDATE products").
		WithArgs(
			p.Name, p.Description, p.Price, p.Category, p.Size,
			p.StockQuantity, p.ImageURL, p.UpdatedAt, p.ID,
		).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.Update(context.Background(), &p)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_Update_NotFound(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewProductRepository(mock)

	p := sampleProduct()
	p.ID = "nonexistent-id"
	mock.ExpectExec("UPDATE products").
		WithArgs(
			p.Name, p.Description, p.Price, p.Category, p.Size,
			p.StockQuantity, p.ImageURL, p.UpdatedAt, p.ID,
		).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.Update(context.Background(), &p)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_Delete_Success(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewProductRepository(mock)

	mock.ExpectExec("DELETE FROM products WHERE").
		WithArgs("prod-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	err := repo.Delete(context.Background(), "prod-1")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_Delete_NotFound(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewProductRepository(mock)

	mock.ExpectExec("DELETE FROM products WHERE").
		WithArgs("missing-id").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.Delete(context.Background(), "missing-id")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
