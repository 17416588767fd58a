package domain

import (
	"time"
)

// Sort key constants for catalog listings.
const (
	SortFeatured  = "featured"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortNewest    = "newest"
)

// Product represents a jewelry product in the catalog.
type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Price         float64   `json:"price"`
	Category      string    `json:"category"`
	Size          string    `json:"size"`
	StockQuantity int       `json:"stock_quantity"`
	ImageURL      *string   `json:"image_url,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ValidSorts returns the set of valid catalog sort keys.
func ValidSorts() []string {
	return []string{SortFeatured, SortPriceLow, SortPriceHigh, SortNewest}
}

// IsValidSort checks whether the given sort string is a valid sort key.
func IsValidSort(sort string) bool {
	for _, s := range ValidSorts() {
		if s == sort {
			return true
		}
	}
	return false
}
