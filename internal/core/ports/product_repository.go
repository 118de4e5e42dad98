package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product aggregates.
type ProductRepository interface {
	// Add persists a new product listing.
	Add(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product by its unique identifier. The returned
	// aggregate carries the authoritative price and seller reference used
	// for order placement.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// DecrementStock atomically decrements the stock of a product by qty,
	// but only if the resulting stock would not go negative. The check and
	// the write are a single conditional update against the store. Called
	// inside the same transaction as the order insert so that both succeed
	// or both fail.
	//
	// Returns ObjectNotFoundError if the product does not exist, or
	// OutOfStockError if remaining stock is insufficient.
	DecrementStock(ctx context.Context, id kernel.UUID, qty int) error
}
