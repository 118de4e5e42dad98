package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrGetProductsQueryIsNotConstructed = errors.New(
		"GetProductsQuery must be created via NewGetProductsQuery constructor",
	)
)

// GetProductsQuery retrieves the product catalog, optionally filtered to one
// seller's listings.
type GetProductsQuery struct {
	sellerID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetProductsQuery creates a query to list all products.
func NewGetProductsQuery() GetProductsQuery {
	return GetProductsQuery{guard: guard.NewConstructorGuard()}
}

// NewGetProductsBySellerQuery creates a query to list one seller's products.
func NewGetProductsBySellerQuery(sellerID kernel.UUID) (GetProductsQuery, error) {
	if err := sellerID.Validate(); err != nil {
		return GetProductsQuery{}, errs.NewValueIsInvalidErrorWithCause("sellerId", err)
	}
	return GetProductsQuery{
		sellerID: &sellerID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetProductsQueryIsNotConstructed)
}

// SellerID returns the optional seller filter, or nil for the full catalog.
func (q GetProductsQuery) SellerID() *kernel.UUID {
	return q.sellerID
}

// GetProductsQueryResponse represents one product listing.
type GetProductsQueryResponse struct {
	ID       kernel.UUID
	SellerID kernel.UUID
	Name     string
	Price    int64
	Stock    int
}
