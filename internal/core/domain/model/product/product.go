// Package product provides the Product aggregate: a seller's listing with a
// price and a stock count.
//
// The aggregate holds listing data only. Stock-check-and-decrement is a
// storage-level conditional update (see the product repository), because it
// must be atomic with order insertion to avoid overselling under concurrent
// order placement.
package product

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through the NewProduct or RestoreProduct factory functions.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct constructor")

// Product represents a seller's listing.
//
// Invariants:
//   - Must have valid unique identifier and seller identifier
//   - Name must be non-empty
//   - Price is in minor currency units and must be positive
//   - Stock is never negative
type Product struct {
	id       kernel.UUID
	sellerID kernel.UUID
	name     string
	price    int64
	stock    int

	isConstructed bool
}

// NewProduct creates a new Product listing.
func NewProduct(id, sellerID kernel.UUID, name string, price int64, stock int) (*Product, error) {
	p := &Product{
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setSellerID(sellerID),
		p.setName(name),
		p.setPrice(price),
		p.setStock(stock),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct reconstructs a Product aggregate from persistent storage.
func RestoreProduct(id, sellerID kernel.UUID, name string, price int64, stock int) (*Product, error) {
	return NewProduct(id, sellerID, name, price, stock)
}

// Validate ensures the Product instance was properly constructed.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// IsEqual compares two products by their unique identifiers.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// SellerID returns the identifier of the seller who listed the product.
func (p *Product) SellerID() kernel.UUID {
	return p.sellerID
}

// Name returns the listing name.
func (p *Product) Name() string {
	return p.name
}

// Price returns the listing price in minor currency units. This is the
// authoritative price: order placement always reads it from here, never from
// the caller.
func (p *Product) Price() int64 {
	return p.price
}

// Stock returns the remaining stock count.
func (p *Product) Stock() int {
	return p.stock
}

// HasStock reports whether at least qty units remain.
func (p *Product) HasStock(qty int) bool {
	return qty > 0 && p.stock >= qty
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setSellerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("sellerId", err)
	}
	p.sellerID = id
	return nil
}

func (p *Product) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price int64) error {
	if price <= 0 {
		return errs.NewValueIsOutOfRangeError("price", price, 1, int64(1)<<62)
	}
	p.price = price
	return nil
}

func (p *Product) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsOutOfRangeError("stock", stock, 0, int(1)<<31)
	}
	p.stock = stock
	return nil
}
