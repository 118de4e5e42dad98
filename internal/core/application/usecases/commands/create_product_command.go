package commands

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrCreateProductCommandIsNotConstructed = errors.New(
		"CreateProductCommand must be created via NewCreateProductCommand constructor",
	)
)

// CreateProductCommand represents a seller's request to list a product.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	sellerID   kernel.UUID
	sellerRole user.Role
	name       string
	price      int64
	stock      int

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to list a new product. Price is
// in minor currency units.
func NewCreateProductCommand(
	sellerID kernel.UUID,
	sellerRole user.Role,
	name string,
	price int64,
	stock int,
) (CreateProductCommand, error) {
	cmd := CreateProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSellerID(sellerID),
		cmd.setSellerRole(sellerRole),
		cmd.setName(name),
		cmd.setPrice(price),
		cmd.setStock(stock),
	); err != nil {
		return CreateProductCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// SellerID returns the authenticated seller's identifier.
func (c CreateProductCommand) SellerID() kernel.UUID {
	return c.sellerID
}

// SellerRole returns the authenticated caller's role.
func (c CreateProductCommand) SellerRole() user.Role {
	return c.sellerRole
}

// Name returns the product name.
func (c CreateProductCommand) Name() string {
	return c.name
}

// Price returns the unit price in minor currency units.
func (c CreateProductCommand) Price() int64 {
	return c.price
}

// Stock returns the initial stock quantity.
func (c CreateProductCommand) Stock() int {
	return c.stock
}

func (c *CreateProductCommand) setSellerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("sellerId", err)
	}
	c.sellerID = id
	return nil
}

func (c *CreateProductCommand) setSellerRole(role user.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.sellerRole = role
	return nil
}

func (c *CreateProductCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *CreateProductCommand) setPrice(price int64) error {
	if price <= 0 {
		return errs.NewValueIsOutOfRangeError("price", price, 1, int64(1)<<62)
	}
	c.price = price
	return nil
}

func (c *CreateProductCommand) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsOutOfRangeError("stock", stock, 0, 1<<31)
	}
	c.stock = stock
	return nil
}
