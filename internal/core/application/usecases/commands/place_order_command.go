package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
)

// PlaceOrderCommand represents a buyer's request to order one unit of a
// product.
//
// The buyer identity always comes from the authenticated session, never from
// the request body. The command deliberately carries no price or seller
// fields: both are resolved server-side from the authoritative product record
// to prevent tampering. The only financial input a caller may supply is an
// optional delivery-fee override.
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	buyerID     kernel.UUID
	productID   kernel.UUID
	deliveryFee *int64

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place an order.
// Validates both identities and the optional delivery-fee override.
func NewPlaceOrderCommand(buyerID, productID kernel.UUID, deliveryFee *int64) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBuyerID(buyerID),
		cmd.setProductID(productID),
		cmd.setDeliveryFee(deliveryFee),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// BuyerID returns the authenticated buyer's identifier.
func (c PlaceOrderCommand) BuyerID() kernel.UUID {
	return c.buyerID
}

// ProductID returns the identifier of the product being ordered.
func (c PlaceOrderCommand) ProductID() kernel.UUID {
	return c.productID
}

// DeliveryFee returns the optional delivery-fee override,
// or nil when the configured default applies.
func (c PlaceOrderCommand) DeliveryFee() *int64 {
	return c.deliveryFee
}

func (c *PlaceOrderCommand) setBuyerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("buyerId", err)
	}
	c.buyerID = id
	return nil
}

func (c *PlaceOrderCommand) setProductID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("productId", err)
	}
	c.productID = id
	return nil
}

func (c *PlaceOrderCommand) setDeliveryFee(fee *int64) error {
	if fee != nil && *fee < 0 {
		return errs.NewValueIsOutOfRangeError("deliveryFee", *fee, 0, int64(1)<<62)
	}
	c.deliveryFee = fee
	return nil
}
