package order

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory functions. This ensures all
// orders are properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// Order represents a marketplace order: one buyer buying one product from one
// seller, delivered by at most one rider. It is the aggregate root that
// manages the order lifecycle from placement through claim to delivery.
//
// Order follows these invariants:
//   - Buyer, seller, and product references are set at creation and immutable
//   - Rider reference is non-nil if and only if status has progressed past Pending
//   - Commission and total amount are computed once at creation and never
//     recomputed after persistence
//   - Creation time is immutable once set
//   - Status transitions follow the Status state machine
//
// An order is an append-only financial record: it is never deleted, only
// advanced through its lifecycle.
type Order struct {
	id        kernel.UUID
	buyerID   kernel.UUID
	sellerID  kernel.UUID
	productID kernel.UUID

	// riderID is the assigned rider's ID (nil until a rider claims the job)
	riderID *kernel.UUID

	// All amounts are in minor currency units.
	price       int64
	deliveryFee int64
	commission  int64
	totalAmount int64

	status    Status
	createdAt time.Time

	isConstructed bool
}

// NewOrder creates a new Order in the Pending state.
//
// The price must be the authoritative product price resolved server-side, and
// commission must come from the pricing policy; this constructor records the
// figures and derives totalAmount = price + deliveryFee. These amounts are
// fixed for the lifetime of the order.
func NewOrder(
	id, buyerID, sellerID, productID kernel.UUID,
	price, deliveryFee, commission int64,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setBuyerID(buyerID),
		o.setSellerID(sellerID),
		o.setProductID(productID),
		o.setAmounts(price, deliveryFee, commission),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	o.totalAmount = o.price + o.deliveryFee
	return o, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
//
// Unlike NewOrder, it accepts the persisted status, rider assignment, and
// total amount as-is: amounts are never recomputed after persistence. The
// rider/status consistency invariant is still enforced, so corrupt rows fail
// to rehydrate.
func RestoreOrder(
	id, buyerID, sellerID, productID kernel.UUID,
	riderID *kernel.UUID,
	price, deliveryFee, commission, totalAmount int64,
	status Status,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setBuyerID(buyerID),
		o.setSellerID(sellerID),
		o.setProductID(productID),
		o.setAmounts(price, deliveryFee, commission),
		o.setCreatedAt(createdAt),
		status.Validate(),
		status.ValidateCanHaveRider(riderID != nil),
	); err != nil {
		return nil, err
	}

	if riderID != nil {
		if err := riderID.Validate(); err != nil {
			return nil, err
		}
		rid := *riderID
		o.riderID = &rid
	}

	o.status = status
	o.totalAmount = totalAmount
	return o, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder or RestoreOrder. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// BuyerID returns the buyer who placed the order.
func (o *Order) BuyerID() kernel.UUID {
	return o.buyerID
}

// SellerID returns the seller of the ordered product.
func (o *Order) SellerID() kernel.UUID {
	return o.sellerID
}

// ProductID returns the ordered product.
func (o *Order) ProductID() kernel.UUID {
	return o.productID
}

// Rider returns the assigned rider's ID, or nil if the job is unclaimed.
func (o *Order) Rider() *kernel.UUID {
	return o.riderID
}

// Price returns the product price in minor currency units,
// as resolved from the product record at placement time.
func (o *Order) Price() int64 {
	return o.price
}

// DeliveryFee returns the delivery fee charged to the buyer.
func (o *Order) DeliveryFee() int64 {
	return o.deliveryFee
}

// Commission returns the platform's cut of the product price,
// computed once at creation.
func (o *Order) Commission() int64 {
	return o.commission
}

// TotalAmount returns price plus delivery fee,
// computed once at creation.
func (o *Order) TotalAmount() int64 {
	return o.totalAmount
}

// NetSellerPayout returns the amount due to the seller: the product price
// with the platform commission deducted. The delivery fee never touches the
// seller.
func (o *Order) NetSellerPayout() int64 {
	return o.price - o.commission
}

// RiderPayout returns the amount due to the rider for completing the
// delivery. It equals the delivery fee; the rider does not share the
// platform commission.
func (o *Order) RiderPayout() int64 {
	return o.deliveryFee
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the immutable creation time of the order.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Claim assigns the order to a rider and advances the status to InTransit.
//
// Business rules:
//   - The rider ID must be valid
//   - The order must be Pending with no rider assigned
//
// This in-memory guard mirrors the conditional update the order repository
// performs against the store; the repository is what makes concurrent claims
// yield exactly one winner.
func (o *Order) Claim(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}

	if o.riderID != nil {
		return errs.NewConflictError("order", o.id.String(), "job already claimed")
	}

	newStatus, err := o.status.Claim()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.riderID = &riderID
	return nil
}

// Complete marks the order as delivered. Only InTransit orders can be
// completed; Delivered is terminal.
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel terminates the order before delivery. Only Pending (unclaimed)
// orders can be cancelled; Cancelled is terminal.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setBuyerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("buyerId", err)
	}
	o.buyerID = id
	return nil
}

func (o *Order) setSellerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("sellerId", err)
	}
	o.sellerID = id
	return nil
}

func (o *Order) setProductID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("productId", err)
	}
	o.productID = id
	return nil
}

func (o *Order) setAmounts(price, deliveryFee, commission int64) error {
	if price <= 0 {
		return errs.NewValueIsOutOfRangeError("price", price, 1, int64(1)<<62)
	}
	if deliveryFee < 0 {
		return errs.NewValueIsOutOfRangeError("deliveryFee", deliveryFee, 0, int64(1)<<62)
	}
	if commission < 0 || commission > price {
		return errs.NewValueIsInvalidErrorWithCause("commission",
			fmt.Errorf("%d is not between 0 and price %d", commission, price))
	}

	o.price = price
	o.deliveryFee = deliveryFee
	o.commission = commission
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}
