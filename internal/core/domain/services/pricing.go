package services

import (
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

const (
	// basisPointsDenominator is the fixed-point scale for commission rates:
	// 10000 basis points = 100%.
	basisPointsDenominator = 10000

	// MaxCommissionBasisPoints caps the configurable commission rate at 100%.
	MaxCommissionBasisPoints = basisPointsDenominator
)

// ErrPricingPolicyIsNotConstructed is returned when a PricingPolicy was not
// created via NewPricingPolicy.
var ErrPricingPolicyIsNotConstructed = errs.NewValueIsRequiredError(
	"PricingPolicy must be created via NewPricingPolicy constructor")

// PricingPolicy is a domain service that computes the money figures of an
// order at placement time: platform commission, delivery fee, buyer total,
// and seller payout.
//
// The commission rate is held in basis points (e.g. 1000 = 10%) so that all
// arithmetic stays in integers; commission is rounded half-up to the nearest
// minor currency unit. The rate and the default delivery fee are deployment
// configuration passed in at construction, never hidden globals.
//
// Policy: the commission is deducted from the seller's payout. The buyer pays
// price plus delivery fee; the seller receives price minus commission; the
// rider receives the delivery fee.
type PricingPolicy struct {
	commissionBasisPoints int64
	defaultDeliveryFee    int64

	guard guard.ConstructorGuard
}

// NewPricingPolicy creates a pricing policy from deployment configuration.
// The commission rate must be within [0, 10000] basis points and the default
// delivery fee must not be negative.
func NewPricingPolicy(commissionBasisPoints, defaultDeliveryFee int64) (PricingPolicy, error) {
	if commissionBasisPoints < 0 || commissionBasisPoints > MaxCommissionBasisPoints {
		return PricingPolicy{}, errs.NewValueIsOutOfRangeError(
			"commissionBasisPoints", commissionBasisPoints, 0, MaxCommissionBasisPoints)
	}
	if defaultDeliveryFee < 0 {
		return PricingPolicy{}, errs.NewValueIsOutOfRangeError(
			"defaultDeliveryFee", defaultDeliveryFee, 0, int64(1)<<62)
	}

	return PricingPolicy{
		commissionBasisPoints: commissionBasisPoints,
		defaultDeliveryFee:    defaultDeliveryFee,
		guard:                 guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the policy was created through the constructor.
func (p PricingPolicy) Validate() error {
	return p.guard.Validate(ErrPricingPolicyIsNotConstructed)
}

// Quote holds the money figures computed for one order. All amounts are in
// minor currency units and are fixed once the order is persisted.
type Quote struct {
	Price           int64
	DeliveryFee     int64
	Commission      int64
	TotalAmount     int64
	NetSellerPayout int64
}

// Quote computes the order figures for the given authoritative product price.
// If deliveryFeeOverride is nil, the policy's default delivery fee applies.
func (p PricingPolicy) Quote(price int64, deliveryFeeOverride *int64) (Quote, error) {
	if err := p.Validate(); err != nil {
		return Quote{}, err
	}
	if price <= 0 {
		return Quote{}, errs.NewValueIsOutOfRangeError("price", price, 1, int64(1)<<62)
	}

	deliveryFee := p.defaultDeliveryFee
	if deliveryFeeOverride != nil {
		if *deliveryFeeOverride < 0 {
			return Quote{}, errs.NewValueIsOutOfRangeError(
				"deliveryFee", *deliveryFeeOverride, 0, int64(1)<<62)
		}
		deliveryFee = *deliveryFeeOverride
	}

	commission := p.Commission(price)

	return Quote{
		Price:           price,
		DeliveryFee:     deliveryFee,
		Commission:      commission,
		TotalAmount:     price + deliveryFee,
		NetSellerPayout: price - commission,
	}, nil
}

// Commission returns round(price × rate) in minor currency units,
// rounding half-up.
func (p PricingPolicy) Commission(price int64) int64 {
	return (price*p.commissionBasisPoints + basisPointsDenominator/2) / basisPointsDenominator
}

// DefaultDeliveryFee returns the configured flat delivery fee.
func (p PricingPolicy) DefaultDeliveryFee() int64 {
	return p.defaultDeliveryFee
}
