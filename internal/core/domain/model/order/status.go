package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a state
// machine with defined transitions so orders always follow the correct
// business workflow.
//
// State transitions:
//
//	Pending ──> InTransit ──> Delivered
//	   │
//	   └──────> Cancelled
//
// Delivered and Cancelled are terminal: no transition is defined out of them.
// Status is a value object that validates transitions and provides string
// representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is placed.
	// Pending orders with no rider form the open job feed.
	Pending

	// InTransit indicates a rider has claimed the order and the
	// delivery is underway. Entered exactly once, by a successful claim.
	InTransit

	// Delivered indicates the order was delivered. Terminal.
	Delivered

	// Cancelled indicates the order was terminated before a rider
	// claimed it. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		InTransit: "InTransit",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		InTransit: "InTransit",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

// Validate checks if the Status value is one of the valid lifecycle states.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status. It implements
// fmt.Stringer and is safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transition is defined out of the status.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// ValidateClaim checks whether a rider may claim an order in this status
// without performing the transition. Only Pending orders can be claimed.
func (s Status) ValidateClaim() error {
	if s != Pending {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to claim", s.String()))
	}
	return nil
}

// ValidateCanHaveRider validates the consistency between order status and
// rider assignment: a rider reference is non-nil if and only if the status
// has progressed past Pending into delivery (InTransit or Delivered).
// Cancelled orders never had a rider, because cancellation is only possible
// from the unclaimed Pending state.
func (s Status) ValidateCanHaveRider(rider bool) error {
	if rider && s != InTransit && s != Delivered {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to have a rider", s.String()))
	}

	if !rider && (s == InTransit || s == Delivered) {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to have no rider", s.String()))
	}

	return nil
}

// Claim transitions the status to InTransit.
//
// Valid transitions:
//   - Pending -> InTransit (rider claims the job)
//
// Returns (0, error) if the transition is not allowed from the current status.
func (s Status) Claim() (Status, error) {
	if err := s.ValidateClaim(); err != nil {
		return 0, err
	}

	return InTransit, nil
}

// Complete transitions the status to Delivered.
//
// Valid transitions:
//   - InTransit -> Delivered (delivery confirmation)
//
// Returns (0, error) if the transition is not allowed from the current status.
func (s Status) Complete() (Status, error) {
	if s != InTransit {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to complete", s.String()))
	}

	return Delivered, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled (early termination before any rider claims)
//
// Returns (0, error) if the transition is not allowed from the current status.
func (s Status) Cancel() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to cancel", s.String()))
	}

	return Cancelled, nil
}
