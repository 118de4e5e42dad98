package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrClaimJobCommandIsNotConstructed = errors.New(
		"ClaimJobCommand must be created via NewClaimJobCommand constructor",
	)
)

// ClaimJobCommand represents a rider's request to claim an open delivery job.
// The rider identity and role come from the authenticated session.
type ClaimJobCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	riderID   kernel.UUID
	riderRole user.Role

	guard guard.ConstructorGuard
}

// NewClaimJobCommand creates a command to claim the given order for the
// given rider. The role is validated for shape here; the permission decision
// belongs to the handler.
func NewClaimJobCommand(orderID, riderID kernel.UUID, riderRole user.Role) (ClaimJobCommand, error) {
	cmd := ClaimJobCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setRiderID(riderID),
		cmd.setRiderRole(riderRole),
	); err != nil {
		return ClaimJobCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ClaimJobCommand) Validate() error {
	return c.guard.Validate(ErrClaimJobCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to claim.
func (c ClaimJobCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RiderID returns the authenticated rider's identifier.
func (c ClaimJobCommand) RiderID() kernel.UUID {
	return c.riderID
}

// RiderRole returns the authenticated caller's role.
func (c ClaimJobCommand) RiderRole() user.Role {
	return c.riderRole
}

func (c *ClaimJobCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("orderId", err)
	}
	c.orderID = id
	return nil
}

func (c *ClaimJobCommand) setRiderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("riderId", err)
	}
	c.riderID = id
	return nil
}

func (c *ClaimJobCommand) setRiderRole(role user.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.riderRole = role
	return nil
}
