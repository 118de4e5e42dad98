package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrCompleteDeliveryCommandIsNotConstructed = errors.New(
		"CompleteDeliveryCommand must be created via NewCompleteDeliveryCommand constructor",
	)
)

// CompleteDeliveryCommand represents a delivery confirmation for an
// in-transit order. The caller identity and role come from the authenticated
// session; only the assigned rider (or an admin) may confirm.
type CompleteDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	callerID   kernel.UUID
	callerRole user.Role

	guard guard.ConstructorGuard
}

// NewCompleteDeliveryCommand creates a command to confirm delivery of the
// given order.
func NewCompleteDeliveryCommand(orderID, callerID kernel.UUID, callerRole user.Role) (CompleteDeliveryCommand, error) {
	cmd := CompleteDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCallerID(callerID),
		cmd.setCallerRole(callerRole),
	); err != nil {
		return CompleteDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveryCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being completed.
func (c CompleteDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CallerID returns the authenticated caller's identifier.
func (c CompleteDeliveryCommand) CallerID() kernel.UUID {
	return c.callerID
}

// CallerRole returns the authenticated caller's role.
func (c CompleteDeliveryCommand) CallerRole() user.Role {
	return c.callerRole
}

func (c *CompleteDeliveryCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("orderId", err)
	}
	c.orderID = id
	return nil
}

func (c *CompleteDeliveryCommand) setCallerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("callerId", err)
	}
	c.callerID = id
	return nil
}

func (c *CompleteDeliveryCommand) setCallerRole(role user.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.callerRole = role
	return nil
}
