package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrCancelOrderCommandIsNotConstructed = errors.New(
		"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
	)
)

// CancelOrderCommand represents a request to terminate a Pending order before
// any rider claims it. Only the buyer who placed the order (or an admin) may
// cancel.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	callerID   kernel.UUID
	callerRole user.Role

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command to cancel the given order.
func NewCancelOrderCommand(orderID, callerID kernel.UUID, callerRole user.Role) (CancelOrderCommand, error) {
	cmd := CancelOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCallerID(callerID),
		cmd.setCallerRole(callerRole),
	); err != nil {
		return CancelOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being cancelled.
func (c CancelOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CallerID returns the authenticated caller's identifier.
func (c CancelOrderCommand) CallerID() kernel.UUID {
	return c.callerID
}

// CallerRole returns the authenticated caller's role.
func (c CancelOrderCommand) CallerRole() user.Role {
	return c.callerRole
}

func (c *CancelOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("orderId", err)
	}
	c.orderID = id
	return nil
}

func (c *CancelOrderCommand) setCallerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("callerId", err)
	}
	c.callerID = id
	return nil
}

func (c *CancelOrderCommand) setCallerRole(role user.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.callerRole = role
	return nil
}
