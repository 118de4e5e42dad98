package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrGetOrderHistoryQueryIsNotConstructed = errors.New(
		"GetOrderHistoryQuery must be created via NewGetOrderHistoryQuery constructor",
	)
)

// GetOrderHistoryQuery retrieves the orders a user participated in, in the
// capacity of their role: buyers see orders they placed, sellers orders for
// their products, riders orders they delivered or are delivering. Admins see
// everything.
type GetOrderHistoryQuery struct {
	userID kernel.UUID
	role   user.Role

	guard guard.ConstructorGuard
}

// NewGetOrderHistoryQuery creates a query for the given user and role.
func NewGetOrderHistoryQuery(userID kernel.UUID, role user.Role) (GetOrderHistoryQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetOrderHistoryQuery{}, errs.NewValueIsInvalidErrorWithCause("userId", err)
	}
	if err := role.Validate(); err != nil {
		return GetOrderHistoryQuery{}, err
	}
	return GetOrderHistoryQuery{
		userID: userID,
		role:   role,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderHistoryQueryIsNotConstructed)
}

// UserID returns the caller's identifier.
func (q GetOrderHistoryQuery) UserID() kernel.UUID {
	return q.userID
}

// Role returns the caller's role.
func (q GetOrderHistoryQuery) Role() user.Role {
	return q.role
}

// GetOrderHistoryQueryResponse represents one order in a user's history.
// RiderID is nil while no rider has claimed the order.
type GetOrderHistoryQueryResponse struct {
	OrderID     kernel.UUID
	ProductName string
	Status      string
	RiderID     *kernel.UUID
	Price       int64
	DeliveryFee int64
	Commission  int64
	TotalAmount int64
	CreatedAt   time.Time
}
