package ports

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/order"
)

// OrderChangedEvent describes a committed order lifecycle transition. It is
// published to the message broker after the transaction commits so that
// downstream consumers (analytics, reconciliation) can follow order state.
type OrderChangedEvent struct {
	OrderID string    `json:"orderId"`
	Status  string    `json:"status"`
	RiderID string    `json:"riderId,omitempty"`
	At      time.Time `json:"at"`
}

// NewOrderChangedEvent builds the event for an order's current state.
func NewOrderChangedEvent(o *order.Order, at time.Time) OrderChangedEvent {
	event := OrderChangedEvent{
		OrderID: o.ID().String(),
		Status:  o.Status().String(),
		At:      at,
	}
	if rider := o.Rider(); rider != nil {
		event.RiderID = rider.String()
	}
	return event
}

// OrderEventPublisher publishes order lifecycle events. Publishing is
// best-effort: command handlers log failures and never fail the request over
// a broker outage.
type OrderEventPublisher interface {
	PublishOrderChanged(ctx context.Context, event OrderChangedEvent) error
}
