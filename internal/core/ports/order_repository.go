// Package ports defines repository and outbound adapter interfaces for the
// marketplace core. These interfaces establish contracts between the domain
// layer and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists a lifecycle transition of an existing order,
	// conditioned on the status the transition started from. If the stored
	// status no longer matches expectedStatus the update is refused with a
	// ConflictError, so concurrent transitions never overwrite each other.
	Update(ctx context.Context, aggregate *order.Order, expectedStatus order.Status) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Claim atomically assigns a rider to an order: it transitions the order
	// to InTransit and sets the rider, but only if the stored status is
	// Pending and no rider is set. The compare and the write are a single
	// conditional update against the store, never a read-then-write
	// sequence, so concurrent claims on the same order yield exactly one
	// winner.
	//
	// Returns the updated order on success. Returns ObjectNotFoundError if
	// the order does not exist, or ConflictError if the guard failed (the
	// job was already claimed or the order left the Pending state).
	Claim(ctx context.Context, id, riderID kernel.UUID) (*order.Order, error)
}
