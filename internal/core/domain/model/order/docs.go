// Package order provides the Order aggregate and its lifecycle state machine,
// the core of the marketplace backend.
//
// The package includes:
//   - Order: the aggregate root holding participants, amounts, and lifecycle
//   - Status: a state machine enforcing valid lifecycle transitions
//
// Key business rules:
//   - An order references exactly one buyer, one seller, and one product;
//     these references are immutable after creation
//   - Lifecycle: Pending -> InTransit -> Delivered, with Pending -> Cancelled
//     as the only early termination; Delivered and Cancelled are terminal
//   - At most one rider per order: the rider reference is set exactly once,
//     by the claim transition, and is non-nil iff status is past Pending
//   - Commission and total amount are computed at creation and never
//     recomputed; the seller payout is price minus commission, the rider
//     payout is the delivery fee
//
// The package follows Domain-Driven Design principles: private fields,
// validating constructors, and rehydration via RestoreOrder that re-checks
// invariants against persisted data.
package order
