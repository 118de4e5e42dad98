// Package services provides domain services that implement business logic
// which doesn't naturally belong to a single aggregate root.
//
// The package includes:
//   - PricingPolicy: computes commission, delivery fee, buyer total, and
//     seller payout for an order at placement time
//
// Domain services are pure computation over domain values; they hold
// deployment configuration but never touch storage or transport.
package services
