// Package kernel contains shared value objects used across all domain
// aggregates. It currently provides the UUID identifier type, a validated
// wrapper over github.com/google/uuid whose zero value is invalid.
//
// Keeping identifier handling in one place ensures every aggregate references
// other aggregates through the same validated type, and keeps the google/uuid
// dependency out of domain signatures.
package kernel
