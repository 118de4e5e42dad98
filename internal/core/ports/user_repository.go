package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user aggregates.
type UserRepository interface {
	// Add persists a new user. Returns ConflictError if the email is
	// already registered.
	Add(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// Update persists mutable account state (wallet balance, verified
	// flag). Returns ObjectNotFoundError if the user does not exist.
	Update(ctx context.Context, aggregate *user.User) error

	// GetByEmail retrieves a user by its lowercased email address.
	// Used by the login flow.
	GetByEmail(ctx context.Context, email string) (*user.User, error)
}
