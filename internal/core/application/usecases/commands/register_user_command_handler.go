package commands

import (
	"context"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
)

// RegisterUserCommandHandler handles account registration. It hashes the
// password with bcrypt and relies on the repository's unique email constraint
// for duplicate detection.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
	logger     *slog.Logger
}

// NewRegisterUserCommandHandler creates a handler for account registrations.
func NewRegisterUserCommandHandler(uowFactory UserUoWFactory, logger *slog.Logger) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "register_user_handler"),
	}
}

// Handle processes the registration and returns the created user.
//
// Failure modes: ConflictError when the email is already registered.
func (h RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password()), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u, err := user.NewUser(kernel.NewUUID(), cmd.Name(), cmd.Email(), string(hash), cmd.Role())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.UserRepository().Add(ctx, u); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "user registered", "user_id", u.ID().String(), "role", u.Role().String())

	return u, nil
}
