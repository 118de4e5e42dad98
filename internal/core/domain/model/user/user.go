package user

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through the NewUser or RestoreUser factory functions.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser constructor")

// User represents a marketplace participant: a buyer, seller, rider, or admin.
//
// User follows these invariants:
//   - Must have a valid unique identifier
//   - Name and email must be non-empty; email is stored lowercased
//   - Role must be one of the closed Role set
//   - Wallet balance is kept in minor currency units and never negative
//
// Only identity and role matter to the order lifecycle; the remaining fields
// exist for the registration/login surface and payout bookkeeping.
type User struct {
	id           kernel.UUID
	name         string
	email        string
	passwordHash string
	role         Role
	balance      int64
	verified     bool

	isConstructed bool
}

// NewUser creates a new User with a zero wallet balance and unverified status.
// The password hash must already be computed by the caller (the domain never
// sees plaintext passwords).
func NewUser(id kernel.UUID, name, email, passwordHash string, role Role) (*User, error) {
	u := &User{
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setName(name),
		u.setEmail(email),
		u.setPasswordHash(passwordHash),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser reconstructs a User aggregate from persistent storage,
// including wallet balance and verification status.
func RestoreUser(
	id kernel.UUID,
	name, email, passwordHash string,
	role Role,
	balance int64,
	verified bool,
) (*User, error) {
	u := &User{
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setName(name),
		u.setEmail(email),
		u.setPasswordHash(passwordHash),
		u.setRole(role),
		u.setBalance(balance),
	); err != nil {
		return nil, err
	}

	u.verified = verified
	return u, nil
}

// Validate ensures the User instance was properly constructed.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// IsEqual compares two users by their unique identifiers.
func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Name returns the user's display name.
func (u *User) Name() string {
	return u.name
}

// Email returns the user's lowercased email address.
func (u *User) Email() string {
	return u.email
}

// PasswordHash returns the stored password hash.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// Role returns the user's role.
func (u *User) Role() Role {
	return u.role
}

// Balance returns the wallet balance in minor currency units.
func (u *User) Balance() int64 {
	return u.balance
}

// Verified reports whether the account has been verified.
func (u *User) Verified() bool {
	return u.verified
}

// Credit increases the wallet balance by the given amount.
// Used to book seller payouts and rider delivery fees.
func (u *User) Credit(amount int64) error {
	if amount <= 0 {
		return errs.NewValueIsOutOfRangeError("amount", amount, 1, int64(1)<<62)
	}
	u.balance += amount
	return nil
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	u.name = name
	return nil
}

func (u *User) setEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidError("email")
	}
	u.email = email
	return nil
}

func (u *User) setPasswordHash(hash string) error {
	if hash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	u.passwordHash = hash
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}

func (u *User) setBalance(balance int64) error {
	if balance < 0 {
		return errs.NewValueIsOutOfRangeError("balance", balance, 0, int64(1)<<62)
	}
	u.balance = balance
	return nil
}
