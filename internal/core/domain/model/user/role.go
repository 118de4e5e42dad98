package user

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Role represents the closed set of roles a marketplace participant can have.
// Every permission check in the application switches on this type, never on
// free-form strings.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleBuyer places orders and pays price plus delivery fee.
	RoleBuyer

	// RoleSeller lists products and receives the net payout.
	RoleSeller

	// RoleRider claims open delivery jobs and receives the delivery fee.
	RoleRider

	// RoleAdmin may perform any role-guarded operation.
	RoleAdmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown: "Unknown",
		RoleBuyer:   "Buyer",
		RoleSeller:  "Seller",
		RoleRider:   "Rider",
		RoleAdmin:   "Admin",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleBuyer:  "Buyer",
		RoleSeller: "Seller",
		RoleRider:  "Rider",
		RoleAdmin:  "Admin",
	}
}

// RoleFromString parses a role name as produced by String.
// Returns an error for anything outside the closed set.
func RoleFromString(s string) (Role, error) {
	for role, name := range getValidRoleStrings() {
		if name == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid role", s))
}

// Validate checks that the Role is one of the valid values.
// RoleUnknown (0) and any other values are invalid.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the human-readable name of the role. It implements
// fmt.Stringer and is safe to call on any Role value, including invalid ones.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}

// CanClaimJobs reports whether the role may claim open delivery jobs.
func (r Role) CanClaimJobs() bool {
	switch r {
	case RoleRider, RoleAdmin:
		return true
	case RoleUnknown, RoleBuyer, RoleSeller:
		return false
	default:
		return false
	}
}

// CanViewJobFeed reports whether the role may read the open job feed.
func (r Role) CanViewJobFeed() bool {
	switch r {
	case RoleRider, RoleAdmin:
		return true
	case RoleUnknown, RoleBuyer, RoleSeller:
		return false
	default:
		return false
	}
}

// CanManageProducts reports whether the role may create or modify product listings.
func (r Role) CanManageProducts() bool {
	switch r {
	case RoleSeller, RoleAdmin:
		return true
	case RoleUnknown, RoleBuyer, RoleRider:
		return false
	default:
		return false
	}
}
