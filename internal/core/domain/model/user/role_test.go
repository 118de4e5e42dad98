package user_test

import (
	"testing"

	"marketplace/internal/core/domain/model/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole_Validate(t *testing.T) {
	tests := []struct {
		name    string
		role    user.Role
		wantErr bool
	}{
		{"buyer is valid", user.RoleBuyer, false},
		{"seller is valid", user.RoleSeller, false},
		{"rider is valid", user.RoleRider, false},
		{"admin is valid", user.RoleAdmin, false},
		{"unknown is invalid", user.RoleUnknown, true},
		{"out of range is invalid", user.Role(99), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.role.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestRole_String(t *testing.T) {
	assert.Equal(t, "Buyer", user.RoleBuyer.String())
	assert.Equal(t, "Seller", user.RoleSeller.String())
	assert.Equal(t, "Rider", user.RoleRider.String())
	assert.Equal(t, "Admin", user.RoleAdmin.String())
	assert.Equal(t, "Unknown", user.RoleUnknown.String())
	assert.Equal(t, "Unknown", user.Role(42).String())
}

func TestRoleFromString(t *testing.T) {
	t.Run("round trips every valid role", func(t *testing.T) {
		for _, role := range []user.Role{user.RoleBuyer, user.RoleSeller, user.RoleRider, user.RoleAdmin} {
			parsed, err := user.RoleFromString(role.String())
			require.NoError(t, err)
			assert.Equal(t, role, parsed)
		}
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		_, err := user.RoleFromString("superuser")
		require.Error(t, err)
	})

	t.Run("rejects the Unknown label", func(t *testing.T) {
		_, err := user.RoleFromString("Unknown")
		require.Error(t, err)
	})
}

func TestRole_Permissions(t *testing.T) {
	t.Run("only riders and admins claim jobs", func(t *testing.T) {
		assert.True(t, user.RoleRider.CanClaimJobs())
		assert.True(t, user.RoleAdmin.CanClaimJobs())
		assert.False(t, user.RoleBuyer.CanClaimJobs())
		assert.False(t, user.RoleSeller.CanClaimJobs())
		assert.False(t, user.RoleUnknown.CanClaimJobs())
	})

	t.Run("only riders and admins view the job feed", func(t *testing.T) {
		assert.True(t, user.RoleRider.CanViewJobFeed())
		assert.True(t, user.RoleAdmin.CanViewJobFeed())
		assert.False(t, user.RoleBuyer.CanViewJobFeed())
	})

	t.Run("only sellers and admins manage products", func(t *testing.T) {
		assert.True(t, user.RoleSeller.CanManageProducts())
		assert.True(t, user.RoleAdmin.CanManageProducts())
		assert.False(t, user.RoleRider.CanManageProducts())
		assert.False(t, user.RoleBuyer.CanManageProducts())
	})
}
