package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClaimJobCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	riderID := kernel.NewUUID()
	cmd, err := commands.NewClaimJobCommand(orderID, riderID, user.RoleRider)
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, riderID, cmd.RiderID())
	assert.Equal(t, user.RoleRider, cmd.RiderRole())
}

func TestNewClaimJobCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewClaimJobCommand(kernel.UUID{}, kernel.NewUUID(), user.RoleRider)
	require.Error(t, err)
}

func TestNewClaimJobCommand_InvalidRiderID(t *testing.T) {
	_, err := commands.NewClaimJobCommand(kernel.NewUUID(), kernel.UUID{}, user.RoleRider)
	require.Error(t, err)
}

func TestNewClaimJobCommand_UnknownRole(t *testing.T) {
	_, err := commands.NewClaimJobCommand(kernel.NewUUID(), kernel.NewUUID(), user.RoleUnknown)
	require.Error(t, err)
}
