package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlaceOrderCommand_ValidInput(t *testing.T) {
	buyerID := kernel.NewUUID()
	productID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(buyerID, productID, nil)
	require.NoError(t, err)
	assert.Equal(t, buyerID, cmd.BuyerID())
	assert.Equal(t, productID, cmd.ProductID())
	assert.Nil(t, cmd.DeliveryFee())
}

func TestNewPlaceOrderCommand_WithDeliveryFeeOverride(t *testing.T) {
	fee := int64(2500)
	cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), kernel.NewUUID(), &fee)
	require.NoError(t, err)
	require.NotNil(t, cmd.DeliveryFee())
	assert.Equal(t, int64(2500), *cmd.DeliveryFee())
}

func TestNewPlaceOrderCommand_InvalidBuyerID(t *testing.T) {
	_, err := commands.NewPlaceOrderCommand(kernel.UUID{}, kernel.NewUUID(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewPlaceOrderCommand_InvalidProductID(t *testing.T) {
	_, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), kernel.UUID{}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewPlaceOrderCommand_NegativeDeliveryFee(t *testing.T) {
	fee := int64(-1)
	_, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), kernel.NewUUID(), &fee)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestPlaceOrderCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.PlaceOrderCommand{}
	require.Error(t, cmd.Validate())
	assert.ErrorIs(t, cmd.Validate(), commands.ErrPlaceOrderCommandIsNotConstructed)
}
