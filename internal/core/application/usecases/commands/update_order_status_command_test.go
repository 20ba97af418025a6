package commands_test

import (
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateOrderStatusCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, order.Pending)
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, order.Pending, cmd.TargetStatus())
}

func TestNewUpdateOrderStatusCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewUpdateOrderStatusCommand(kernel.UUID{}, order.Pending)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewUpdateOrderStatusCommand_UnknownStatus(t *testing.T) {
	_, err := commands.NewUpdateOrderStatusCommand(kernel.NewUUID(), order.Unknown)
	require.Error(t, err)
}

func TestUpdateOrderStatusCommand_ZeroValueFailsValidation(t *testing.T) {
	cmd := commands.UpdateOrderStatusCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrUpdateOrderStatusCommandIsNotConstructed)
}
