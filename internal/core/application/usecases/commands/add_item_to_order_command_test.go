package commands_test

import (
	"testing"

	"github.com/Smeltier/basic-delivery-system/internal/core/application/usecases/commands"
	"github.com/Smeltier/basic-delivery-system/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddItemToOrderCommand_ValidInput(t *testing.T) {
	accountID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()
	menuItemID := kernel.NewUUID()
	cmd, err := commands.NewAddItemToOrderCommand(accountID, restaurantID, menuItemID, 3)
	require.NoError(t, err)
	assert.Equal(t, accountID, cmd.AccountID())
	assert.Equal(t, restaurantID, cmd.RestaurantID())
	assert.Equal(t, menuItemID, cmd.MenuItemID())
	assert.Equal(t, 3, cmd.Quantity())
}

func TestNewAddItemToOrderCommand_InvalidQuantity(t *testing.T) {
	_, err := commands.NewAddItemToOrderCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrQuantityIsInvalid)
}

func TestNewAddItemToOrderCommand_UnconstructedIDs(t *testing.T) {
	_, err := commands.NewAddItemToOrderCommand(kernel.UUID{}, kernel.UUID{}, kernel.UUID{}, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestAddItemToOrderCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.AddItemToOrderCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrAddItemToOrderCommandIsNotConstructed)
}
