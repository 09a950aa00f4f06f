package commands

import (
	"errors"

	"github.com/Smeltier/basic-delivery-system/internal/core/domain/model/kernel"
	"github.com/Smeltier/basic-delivery-system/internal/pkg/guard"
)

var (
	ErrAddItemToOrderCommandIsNotConstructed = errors.New(
		"AddItemToOrderCommand must be created via NewAddItemToOrderCommand constructor",
	)
	ErrQuantityIsInvalid = errors.New("quantity must be greater than 0")
)

// AddItemToOrderCommand represents a client's request to put a menu item into
// their draft order at a restaurant. A draft is opened on first use.
type AddItemToOrderCommand struct { //nolint:recvcheck //using for validation
	accountID    kernel.UUID
	restaurantID kernel.UUID
	menuItemID   kernel.UUID
	quantity     int

	guard guard.ConstructorGuard
}

// NewAddItemToOrderCommand creates a command to add a menu item to the
// account's draft at the restaurant.
func NewAddItemToOrderCommand(
	accountID kernel.UUID,
	restaurantID kernel.UUID,
	menuItemID kernel.UUID,
	quantity int,
) (AddItemToOrderCommand, error) {
	command := AddItemToOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setAccountID(accountID),
		command.setRestaurantID(restaurantID),
		command.setMenuItemID(menuItemID),
		command.setQuantity(quantity),
	); err != nil {
		return AddItemToOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AddItemToOrderCommand) Validate() error {
	return c.guard.Validate(ErrAddItemToOrderCommandIsNotConstructed)
}

// AccountID returns the ordering account's identifier.
func (c AddItemToOrderCommand) AccountID() kernel.UUID {
	return c.accountID
}

// RestaurantID returns the restaurant's identifier.
func (c AddItemToOrderCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// MenuItemID returns the identifier of the menu item to add.
func (c AddItemToOrderCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}

// Quantity returns the number of units to add. Always positive.
func (c AddItemToOrderCommand) Quantity() int {
	return c.quantity
}

func (c *AddItemToOrderCommand) setAccountID(accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return err
	}

	c.accountID = accountID
	return nil
}

func (c *AddItemToOrderCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *AddItemToOrderCommand) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}

	c.menuItemID = menuItemID
	return nil
}

func (c *AddItemToOrderCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}
