package commands

import (
	"errors"

	"github.com/Smeltier/basic-delivery-system/internal/core/domain/model/kernel"
	"github.com/Smeltier/basic-delivery-system/internal/pkg/guard"
)

var ErrDecreaseOrderItemCommandIsNotConstructed = errors.New(
	"DecreaseOrderItemCommand must be created via NewDecreaseOrderItemCommand constructor",
)

// DecreaseOrderItemCommand represents a request to lower the quantity of a
// line on an order, for example when a dish runs out during preparation.
type DecreaseOrderItemCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	menuItemID kernel.UUID
	quantity   int

	guard guard.ConstructorGuard
}

// NewDecreaseOrderItemCommand creates a command to decrease an order line.
func NewDecreaseOrderItemCommand(
	orderID kernel.UUID,
	menuItemID kernel.UUID,
	quantity int,
) (DecreaseOrderItemCommand, error) {
	command := DecreaseOrderItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setMenuItemID(menuItemID),
		command.setQuantity(quantity),
	); err != nil {
		return DecreaseOrderItemCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DecreaseOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrDecreaseOrderItemCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c DecreaseOrderItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// MenuItemID returns the identifier of the line to decrease.
func (c DecreaseOrderItemCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}

// Quantity returns the number of units to take off the line.
func (c DecreaseOrderItemCommand) Quantity() int {
	return c.quantity
}

func (c *DecreaseOrderItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *DecreaseOrderItemCommand) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}

	c.menuItemID = menuItemID
	return nil
}

func (c *DecreaseOrderItemCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}
