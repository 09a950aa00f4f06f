package commands

import (
	"errors"

	"github.com/Smeltier/basic-delivery-system/internal/core/domain/model/kernel"
	"github.com/Smeltier/basic-delivery-system/internal/pkg/guard"
)

var ErrChangeDeliveryAddressCommandIsNotConstructed = errors.New(
	"ChangeDeliveryAddressCommand must be created via NewChangeDeliveryAddressCommand constructor",
)

// ChangeDeliveryAddressCommand represents a request to set the destination
// and delivery fee of a draft order.
type ChangeDeliveryAddressCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	address     kernel.Address
	deliveryFee kernel.Money

	guard guard.ConstructorGuard
}

// NewChangeDeliveryAddressCommand creates a command to change the delivery
// destination.
func NewChangeDeliveryAddressCommand(
	orderID kernel.UUID,
	address kernel.Address,
	deliveryFee kernel.Money,
) (ChangeDeliveryAddressCommand, error) {
	command := ChangeDeliveryAddressCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setAddress(address),
		command.setDeliveryFee(deliveryFee),
	); err != nil {
		return ChangeDeliveryAddressCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeDeliveryAddressCommand) Validate() error {
	return c.guard.Validate(ErrChangeDeliveryAddressCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c ChangeDeliveryAddressCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Address returns the delivery destination.
func (c ChangeDeliveryAddressCommand) Address() kernel.Address {
	return c.address
}

// DeliveryFee returns the fee charged for delivering to the destination.
func (c ChangeDeliveryAddressCommand) DeliveryFee() kernel.Money {
	return c.deliveryFee
}

func (c *ChangeDeliveryAddressCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ChangeDeliveryAddressCommand) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}

	c.address = address
	return nil
}

func (c *ChangeDeliveryAddressCommand) setDeliveryFee(deliveryFee kernel.Money) error {
	if err := deliveryFee.Validate(); err != nil {
		return err
	}

	c.deliveryFee = deliveryFee
	return nil
}
