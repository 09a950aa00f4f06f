package commands

import (
	"errors"

	"github.com/Smeltier/basic-delivery-system/internal/core/domain/model/kernel"
	"github.com/Smeltier/basic-delivery-system/internal/pkg/guard"
)

var ErrCheckoutOrderCommandIsNotConstructed = errors.New(
	"CheckoutOrderCommand must be created via NewCheckoutOrderCommand constructor",
)

// CheckoutOrderCommand represents a request to pay for a draft order.
// The caller supplies the identity of the payment that will charge it.
type CheckoutOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	paymentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCheckoutOrderCommand creates a command to check a draft order out.
func NewCheckoutOrderCommand(orderID, paymentID kernel.UUID) (CheckoutOrderCommand, error) {
	command := CheckoutOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setPaymentID(paymentID),
	); err != nil {
		return CheckoutOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckoutOrderCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutOrderCommandIsNotConstructed)
}

// OrderID returns the draft order's identifier.
func (c CheckoutOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PaymentID returns the unique identifier for the new payment.
func (c CheckoutOrderCommand) PaymentID() kernel.UUID {
	return c.paymentID
}

func (c *CheckoutOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CheckoutOrderCommand) setPaymentID(paymentID kernel.UUID) error {
	if err := paymentID.Validate(); err != nil {
		return err
	}

	c.paymentID = paymentID
	return nil
}
