package order

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Smeltier/basic-delivery-system/internal/core/domain/model/kernel"
	"github.com/Smeltier/basic-delivery-system/internal/pkg/guard"
)

var (
	// ErrOrderItemIsNotConstructed is returned when validating a zero-value OrderItem.
	ErrOrderItemIsNotConstructed = errors.New("OrderItem must be created via NewOrderItem constructor")

	// ErrInvalidOrderItem is returned for malformed item content (blank name or
	// description, unconstructed identity, price or category) and for quantity
	// decrements that exceed the held quantity.
	ErrInvalidOrderItem = errors.New("invalid order item")

	// ErrInvalidOrderItemQuantity is returned when a non-positive quantity is supplied.
	ErrInvalidOrderItemQuantity = errors.New("invalid order item quantity")
)

// OrderItem is one line of an order: a snapshot of a menu item (identity,
// name, description, category, unit price) plus the ordered quantity.
// It is immutable once constructed; quantity changes produce a new line.
//
// The snapshot is deliberate: a later menu edit must not change what the
// client agreed to pay.
type OrderItem struct { //nolint:recvcheck //using for validation
	menuItemID  kernel.UUID
	name        string
	description string
	category    kernel.MenuItemCategory
	unitPrice   kernel.Money
	quantity    int

	guard guard.ConstructorGuard
}

// NewOrderItem creates a validated line item. Content violations fail with
// ErrInvalidOrderItem; a non-positive quantity fails with
// ErrInvalidOrderItemQuantity, so callers can tell the two apart.
func NewOrderItem(
	menuItemID kernel.UUID,
	name string,
	description string,
	category kernel.MenuItemCategory,
	unitPrice kernel.Money,
	quantity int,
) (OrderItem, error) {
	if err := menuItemID.Validate(); err != nil {
		return OrderItem{}, fmt.Errorf("%w: menu item id: %w", ErrInvalidOrderItem, err)
	}

	if strings.TrimSpace(name) == "" {
		return OrderItem{}, fmt.Errorf("%w: name must not be blank", ErrInvalidOrderItem)
	}

	if strings.TrimSpace(description) == "" {
		return OrderItem{}, fmt.Errorf("%w: description must not be blank", ErrInvalidOrderItem)
	}

	if err := category.Validate(); err != nil {
		return OrderItem{}, fmt.Errorf("%w: %w", ErrInvalidOrderItem, err)
	}

	if err := unitPrice.Validate(); err != nil {
		return OrderItem{}, fmt.Errorf("%w: unit price: %w", ErrInvalidOrderItem, err)
	}

	if quantity <= 0 {
		return OrderItem{}, fmt.Errorf("%w: %d is not greater than 0", ErrInvalidOrderItemQuantity, quantity)
	}

	return OrderItem{
		menuItemID:  menuItemID,
		name:        name,
		description: description,
		category:    category,
		unitPrice:   unitPrice,
		quantity:    quantity,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the item came from the constructor.
func (i OrderItem) Validate() error {
	return i.guard.Validate(ErrOrderItemIsNotConstructed)
}

// MenuItemID returns the identity of the menu item this line refers to.
func (i OrderItem) MenuItemID() kernel.UUID {
	return i.menuItemID
}

// Name returns the menu item name as snapshotted at ordering time.
func (i OrderItem) Name() string {
	return i.name
}

// Description returns the snapshotted menu item description.
func (i OrderItem) Description() string {
	return i.description
}

// Category returns the snapshotted menu item category.
func (i OrderItem) Category() kernel.MenuItemCategory {
	return i.category
}

// UnitPrice returns the snapshotted price per unit.
func (i OrderItem) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Quantity returns the number of units on this line. Always positive.
func (i OrderItem) Quantity() int {
	return i.quantity
}

// Total returns unit price times quantity, propagating Money's invariants.
func (i OrderItem) Total() (kernel.Money, error) {
	return i.unitPrice.Multiply(i.quantity)
}

// withQuantity returns a copy of the line holding a different quantity and
// all other fields unchanged. Used by the aggregate's merge and decrement
// reducers.
func (i OrderItem) withQuantity(quantity int) (OrderItem, error) {
	return NewOrderItem(i.menuItemID, i.name, i.description, i.category, i.unitPrice, quantity)
}
