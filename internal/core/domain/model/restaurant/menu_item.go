package restaurant

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Smeltier/basic-delivery-system/internal/core/domain/model/kernel"
	"github.com/Smeltier/basic-delivery-system/internal/pkg/errs"
)

var (
	// ErrMenuItemIsNotConstructed is returned when a MenuItem instance was not
	// created through NewMenuItem.
	ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem constructor")

	// ErrInvalidMenuItem is returned for malformed item content and for
	// mutations attempted on an inactive item.
	ErrInvalidMenuItem = errors.New("invalid menu item")
)

// MenuItem is a dish or drink a restaurant offers. Items stay on the menu
// when taken out of stock; deactivation hides them from ordering without
// losing the catalog entry.
type MenuItem struct {
	id           kernel.UUID
	restaurantID kernel.UUID
	name         string
	description  string
	category     kernel.MenuItemCategory
	price        kernel.Money
	active       bool

	isConstructed bool
}

// NewMenuItem creates an active menu item priced in the restaurant currency.
func NewMenuItem(
	id kernel.UUID,
	restaurantID kernel.UUID,
	name string,
	description string,
	category kernel.MenuItemCategory,
	price kernel.Money,
) (MenuItem, error) {
	item := MenuItem{
		active:        true,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setRestaurantID(restaurantID),
		item.setName(name),
		item.setDescription(description),
		item.setCategory(category),
		item.setPrice(price),
	); err != nil {
		return MenuItem{}, err
	}

	return item, nil
}

// RestoreMenuItem rehydrates a menu item from storage with its activity flag.
func RestoreMenuItem(
	id kernel.UUID,
	restaurantID kernel.UUID,
	name string,
	description string,
	category kernel.MenuItemCategory,
	price kernel.Money,
	active bool,
) (MenuItem, error) {
	item, err := NewMenuItem(id, restaurantID, name, description, category, price)
	if err != nil {
		return MenuItem{}, err
	}

	item.active = active
	return item, nil
}

// Validate checks that the item came from the constructor.
func (i MenuItem) Validate() error {
	if !i.isConstructed {
		return ErrMenuItemIsNotConstructed
	}
	return nil
}

// ID returns the item's unique identifier.
func (i MenuItem) ID() kernel.UUID {
	return i.id
}

// RestaurantID returns the owning restaurant's identifier.
func (i MenuItem) RestaurantID() kernel.UUID {
	return i.restaurantID
}

// Name returns the item's display name.
func (i MenuItem) Name() string {
	return i.name
}

// Description returns the item's menu description.
func (i MenuItem) Description() string {
	return i.description
}

// Category returns the menu section the item belongs to.
func (i MenuItem) Category() kernel.MenuItemCategory {
	return i.category
}

// Price returns the current price.
func (i MenuItem) Price() kernel.Money {
	return i.price
}

// IsActive reports whether the item is currently orderable.
func (i MenuItem) IsActive() bool {
	return i.active
}

// IsEqual compares two menu items by identity.
func (i MenuItem) IsEqual(other MenuItem) bool {
	return i.id.IsEqual(other.id)
}

// Rename updates the display name and description.
// Fails with ErrInvalidMenuItem on an inactive item.
func (i *MenuItem) Rename(name, description string) error {
	if err := i.assertActive(); err != nil {
		return err
	}

	return errors.Join(
		i.setName(name),
		i.setDescription(description),
	)
}

// ChangePrice replaces the price, keeping the currency.
// Fails with ErrInvalidMenuItem on an inactive item or a currency switch.
func (i *MenuItem) ChangePrice(price kernel.Money) error {
	if err := i.assertActive(); err != nil {
		return err
	}

	if err := price.Validate(); err != nil {
		return err
	}

	if price.Currency() != i.price.Currency() {
		return fmt.Errorf("%w: price is %s, item is priced in %s",
			kernel.ErrCurrencyMismatch, price.Currency(), i.price.Currency())
	}

	i.price = price
	return nil
}

// Activate puts the item back on sale. Idempotent.
func (i *MenuItem) Activate() {
	i.active = true
}

// Deactivate takes the item off sale without removing it. Idempotent.
func (i *MenuItem) Deactivate() {
	i.active = false
}

func (i *MenuItem) assertActive() error {
	if !i.active {
		return fmt.Errorf("%w: item %s is inactive", ErrInvalidMenuItem, i.id)
	}
	return nil
}

func (i *MenuItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *MenuItem) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	i.restaurantID = restaurantID
	return nil
}

func (i *MenuItem) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
	return nil
}

func (i *MenuItem) setDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return errs.NewValueIsRequiredError("description")
	}
	i.description = description
	return nil
}

func (i *MenuItem) setCategory(category kernel.MenuItemCategory) error {
	if err := category.Validate(); err != nil {
		return err
	}
	i.category = category
	return nil
}

func (i *MenuItem) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	if !price.IsPositive() {
		return fmt.Errorf("%w: price must be positive, got %s", ErrInvalidMenuItem, price)
	}
	i.price = price
	return nil
}
