package restaurant

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Smeltier/basic-delivery-system/internal/core/domain/model/kernel"
	"github.com/Smeltier/basic-delivery-system/internal/pkg/errs"
)

var (
	// ErrRestaurantIsNotConstructed is returned when a Restaurant instance was
	// not created through NewRestaurant or RestoreRestaurant.
	ErrRestaurantIsNotConstructed = errors.New(
		"Restaurant must be created via NewRestaurant or RestoreRestaurant constructor")

	// ErrMenuItemNotFound is returned when an operation references a menu
	// item the restaurant does not hold.
	ErrMenuItemNotFound = errors.New("menu item not found")
)

// Restaurant is the aggregate root for a food seller. All menu prices share
// the restaurant currency, and orders opened against the restaurant are
// denominated in it.
type Restaurant struct {
	id       kernel.UUID
	ownerID  kernel.UUID
	name     string
	currency kernel.Currency

	address      kernel.Address
	openingHours OpeningHours

	menu   []MenuItem
	status Status

	isConstructed bool
}

// NewRestaurant creates a closed restaurant with an empty menu.
func NewRestaurant(
	id kernel.UUID,
	ownerID kernel.UUID,
	name string,
	currency kernel.Currency,
	address kernel.Address,
	openingHours OpeningHours,
) (*Restaurant, error) {
	restaurant := &Restaurant{
		status:        StatusClosed,
		isConstructed: true,
	}

	if err := errors.Join(
		restaurant.setID(id),
		restaurant.setOwnerID(ownerID),
		restaurant.setName(name),
		restaurant.setCurrency(currency),
		restaurant.setAddress(address),
		restaurant.setOpeningHours(openingHours),
	); err != nil {
		return nil, err
	}

	return restaurant, nil
}

// RestoreRestaurant rehydrates a restaurant from storage with its menu and
// status.
func RestoreRestaurant(
	id kernel.UUID,
	ownerID kernel.UUID,
	name string,
	currency kernel.Currency,
	address kernel.Address,
	openingHours OpeningHours,
	menu []MenuItem,
	status Status,
) (*Restaurant, error) {
	restaurant, err := NewRestaurant(id, ownerID, name, currency, address, openingHours)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	for _, item := range menu {
		if itemErr := item.Validate(); itemErr != nil {
			return nil, itemErr
		}
		if item.Price().Currency() != currency {
			return nil, fmt.Errorf("%w: item %s priced in %s, restaurant uses %s",
				kernel.ErrCurrencyMismatch, item.ID(), item.Price().Currency(), currency)
		}
	}

	restaurant.menu = append(restaurant.menu, menu...)
	restaurant.status = status
	return restaurant, nil
}

// Validate ensures the Restaurant instance was properly constructed.
func (r *Restaurant) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRestaurantIsNotConstructed
	}
	return nil
}

// IsEqual compares two restaurants by identity.
func (r *Restaurant) IsEqual(other *Restaurant) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the restaurant's unique identifier.
func (r *Restaurant) ID() kernel.UUID {
	return r.id
}

// OwnerID returns the owning account's identifier.
func (r *Restaurant) OwnerID() kernel.UUID {
	return r.ownerID
}

// Name returns the restaurant's display name.
func (r *Restaurant) Name() string {
	return r.name
}

// Currency returns the currency all menu prices are denominated in.
func (r *Restaurant) Currency() kernel.Currency {
	return r.currency
}

// Address returns the restaurant's location.
func (r *Restaurant) Address() kernel.Address {
	return r.address
}

// OpeningHours returns the daily window the restaurant may open within.
func (r *Restaurant) OpeningHours() OpeningHours {
	return r.openingHours
}

// Status returns whether the restaurant currently accepts orders.
func (r *Restaurant) Status() Status {
	return r.status
}

// IsOpen reports whether the restaurant currently accepts orders.
func (r *Restaurant) IsOpen() bool {
	return r.status == StatusOpen
}

// Menu returns a copy of the menu in insertion order.
func (r *Restaurant) Menu() []MenuItem {
	menu := make([]MenuItem, len(r.menu))
	copy(menu, r.menu)
	return menu
}

// FindMenuItem looks a menu item up by identity.
// Fails with ErrMenuItemNotFound when the menu holds no such item.
func (r *Restaurant) FindMenuItem(menuItemID kernel.UUID) (MenuItem, error) {
	if idx := r.indexOfMenuItem(menuItemID); idx >= 0 {
		return r.menu[idx], nil
	}
	return MenuItem{}, fmt.Errorf("%w: %s", ErrMenuItemNotFound, menuItemID)
}

// AddMenuItem registers a new dish on the menu while the restaurant is
// closed. The price must be in the restaurant currency and the menu item
// identity must be new.
func (r *Restaurant) AddMenuItem(
	menuItemID kernel.UUID,
	name string,
	description string,
	category kernel.MenuItemCategory,
	price kernel.Money,
) error {
	if err := r.assertClosed("menu can only be edited while closed"); err != nil {
		return err
	}

	if err := price.Validate(); err != nil {
		return err
	}

	if price.Currency() != r.currency {
		return fmt.Errorf("%w: price is %s, restaurant uses %s",
			kernel.ErrCurrencyMismatch, price.Currency(), r.currency)
	}

	if r.indexOfMenuItem(menuItemID) >= 0 {
		return fmt.Errorf("%w: menu already holds item %s", ErrInvalidRestaurantOperation, menuItemID)
	}

	item, err := NewMenuItem(menuItemID, r.id, name, description, category, price)
	if err != nil {
		return err
	}

	r.menu = append(r.menu, item)
	return nil
}

// RemoveMenuItem deletes a dish from the menu while the restaurant is closed.
// Fails with ErrMenuItemNotFound when the menu holds no such item.
func (r *Restaurant) RemoveMenuItem(menuItemID kernel.UUID) error {
	if err := r.assertClosed("menu can only be edited while closed"); err != nil {
		return err
	}

	idx := r.indexOfMenuItem(menuItemID)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrMenuItemNotFound, menuItemID)
	}

	r.menu = append(r.menu[:idx], r.menu[idx+1:]...)
	return nil
}

// RenameMenuItem updates a dish's name and description.
func (r *Restaurant) RenameMenuItem(menuItemID kernel.UUID, name, description string) error {
	idx := r.indexOfMenuItem(menuItemID)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrMenuItemNotFound, menuItemID)
	}
	return r.menu[idx].Rename(name, description)
}

// RepriceMenuItem replaces a dish's price in the restaurant currency.
func (r *Restaurant) RepriceMenuItem(menuItemID kernel.UUID, price kernel.Money) error {
	idx := r.indexOfMenuItem(menuItemID)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrMenuItemNotFound, menuItemID)
	}
	return r.menu[idx].ChangePrice(price)
}

// ActivateMenuItem puts a dish back on sale.
func (r *Restaurant) ActivateMenuItem(menuItemID kernel.UUID) error {
	idx := r.indexOfMenuItem(menuItemID)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrMenuItemNotFound, menuItemID)
	}
	r.menu[idx].Activate()
	return nil
}

// DeactivateMenuItem takes a dish off sale without removing it.
func (r *Restaurant) DeactivateMenuItem(menuItemID kernel.UUID) error {
	idx := r.indexOfMenuItem(menuItemID)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrMenuItemNotFound, menuItemID)
	}
	r.menu[idx].Deactivate()
	return nil
}

// Open starts accepting orders. Requires the restaurant to be closed, at
// least one active menu item, and now within the opening hours.
func (r *Restaurant) Open(now time.Time) error {
	if err := r.assertClosed("restaurant is already open"); err != nil {
		return err
	}

	if !r.hasActiveMenuItem() {
		return fmt.Errorf("%w: menu has no active items", ErrInvalidRestaurantOperation)
	}

	if !r.openingHours.IsWithin(now) {
		return fmt.Errorf("%w: %s is outside opening hours %s",
			ErrInvalidRestaurantOperation, now.Format("15:04"), r.openingHours)
	}

	r.status = StatusOpen
	return nil
}

// Close stops accepting orders. Idempotent.
func (r *Restaurant) Close() {
	r.status = StatusClosed
}

func (r *Restaurant) hasActiveMenuItem() bool {
	for _, item := range r.menu {
		if item.IsActive() {
			return true
		}
	}
	return false
}

func (r *Restaurant) assertClosed(reason string) error {
	if r.status != StatusClosed {
		return fmt.Errorf("%w: %s", ErrInvalidRestaurantOperation, reason)
	}
	return nil
}

func (r *Restaurant) indexOfMenuItem(menuItemID kernel.UUID) int {
	for i, item := range r.menu {
		if item.ID().IsEqual(menuItemID) {
			return i
		}
	}
	return -1
}

func (r *Restaurant) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Restaurant) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	r.ownerID = ownerID
	return nil
}

func (r *Restaurant) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	r.name = name
	return nil
}

func (r *Restaurant) setCurrency(currency kernel.Currency) error {
	if err := currency.Validate(); err != nil {
		return err
	}
	r.currency = currency
	return nil
}

func (r *Restaurant) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	r.address = address
	return nil
}

func (r *Restaurant) setOpeningHours(openingHours OpeningHours) error {
	if err := openingHours.Validate(); err != nil {
		return err
	}
	r.openingHours = openingHours
	return nil
}
