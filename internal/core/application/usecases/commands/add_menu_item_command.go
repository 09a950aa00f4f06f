package commands

import (
	"errors"
	"strings"

	"github.com/Smeltier/basic-delivery-system/internal/core/domain/model/kernel"
	"github.com/Smeltier/basic-delivery-system/internal/pkg/guard"
)

var (
	ErrAddMenuItemCommandIsNotConstructed = errors.New(
		"AddMenuItemCommand must be created via NewAddMenuItemCommand constructor",
	)
	ErrDescriptionIsRequired = errors.New("description is required")
)

// AddMenuItemCommand represents a request to add a dish to a restaurant menu.
type AddMenuItemCommand struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID
	menuItemID   kernel.UUID
	name         string
	description  string
	category     kernel.MenuItemCategory
	price        kernel.Money

	guard guard.ConstructorGuard
}

// NewAddMenuItemCommand creates a command to add a menu item.
func NewAddMenuItemCommand(
	restaurantID kernel.UUID,
	menuItemID kernel.UUID,
	name string,
	description string,
	category kernel.MenuItemCategory,
	price kernel.Money,
) (AddMenuItemCommand, error) {
	command := AddMenuItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setRestaurantID(restaurantID),
		command.setMenuItemID(menuItemID),
		command.setName(name),
		command.setDescription(description),
		command.setCategory(category),
		command.setPrice(price),
	); err != nil {
		return AddMenuItemCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AddMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrAddMenuItemCommandIsNotConstructed)
}

// RestaurantID returns the target restaurant's identifier.
func (c AddMenuItemCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// MenuItemID returns the unique identifier for the new menu item.
func (c AddMenuItemCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}

// Name returns the dish's display name.
func (c AddMenuItemCommand) Name() string {
	return c.name
}

// Description returns the dish's menu description.
func (c AddMenuItemCommand) Description() string {
	return c.description
}

// Category returns the menu section the dish belongs to.
func (c AddMenuItemCommand) Category() kernel.MenuItemCategory {
	return c.category
}

// Price returns the dish's price.
func (c AddMenuItemCommand) Price() kernel.Money {
	return c.price
}

func (c *AddMenuItemCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *AddMenuItemCommand) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}

	c.menuItemID = menuItemID
	return nil
}

func (c *AddMenuItemCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *AddMenuItemCommand) setDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return ErrDescriptionIsRequired
	}

	c.description = description
	return nil
}

func (c *AddMenuItemCommand) setCategory(category kernel.MenuItemCategory) error {
	if err := category.Validate(); err != nil {
		return err
	}

	c.category = category
	return nil
}

func (c *AddMenuItemCommand) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}

	c.price = price
	return nil
}
