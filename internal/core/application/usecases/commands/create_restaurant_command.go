package commands

import (
	"errors"
	"strings"

	"github.com/Smeltier/basic-delivery-system/internal/core/domain/model/kernel"
	"github.com/Smeltier/basic-delivery-system/internal/core/domain/model/restaurant"
	"github.com/Smeltier/basic-delivery-system/internal/pkg/guard"
)

var ErrCreateRestaurantCommandIsNotConstructed = errors.New(
	"CreateRestaurantCommand must be created via NewCreateRestaurantCommand constructor",
)

// CreateRestaurantCommand represents a request to register a restaurant for
// an owner account. The restaurant starts closed with an empty menu.
type CreateRestaurantCommand struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID
	ownerID      kernel.UUID
	name         string
	currency     kernel.Currency
	address      kernel.Address
	openingHours restaurant.OpeningHours

	guard guard.ConstructorGuard
}

// NewCreateRestaurantCommand creates a command to register a restaurant.
func NewCreateRestaurantCommand(
	restaurantID kernel.UUID,
	ownerID kernel.UUID,
	name string,
	currency kernel.Currency,
	address kernel.Address,
	openingHours restaurant.OpeningHours,
) (CreateRestaurantCommand, error) {
	command := CreateRestaurantCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setRestaurantID(restaurantID),
		command.setOwnerID(ownerID),
		command.setName(name),
		command.setCurrency(currency),
		command.setAddress(address),
		command.setOpeningHours(openingHours),
	); err != nil {
		return CreateRestaurantCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrCreateRestaurantCommandIsNotConstructed)
}

// RestaurantID returns the unique identifier for the new restaurant.
func (c CreateRestaurantCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// OwnerID returns the owning account's identifier.
func (c CreateRestaurantCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// Name returns the restaurant's display name.
func (c CreateRestaurantCommand) Name() string {
	return c.name
}

// Currency returns the currency the menu will be priced in.
func (c CreateRestaurantCommand) Currency() kernel.Currency {
	return c.currency
}

// Address returns the restaurant's location.
func (c CreateRestaurantCommand) Address() kernel.Address {
	return c.address
}

// OpeningHours returns the daily window the restaurant may open within.
func (c CreateRestaurantCommand) OpeningHours() restaurant.OpeningHours {
	return c.openingHours
}

func (c *CreateRestaurantCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *CreateRestaurantCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	c.ownerID = ownerID
	return nil
}

func (c *CreateRestaurantCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateRestaurantCommand) setCurrency(currency kernel.Currency) error {
	if err := currency.Validate(); err != nil {
		return err
	}

	c.currency = currency
	return nil
}

func (c *CreateRestaurantCommand) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}

	c.address = address
	return nil
}

func (c *CreateRestaurantCommand) setOpeningHours(openingHours restaurant.OpeningHours) error {
	if err := openingHours.Validate(); err != nil {
		return err
	}

	c.openingHours = openingHours
	return nil
}
