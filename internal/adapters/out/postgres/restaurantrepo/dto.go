// Package restaurantrepo provides data transfer objects and mapping functions
// for restaurant persistence. The menu lives in a child table keyed by
// restaurant id.
package restaurantrepo

import (
	"github.com/Smeltier/basic-delivery-system/internal/core/domain/model/kernel"
	"github.com/Smeltier/basic-delivery-system/internal/core/domain/model/restaurant"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RestaurantDTO represents the database structure for persisting restaurant
// aggregates. Opening hours are stored as "HH:MM" strings matching their
// domain representation.
type RestaurantDTO struct {
	ID       uuid.UUID     `gorm:"type:uuid;primaryKey"`
	OwnerID  uuid.UUID     `gorm:"type:uuid;not null;index"`
	Name     string        `gorm:"type:varchar(255);not null"`
	Currency string        `gorm:"type:varchar(3);not null"`
	Address  AddressDTO    `gorm:"embedded;embeddedPrefix:address_"`
	OpensAt  string        `gorm:"type:varchar(5);not null"`
	ClosesAt string        `gorm:"type:varchar(5);not null"`
	Status   int           `gorm:"type:int;not null"`
	Menu     []MenuItemDTO `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for restaurant entities.
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// AddressDTO represents the embedded address columns within the restaurant table.
type AddressDTO struct {
	Street     string `gorm:"type:varchar(255);not null"`
	Number     string `gorm:"type:varchar(32);not null"`
	Complement string `gorm:"type:varchar(255)"`
	City       string `gorm:"type:varchar(255);not null"`
	Country    string `gorm:"type:varchar(255);not null"`
	ZipCode    string `gorm:"type:varchar(16);not null"`
}

// MenuItemDTO represents a menu item row belonging to a restaurant.
// The price currency is the restaurant's currency.
type MenuItemDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name         string          `gorm:"type:varchar(255);not null"`
	Description  string          `gorm:"type:varchar(1024);not null"`
	Category     int             `gorm:"type:int;not null"`
	Price        decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Active       bool            `gorm:"not null"`
}

// TableName specifies the database table name for menu items.
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

// fromDomain converts a restaurant domain aggregate to its database representation.
func fromDomain(aggregate *restaurant.Restaurant) RestaurantDTO {
	restaurantID := aggregate.ID().Bytes()

	menu := make([]MenuItemDTO, 0, len(aggregate.Menu()))
	for _, item := range aggregate.Menu() {
		menu = append(menu, MenuItemDTO{
			ID:           item.ID().Bytes(),
			RestaurantID: restaurantID,
			Name:         item.Name(),
			Description:  item.Description(),
			Category:     int(item.Category()),
			Price:        item.Price().Amount(),
			Active:       item.IsActive(),
		})
	}

	address := aggregate.Address()

	return RestaurantDTO{
		ID:       restaurantID,
		OwnerID:  aggregate.OwnerID().Bytes(),
		Name:     aggregate.Name(),
		Currency: aggregate.Currency().String(),
		Address: AddressDTO{
			Street:     address.Street(),
			Number:     address.Number(),
			Complement: address.Complement(),
			City:       address.City(),
			Country:    address.Country(),
			ZipCode:    address.ZipCode().Value(),
		},
		OpensAt:  aggregate.OpeningHours().OpensAt(),
		ClosesAt: aggregate.OpeningHours().ClosesAt(),
		Status:   int(aggregate.Status()),
		Menu:     menu,
	}
}

// toDomain converts a database DTO to a restaurant domain aggregate using
// RestoreRestaurant.
func toDomain(dto RestaurantDTO) (*restaurant.Restaurant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	currency, err := kernel.CurrencyFromString(dto.Currency)
	if err != nil {
		return nil, err
	}

	address, err := addressToDomain(dto.Address)
	if err != nil {
		return nil, err
	}

	openingHours, err := restaurant.NewOpeningHours(dto.OpensAt, dto.ClosesAt)
	if err != nil {
		return nil, err
	}

	menu := make([]restaurant.MenuItem, 0, len(dto.Menu))
	for _, itemDTO := range dto.Menu {
		item, itemErr := menuItemToDomain(itemDTO, currency)
		if itemErr != nil {
			return nil, itemErr
		}
		menu = append(menu, item)
	}

	return restaurant.RestoreRestaurant(
		id,
		ownerID,
		dto.Name,
		currency,
		address,
		openingHours,
		menu,
		restaurant.Status(dto.Status),
	)
}

func menuItemToDomain(dto MenuItemDTO, currency kernel.Currency) (restaurant.MenuItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return restaurant.MenuItem{}, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return restaurant.MenuItem{}, err
	}

	price, err := kernel.NewMoney(dto.Price, currency)
	if err != nil {
		return restaurant.MenuItem{}, err
	}

	return restaurant.RestoreMenuItem(
		id,
		restaurantID,
		dto.Name,
		dto.Description,
		kernel.MenuItemCategory(dto.Category),
		price,
		dto.Active,
	)
}

func addressToDomain(dto AddressDTO) (kernel.Address, error) {
	zipCode, err := kernel.NewZipCode(dto.ZipCode)
	if err != nil {
		return kernel.Address{}, err
	}

	return kernel.NewAddress(
		dto.Street,
		dto.Number,
		dto.Complement,
		dto.City,
		dto.Country,
		zipCode,
	)
}
