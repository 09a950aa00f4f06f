// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. This package implements the repository pattern for the
// order aggregate, handling the conversion between domain entities and their
// relational representation across the orders, order_items and order_payments
// tables.
package orderrepo

import (
	"time"

	"github.com/Smeltier/basic-delivery-system/internal/core/domain/model/kernel"
	"github.com/Smeltier/basic-delivery-system/internal/core/domain/model/order"
	"github.com/Smeltier/basic-delivery-system/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Line items and payment references live in child tables keyed by order id.
// The delivery address is embedded; an empty street marks an order that has
// no delivery address yet.
type OrderDTO struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	AccountID       uuid.UUID       `gorm:"type:uuid;not null;index:idx_orders_account_restaurant"`
	RestaurantID    uuid.UUID       `gorm:"type:uuid;not null;index:idx_orders_account_restaurant"`
	Currency        string          `gorm:"type:varchar(3);not null"`
	Status          int             `gorm:"type:int;not null;index"`
	DeliveryAddress AddressDTO      `gorm:"embedded;embeddedPrefix:delivery_"`
	DeliveryFee     decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	CreatedAt       time.Time       `gorm:"not null"`
	PaidAt          *time.Time
	ConfirmedAt     *time.Time
	CancelledAt     *time.Time
	DeliveredAt     *time.Time
	Items           []OrderItemDTO    `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Payments        []OrderPaymentDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO represents the embedded delivery address columns within the
// order table.
type AddressDTO struct {
	Street     string `gorm:"type:varchar(255)"`
	Number     string `gorm:"type:varchar(32)"`
	Complement string `gorm:"type:varchar(255)"`
	City       string `gorm:"type:varchar(255)"`
	Country    string `gorm:"type:varchar(255)"`
	ZipCode    string `gorm:"type:varchar(16)"`
}

// OrderItemDTO represents a menu item snapshot line within an order.
// The unit price currency is the order's currency. Position preserves the
// insertion order of the lines.
type OrderItemDTO struct {
	OrderID     uuid.UUID       `gorm:"type:uuid;primaryKey"`
	MenuItemID  uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Position    int             `gorm:"type:int;not null"`
	Name        string          `gorm:"type:varchar(255);not null"`
	Description string          `gorm:"type:varchar(1024);not null"`
	Category    int             `gorm:"type:int;not null"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Quantity    int             `gorm:"type:int;not null"`
}

// TableName specifies the database table name for order line items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// OrderPaymentDTO links an order to one of its payment attempts.
// Position preserves the registration order.
type OrderPaymentDTO struct {
	OrderID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	PaymentID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position  int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for order payment references.
func (OrderPaymentDTO) TableName() string {
	return "order_payments"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for position, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:     orderID,
			MenuItemID:  item.MenuItemID().Bytes(),
			Position:    position,
			Name:        item.Name(),
			Description: item.Description(),
			Category:    int(item.Category()),
			UnitPrice:   item.UnitPrice().Amount(),
			Quantity:    item.Quantity(),
		})
	}

	payments := make([]OrderPaymentDTO, 0, len(aggregate.Payments()))
	for position, paymentID := range aggregate.Payments() {
		payments = append(payments, OrderPaymentDTO{
			OrderID:   orderID,
			PaymentID: paymentID.Bytes(),
			Position:  position,
		})
	}

	var address AddressDTO
	if addr := aggregate.DeliveryAddress(); addr != nil {
		address = AddressDTO{
			Street:     addr.Street(),
			Number:     addr.Number(),
			Complement: addr.Complement(),
			City:       addr.City(),
			Country:    addr.Country(),
			ZipCode:    addr.ZipCode().Value(),
		}
	}

	return OrderDTO{
		ID:              orderID,
		AccountID:       aggregate.AccountID().Bytes(),
		RestaurantID:    aggregate.RestaurantID().Bytes(),
		Currency:        aggregate.Currency().String(),
		Status:          int(aggregate.Status()),
		DeliveryAddress: address,
		DeliveryFee:     aggregate.DeliveryFee().Amount(),
		CreatedAt:       aggregate.CreatedAt(),
		PaidAt:          aggregate.PaidAt(),
		ConfirmedAt:     aggregate.ConfirmedAt(),
		CancelledAt:     aggregate.CancelledAt(),
		DeliveredAt:     aggregate.DeliveredAt(),
		Items:           items,
		Payments:        payments,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including line items, payment
// references and lifecycle timestamps using RestoreOrder.
func toDomain(dto OrderDTO, clk clock.Clock) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	accountID, err := kernel.UUIDFromBytes(dto.AccountID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	currency, err := kernel.CurrencyFromString(dto.Currency)
	if err != nil {
		return nil, err
	}

	items := make([]order.OrderItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO, currency)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	payments := make([]kernel.UUID, 0, len(dto.Payments))
	for _, paymentDTO := range dto.Payments {
		paymentID, paymentErr := kernel.UUIDFromBytes(paymentDTO.PaymentID[:])
		if paymentErr != nil {
			return nil, paymentErr
		}
		payments = append(payments, paymentID)
	}

	var deliveryAddress *kernel.Address
	if dto.DeliveryAddress.Street != "" {
		address, addrErr := addressToDomain(dto.DeliveryAddress)
		if addrErr != nil {
			return nil, addrErr
		}
		deliveryAddress = &address
	}

	deliveryFee, err := kernel.NewMoney(dto.DeliveryFee, currency)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		restaurantID,
		accountID,
		currency,
		order.Status(dto.Status),
		items,
		payments,
		deliveryAddress,
		deliveryFee,
		dto.CreatedAt,
		dto.PaidAt,
		dto.ConfirmedAt,
		dto.CancelledAt,
		dto.DeliveredAt,
		clk,
	)
}

func itemToDomain(dto OrderItemDTO, currency kernel.Currency) (order.OrderItem, error) {
	menuItemID, err := kernel.UUIDFromBytes(dto.MenuItemID[:])
	if err != nil {
		return order.OrderItem{}, err
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPrice, currency)
	if err != nil {
		return order.OrderItem{}, err
	}

	return order.NewOrderItem(
		menuItemID,
		dto.Name,
		dto.Description,
		kernel.MenuItemCategory(dto.Category),
		unitPrice,
		dto.Quantity,
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
