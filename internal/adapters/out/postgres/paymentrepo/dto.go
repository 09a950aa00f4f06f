// Package paymentrepo provides data transfer objects and mapping functions
// for payment persistence. This package implements the repository pattern for
// the payment aggregate.
package paymentrepo

import (
	"time"

	"github.com/Smeltier/basic-delivery-system/internal/core/domain/model/kernel"
	"github.com/Smeltier/basic-delivery-system/internal/core/domain/model/payment"
	"github.com/Smeltier/basic-delivery-system/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentDTO represents the database structure for persisting payment
// aggregates. Indexed by order and by status so the pending retry batch can
// scan efficiently.
type PaymentDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount      decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Currency    string          `gorm:"type:varchar(3);not null"`
	Status      int             `gorm:"type:int;not null;index"`
	CreatedAt   time.Time       `gorm:"not null"`
	ProcessedAt *time.Time
}

// TableName specifies the database table name for payment entities.
func (PaymentDTO) TableName() string {
	return "payments"
}

// fromDomain converts a payment domain aggregate to its database representation.
func fromDomain(aggregate *payment.Payment) PaymentDTO {
	return PaymentDTO{
		ID:          aggregate.ID().Bytes(),
		OrderID:     aggregate.OrderID().Bytes(),
		Amount:      aggregate.Amount().Amount(),
		Currency:    aggregate.Amount().Currency().String(),
		Status:      int(aggregate.Status()),
		CreatedAt:   aggregate.CreatedAt(),
		ProcessedAt: aggregate.ProcessedAt(),
	}
}

// toDomain converts a database DTO to a payment domain aggregate using
// RestorePayment.
func toDomain(dto PaymentDTO, clk clock.Clock) (*payment.Payment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	currency, err := kernel.CurrencyFromString(dto.Currency)
	if err != nil {
		return nil, err
	}

	amount, err := kernel.NewMoney(dto.Amount, currency)
	if err != nil {
		return nil, err
	}

	return payment.RestorePayment(
		id,
		orderID,
		amount,
		payment.Status(dto.Status),
		dto.CreatedAt,
		dto.ProcessedAt,
		clk,
	)
}
