// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"fmt"

	"github.com/Smeltier/basic-delivery-system/internal/core/domain/model/kernel"
	"github.com/Smeltier/basic-delivery-system/internal/pkg/errs"
	"github.com/Smeltier/basic-delivery-system/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves a single order with its line items and totals.
// Returns a read model assembled straight from the orders and order_items
// tables, bypassing the domain aggregate.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetOrderQueryHandler(db)
//	result, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve order: %w", err)
//	}
//
//	fmt.Printf("Order %s: %s %s\n", result.ID, result.Total, result.Currency)
type GetOrderQuery struct {
	guard   guard.ConstructorGuard
	orderID kernel.UUID
}

// NewGetOrderQuery creates a query to retrieve one order by its identity.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}

	return GetOrderQuery{
		guard:   guard.NewConstructorGuard(),
		orderID: orderID,
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identity of the order to retrieve.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderQueryResponse represents an order in the read model, with its
// lines and precomputed totals. Total is the item sum plus delivery fee.
type GetOrderQueryResponse struct {
	ID           kernel.UUID
	AccountID    kernel.UUID
	RestaurantID kernel.UUID
	Status       string
	Currency     string
	Items        []GetOrderQueryItemResponse
	ItemsTotal   decimal.Decimal
	DeliveryFee  decimal.Decimal
	Total        decimal.Decimal
}

// GetOrderQueryItemResponse represents one line of an order in the read model.
type GetOrderQueryItemResponse struct {
	MenuItemID kernel.UUID
	Name       string
	UnitPrice  decimal.Decimal
	Quantity   int
	LineTotal  decimal.Decimal
}

// String renders a human readable order summary for logging.
func (r GetOrderQueryResponse) String() string {
	return fmt.Sprintf("order %s (%s): %d items, total %s %s",
		r.ID, r.Status, len(r.Items), r.Total, r.Currency)
}
