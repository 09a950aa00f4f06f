package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Smeltier/basic-delivery-system/internal/core/domain/model/kernel"
	"github.com/Smeltier/basic-delivery-system/internal/core/domain/model/order"
	"github.com/Smeltier/basic-delivery-system/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves order read models from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for order retrieval queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query to retrieve one order with its lines.
// Totals are computed from the persisted lines so the read model never
// disagrees with what was stored. Returns ObjectNotFoundError when the
// order does not exist.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var response GetOrderQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			account_id,
			restaurant_id,
			currency,
			status,
			delivery_fee
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	var id, accountID, restaurantID uuid.UUID
	var status int
	err := row.Scan(
		&id,
		&accountID,
		&restaurantID,
		&response.Currency,
		&status,
		&response.DeliveryFee,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return GetOrderQueryResponse{}, err
	}

	if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if response.AccountID, err = kernel.UUIDFromBytes(accountID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if response.RestaurantID, err = kernel.UUIDFromBytes(restaurantID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	response.Status = order.Status(status).String()

	items, itemsTotal, err := h.loadItems(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	response.Items = items
	response.ItemsTotal = itemsTotal
	response.Total = itemsTotal.Add(response.DeliveryFee)

	return response, nil
}

func (h GetOrderQueryHandler) loadItems(
	ctx context.Context,
	orderID kernel.UUID,
) ([]GetOrderQueryItemResponse, decimal.Decimal, error) {
	items := make([]GetOrderQueryItemResponse, 0)
	itemsTotal := decimal.Zero

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			menu_item_id,
			name,
			unit_price,
			quantity
		FROM order_items
		WHERE order_id = ?
		ORDER BY position
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, decimal.Zero, err
	}
	defer rows.Close()

	for rows.Next() {
		var item GetOrderQueryItemResponse
		var menuItemID uuid.UUID

		err = rows.Scan(
			&menuItemID,
			&item.Name,
			&item.UnitPrice,
			&item.Quantity,
		)
		if err != nil {
			return nil, decimal.Zero, err
		}

		item.MenuItemID, err = kernel.UUIDFromBytes(menuItemID[:])
		if err != nil {
			return nil, decimal.Zero, err
		}

		item.LineTotal = item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
		itemsTotal = itemsTotal.Add(item.LineTotal)
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, decimal.Zero, err
	}

	return items, itemsTotal, nil
}
