package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Smeltier/basic-delivery-system/internal/core/domain/model/kernel"
	"github.com/Smeltier/basic-delivery-system/internal/core/domain/model/restaurant"
	"github.com/Smeltier/basic-delivery-system/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetRestaurantMenuQueryHandler retrieves restaurant menu read models from
// the database. Uses direct SQL queries for optimal read performance in the
// CQRS pattern.
type GetRestaurantMenuQueryHandler struct {
	db *gorm.DB
}

// NewGetRestaurantMenuQueryHandler creates a handler for menu retrieval queries.
// Requires a GORM database connection for query execution.
func NewGetRestaurantMenuQueryHandler(db *gorm.DB) GetRestaurantMenuQueryHandler {
	return GetRestaurantMenuQueryHandler{db: db}
}

// Handle executes the query to retrieve one restaurant's menu.
// Menu items are sorted by category then name for stable presentation.
// Returns ObjectNotFoundError when the restaurant does not exist.
func (h GetRestaurantMenuQueryHandler) Handle(
	ctx context.Context,
	query GetRestaurantMenuQuery,
) (GetRestaurantMenuQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetRestaurantMenuQueryResponse{}, err
	}

	var response GetRestaurantMenuQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			currency,
			status
		FROM restaurants
		WHERE id = ?
	`, query.RestaurantID().Bytes()).Row()

	var id uuid.UUID
	var status int
	err := row.Scan(
		&id,
		&response.Name,
		&response.Currency,
		&status,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetRestaurantMenuQueryResponse{},
				errs.NewObjectNotFoundError("restaurant", query.RestaurantID().String())
		}
		return GetRestaurantMenuQueryResponse{}, err
	}

	if response.RestaurantID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetRestaurantMenuQueryResponse{}, err
	}
	response.Open = restaurant.Status(status) == restaurant.StatusOpen

	items, err := h.loadMenu(ctx, query.RestaurantID())
	if err != nil {
		return GetRestaurantMenuQueryResponse{}, err
	}
	response.Items = items

	return response, nil
}

func (h GetRestaurantMenuQueryHandler) loadMenu(
	ctx context.Context,
	restaurantID kernel.UUID,
) ([]GetRestaurantMenuQueryItemResponse, error) {
	items := make([]GetRestaurantMenuQueryItemResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			category,
			price,
			active
		FROM menu_items
		WHERE restaurant_id = ?
		ORDER BY category, name
	`, restaurantID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item GetRestaurantMenuQueryItemResponse
		var id uuid.UUID
		var category int

		err = rows.Scan(
			&id,
			&item.Name,
			&category,
			&item.Price,
			&item.Active,
		)
		if err != nil {
			return nil, err
		}

		item.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}

		item.Category = kernel.MenuItemCategory(category).String()
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
