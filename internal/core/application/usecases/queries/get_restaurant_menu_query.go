package queries

import (
	"errors"

	"github.com/Smeltier/basic-delivery-system/internal/core/domain/model/kernel"
	"github.com/Smeltier/basic-delivery-system/internal/pkg/errs"
	"github.com/Smeltier/basic-delivery-system/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetRestaurantMenuQueryIsNotConstructed = errors.New(
		"GetRestaurantMenuQuery must be created via NewGetRestaurantMenuQuery constructor",
	)
)

// GetRestaurantMenuQuery retrieves a restaurant's menu for browsing.
// Returns the restaurant identity, its open/closed state and every menu item
// including deactivated ones; callers decide what to show.
//
// Example:
//
//	query, err := NewGetRestaurantMenuQuery(restaurantID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetRestaurantMenuQueryHandler(db)
//	menu, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve menu: %w", err)
//	}
//
//	for _, item := range menu.Items {
//	    fmt.Printf("%s: %s %s\n", item.Name, item.Price, menu.Currency)
//	}
type GetRestaurantMenuQuery struct {
	guard        guard.ConstructorGuard
	restaurantID kernel.UUID
}

// NewGetRestaurantMenuQuery creates a query to retrieve one restaurant's menu.
func NewGetRestaurantMenuQuery(restaurantID kernel.UUID) (GetRestaurantMenuQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return GetRestaurantMenuQuery{}, errs.NewValueIsRequiredErrorWithCause("restaurantID", err)
	}

	return GetRestaurantMenuQuery{
		guard:        guard.NewConstructorGuard(),
		restaurantID: restaurantID,
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetRestaurantMenuQueryIsNotConstructed if validation fails.
func (q GetRestaurantMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantMenuQueryIsNotConstructed)
}

// RestaurantID returns the identity of the restaurant whose menu to retrieve.
func (q GetRestaurantMenuQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}

// GetRestaurantMenuQueryResponse represents a restaurant menu in the read model.
type GetRestaurantMenuQueryResponse struct {
	RestaurantID kernel.UUID
	Name         string
	Currency     string
	Open         bool
	Items        []GetRestaurantMenuQueryItemResponse
}

// GetRestaurantMenuQueryItemResponse represents one menu item in the read model.
type GetRestaurantMenuQueryItemResponse struct {
	ID       kernel.UUID
	Name     string
	Category string
	Price    decimal.Decimal
	Active   bool
}
