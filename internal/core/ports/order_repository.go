// Package ports defines repository interfaces for the ordering domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"github.com/Smeltier/basic-delivery-system/internal/core/domain/model/kernel"
	"github.com/Smeltier/basic-delivery-system/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its items and payment references.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetDraftByAccountAndRestaurant retrieves the account's open draft at the
	// restaurant. At most one draft per account and restaurant exists; returns
	// errs.ErrObjectNotFound when the account has none.
	GetDraftByAccountAndRestaurant(ctx context.Context, accountID, restaurantID kernel.UUID) (*order.Order, error)
}
