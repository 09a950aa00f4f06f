package commands

import (
	"context"

	"github.com/Smeltier/basic-delivery-system/internal/core/domain/model/account"
	"github.com/Smeltier/basic-delivery-system/internal/core/domain/model/restaurant"
)

// CreateRestaurantCommandHandler handles the business logic for restaurant
// registration. The owner account receives the restaurant owner role as part
// of the same transaction.
type CreateRestaurantCommandHandler struct {
	uowFactory AccountRestaurantUoWFactory
}

// NewCreateRestaurantCommandHandler creates a handler for restaurant
// registration. Requires an AccountRestaurantUoWFactory because the owner
// account and the restaurant change together.
func NewCreateRestaurantCommandHandler(uowFactory AccountRestaurantUoWFactory) CreateRestaurantCommandHandler {
	return CreateRestaurantCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the restaurant registration command.
// Loads the owner account, grants it the restaurant owner role, and persists
// both aggregates atomically.
func (h *CreateRestaurantCommandHandler) Handle(ctx context.Context, cmd CreateRestaurantCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	accountRepo := uow.AccountRepository()
	owner, err := accountRepo.Get(ctx, cmd.OwnerID())
	if err != nil {
		return err
	}

	if err = owner.AddRole(account.RestaurantOwner); err != nil {
		return err
	}

	newRestaurant, err := restaurant.NewRestaurant(
		cmd.RestaurantID(), cmd.OwnerID(), cmd.Name(), cmd.Currency(), cmd.Address(), cmd.OpeningHours())
	if err != nil {
		return err
	}

	if err = accountRepo.Update(ctx, owner); err != nil {
		return err
	}

	if err = uow.RestaurantRepository().Add(ctx, newRestaurant); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
