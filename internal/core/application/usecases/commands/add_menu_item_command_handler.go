package commands

import (
	"context"
)

// AddMenuItemCommandHandler handles the business logic for extending a
// restaurant menu. The aggregate enforces that edits happen while closed and
// that the price matches the restaurant currency.
type AddMenuItemCommandHandler struct {
	uowFactory RestaurantUoWFactory
}

// NewAddMenuItemCommandHandler creates a handler for menu additions.
// Requires a RestaurantUoWFactory for transactional persistence.
func NewAddMenuItemCommandHandler(uowFactory RestaurantUoWFactory) AddMenuItemCommandHandler {
	return AddMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the menu addition command.
func (h *AddMenuItemCommandHandler) Handle(ctx context.Context, cmd AddMenuItemCommand) error {
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

	restaurantRepo := uow.RestaurantRepository()
	target, err := restaurantRepo.Get(ctx, cmd.RestaurantID())
	if err != nil {
		return err
	}

	if err = target.AddMenuItem(
		cmd.MenuItemID(), cmd.Name(), cmd.Description(), cmd.Category(), cmd.Price()); err != nil {
		return err
	}

	if err = restaurantRepo.Update(ctx, target); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
