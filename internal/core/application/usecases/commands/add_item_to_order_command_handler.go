package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/Smeltier/basic-delivery-system/internal/core/domain/model/kernel"
	"github.com/Smeltier/basic-delivery-system/internal/core/domain/model/order"
	"github.com/Smeltier/basic-delivery-system/internal/core/domain/model/restaurant"
	"github.com/Smeltier/basic-delivery-system/internal/core/ports"
	"github.com/Smeltier/basic-delivery-system/internal/pkg/clock"
	"github.com/Smeltier/basic-delivery-system/internal/pkg/errs"
)

var (
	// ErrRestaurantIsClosed is returned when items are ordered from a
	// restaurant that is not accepting orders.
	ErrRestaurantIsClosed = errors.New("restaurant is closed")

	// ErrMenuItemIsNotAvailable is returned when the requested menu item is
	// deactivated.
	ErrMenuItemIsNotAvailable = errors.New("menu item is not available")
)

// AddItemToOrderCommandHandler handles the business logic for building a
// draft order. The account's draft at the restaurant is loaded or, on first
// item, opened in the restaurant currency; the menu item's name, description,
// category and price are snapshotted into the line.
type AddItemToOrderCommandHandler struct {
	uowFactory OrderingUoWFactory
	clock      clock.Clock
}

// NewAddItemToOrderCommandHandler creates a handler for draft item additions.
// The clock stamps the creation time of newly opened drafts.
func NewAddItemToOrderCommandHandler(uowFactory OrderingUoWFactory, clk clock.Clock) AddItemToOrderCommandHandler {
	return AddItemToOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clk,
	}
}

// Handle processes the item addition command.
// Verifies the account may order and the restaurant is open, resolves the
// menu item, and merges the quantity into the draft.
func (h *AddItemToOrderCommandHandler) Handle(ctx context.Context, cmd AddItemToOrderCommand) error {
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

	client, err := uow.AccountRepository().Get(ctx, cmd.AccountID())
	if err != nil {
		return err
	}

	if err = client.AssertCanPlaceOrder(); err != nil {
		return err
	}

	seller, err := uow.RestaurantRepository().Get(ctx, cmd.RestaurantID())
	if err != nil {
		return err
	}

	if !seller.IsOpen() {
		return fmt.Errorf("%w: %s", ErrRestaurantIsClosed, seller.ID())
	}

	item, err := seller.FindMenuItem(cmd.MenuItemID())
	if err != nil {
		return err
	}

	if !item.IsActive() {
		return fmt.Errorf("%w: %s", ErrMenuItemIsNotAvailable, item.ID())
	}

	orderRepo := uow.OrderRepository()
	draft, isNew, err := h.findOrOpenDraft(ctx, orderRepo, cmd, seller)
	if err != nil {
		return err
	}

	if err = draft.AddItem(
		item.ID(), item.Name(), item.Description(), item.Category(), item.Price(), cmd.Quantity()); err != nil {
		return err
	}

	if isNew {
		err = orderRepo.Add(ctx, draft)
	} else {
		err = orderRepo.Update(ctx, draft)
	}
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h *AddItemToOrderCommandHandler) findOrOpenDraft(
	ctx context.Context,
	orderRepo ports.OrderRepository,
	cmd AddItemToOrderCommand,
	seller *restaurant.Restaurant,
) (*order.Order, bool, error) {
	draft, err := orderRepo.GetDraftByAccountAndRestaurant(ctx, cmd.AccountID(), cmd.RestaurantID())
	if err == nil {
		return draft, false, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, false, err
	}

	draft, err = order.NewOrder(
		kernel.NewUUID(), cmd.RestaurantID(), cmd.AccountID(), seller.Currency(), h.clock)
	if err != nil {
		return nil, false, err
	}
	return draft, true, nil
}
