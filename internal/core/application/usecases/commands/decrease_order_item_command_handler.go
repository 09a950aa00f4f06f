package commands

import (
	"context"
)

// DecreaseOrderItemCommandHandler handles the business logic for reducing an
// order line. The aggregate removes the line entirely when the decrement
// matches the held quantity.
type DecreaseOrderItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDecreaseOrderItemCommandHandler creates a handler for line decrements.
// Requires an OrderUoWFactory for transactional persistence.
func NewDecreaseOrderItemCommandHandler(uowFactory OrderUoWFactory) DecreaseOrderItemCommandHandler {
	return DecreaseOrderItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the decrement command.
func (h *DecreaseOrderItemCommandHandler) Handle(ctx context.Context, cmd DecreaseOrderItemCommand) error {
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

	orderRepo := uow.OrderRepository()
	target, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = target.DecreaseItem(cmd.MenuItemID(), cmd.Quantity()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, target); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
