package commands

import (
	"context"
)

// ChangeDeliveryAddressCommandHandler handles the business logic for pointing
// a draft order at a delivery destination.
type ChangeDeliveryAddressCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewChangeDeliveryAddressCommandHandler creates a handler for destination
// changes. Requires an OrderUoWFactory for transactional persistence.
func NewChangeDeliveryAddressCommandHandler(uowFactory OrderUoWFactory) ChangeDeliveryAddressCommandHandler {
	return ChangeDeliveryAddressCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the destination change command.
func (h *ChangeDeliveryAddressCommandHandler) Handle(ctx context.Context, cmd ChangeDeliveryAddressCommand) error {
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

	if err = target.ChangeDeliveryAddress(cmd.Address(), cmd.DeliveryFee()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, target); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
