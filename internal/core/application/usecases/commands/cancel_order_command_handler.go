package commands

import (
	"context"

	"github.com/Smeltier/basic-delivery-system/internal/core/domain/model/payment"
)

// CancelOrderCommandHandler handles the business logic for aborting an order.
// Cancelling also unwinds the order's payments: pending charges are cancelled
// and approved charges are refunded.
type CancelOrderCommandHandler struct {
	uowFactory OrderPaymentUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
// Requires an OrderPaymentUoWFactory because the order and its payments
// change together.
func NewCancelOrderCommandHandler(uowFactory OrderPaymentUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command.
// Cancels the order, then walks its payment references settling each one:
// pending payments are cancelled, approved payments refunded, and already
// terminal payments left alone. All updates occur within one transaction.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	if err = target.Cancel(); err != nil {
		return err
	}

	paymentRepo := uow.PaymentRepository()
	for _, paymentID := range target.Payments() {
		charge, paymentErr := paymentRepo.Get(ctx, paymentID)
		if paymentErr != nil {
			return paymentErr
		}

		if err = h.unwind(charge); err != nil {
			return err
		}

		if err = paymentRepo.Update(ctx, charge); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, target); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h *CancelOrderCommandHandler) unwind(charge *payment.Payment) error {
	switch charge.Status() {
	case payment.Pending:
		return charge.Cancel()
	case payment.Approved:
		return charge.Refund()
	default:
		return nil
	}
}
