package commands

import (
	"context"

	"github.com/Smeltier/basic-delivery-system/internal/core/domain/model/payment"
)

// ProcessPendingPaymentsCommandHandler retries settlement of every pending
// payment through the configured payment method. Charges the method still
// reports as pending stay pending for the next run.
type ProcessPendingPaymentsCommandHandler struct {
	uowFactory PaymentUoWFactory
	method     payment.Method
}

// NewProcessPendingPaymentsCommandHandler creates a handler for the pending
// payment retry batch.
func NewProcessPendingPaymentsCommandHandler(
	uowFactory PaymentUoWFactory,
	method payment.Method,
) ProcessPendingPaymentsCommandHandler {
	return ProcessPendingPaymentsCommandHandler{
		uowFactory: uowFactory,
		method:     method,
	}
}

// Handle processes the retry command.
// Retrieves all pending payments and settles each through the method within a
// single transaction.
func (h *ProcessPendingPaymentsCommandHandler) Handle(ctx context.Context, cmd ProcessPendingPaymentsCommand) error {
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

	paymentRepo := uow.PaymentRepository()
	pending, err := paymentRepo.GetAllInPendingStatus(ctx)
	if err != nil {
		return err
	}

	for _, charge := range pending {
		if err = charge.Process(h.method); err != nil {
			return err
		}

		if err = paymentRepo.Update(ctx, charge); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
