package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/Smeltier/basic-delivery-system/internal/core/domain/model/payment"
	"github.com/Smeltier/basic-delivery-system/internal/pkg/clock"
)

// ErrPaymentDeclined is returned when the payment method rejects the charge
// at checkout. The whole checkout rolls back and the order stays a draft.
var ErrPaymentDeclined = errors.New("payment was declined")

// CheckoutOrderCommandHandler handles the business logic for paying a draft
// order. The payment charges the item total plus the delivery fee; a pending
// verdict from the payment method is retried later by the processing job.
type CheckoutOrderCommandHandler struct {
	uowFactory OrderPaymentUoWFactory
	method     payment.Method
	clock      clock.Clock
}

// NewCheckoutOrderCommandHandler creates a handler for order checkout.
// The payment method settles the charge; the clock stamps payment creation.
func NewCheckoutOrderCommandHandler(
	uowFactory OrderPaymentUoWFactory,
	method payment.Method,
	clk clock.Clock,
) CheckoutOrderCommandHandler {
	return CheckoutOrderCommandHandler{
		uowFactory: uowFactory,
		method:     method,
		clock:      clk,
	}
}

// Handle processes the checkout command.
// Registers the payment reference on the draft, marks the order paid, creates
// the pending payment and settles it through the method. Order and payment
// are persisted atomically; a declined charge aborts the checkout with
// ErrPaymentDeclined and nothing is persisted.
func (h *CheckoutOrderCommandHandler) Handle(ctx context.Context, cmd CheckoutOrderCommand) error {
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

	total, err := target.Total()
	if err != nil {
		return err
	}

	charge, err := total.Add(target.DeliveryFee())
	if err != nil {
		return err
	}

	if err = target.RegisterPayment(cmd.PaymentID()); err != nil {
		return err
	}

	if err = target.MarkAsPaid(); err != nil {
		return err
	}

	newPayment, err := payment.NewPayment(cmd.PaymentID(), cmd.OrderID(), charge, h.clock)
	if err != nil {
		return err
	}

	if err = newPayment.Process(h.method); err != nil {
		return err
	}

	// A declined charge must not leave the order marked as paid. Aborting
	// here lets the deferred rollback discard the whole checkout, so the
	// order stays a draft and can be checked out again.
	if newPayment.Status() == payment.Declined {
		return fmt.Errorf("%w: payment %s for order %s", ErrPaymentDeclined, newPayment.ID(), cmd.OrderID())
	}

	if err = uow.PaymentRepository().Add(ctx, newPayment); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, target); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
