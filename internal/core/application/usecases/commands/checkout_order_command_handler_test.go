package commands_test

import (
	"testing"

	"github.com/Smeltier/basic-delivery-system/internal/core/application/usecases/commands"
	"github.com/Smeltier/basic-delivery-system/internal/core/domain/model/kernel"
	"github.com/Smeltier/basic-delivery-system/internal/core/domain/model/order"
	"github.com/Smeltier/basic-delivery-system/internal/core/domain/model/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stretchr/testify/mock"
)

func TestNewCheckoutOrderCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	paymentID := kernel.NewUUID()
	cmd, err := commands.NewCheckoutOrderCommand(orderID, paymentID)
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, paymentID, cmd.PaymentID())
}

func TestNewCheckoutOrderCommand_UnconstructedIDs(t *testing.T) {
	_, err := commands.NewCheckoutOrderCommand(kernel.UUID{}, kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestCheckoutOrderCommandHandler_Handle_ApprovedCharge(t *testing.T) {
	ctx := t.Context()
	target := checkoutReadyOrder(t)
	paymentID := kernel.NewUUID()
	cmd, _ := commands.NewCheckoutOrderCommand(target.ID(), paymentID)

	orderRepo := new(MockOrderRepository)
	paymentRepo := new(MockPaymentRepository)
	method := new(MockPaymentMethod)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, target.ID()).Return(target, nil).Once(),
		method.On("Process", mock.AnythingOfType("*payment.Payment")).
			Return(payment.ResultApproved, nil).Once(),
		uow.On("PaymentRepository").Return(paymentRepo).Once(),
		paymentRepo.On("Add", mock.Anything, mock.AnythingOfType("*payment.Payment")).
			Return(nil).Once(),
		orderRepo.On("Update", mock.Anything, target).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderPaymentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCheckoutOrderCommandHandler(factory, method, testClock())
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, order.Paid, target.Status())
	require.Len(t, target.Payments(), 1)
	assert.True(t, target.Payments()[0].IsEqual(paymentID))

	// items 2 x 49.90 plus the 8.00 delivery fee
	added := paymentRepo.Calls[0].Arguments.Get(1).(*payment.Payment)
	assert.True(t, added.Amount().IsEqual(brl(t, "107.80")))
	assert.Equal(t, payment.Approved, added.Status())
	assert.True(t, added.OrderID().IsEqual(target.ID()))

	orderRepo.AssertExpectations(t)
	paymentRepo.AssertExpectations(t)
	method.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCheckoutOrderCommandHandler_Handle_PendingVerdictKeepsPaymentPending(t *testing.T) {
	ctx := t.Context()
	target := checkoutReadyOrder(t)
	cmd, _ := commands.NewCheckoutOrderCommand(target.ID(), kernel.NewUUID())

	orderRepo := new(MockOrderRepository)
	paymentRepo := new(MockPaymentRepository)
	method := new(MockPaymentMethod)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, target.ID()).Return(target, nil).Once(),
		method.On("Process", mock.AnythingOfType("*payment.Payment")).
			Return(payment.ResultPending, nil).Once(),
		uow.On("PaymentRepository").Return(paymentRepo).Once(),
		paymentRepo.On("Add", mock.Anything, mock.AnythingOfType("*payment.Payment")).
			Return(nil).Once(),
		orderRepo.On("Update", mock.Anything, target).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderPaymentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCheckoutOrderCommandHandler(factory, method, testClock())
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	added := paymentRepo.Calls[0].Arguments.Get(1).(*payment.Payment)
	assert.Equal(t, payment.Pending, added.Status())
	uow.AssertExpectations(t)
}

func TestCheckoutOrderCommandHandler_Handle_RejectedChargeRollsBack(t *testing.T) {
	ctx := t.Context()
	target := checkoutReadyOrder(t)
	cmd, _ := commands.NewCheckoutOrderCommand(target.ID(), kernel.NewUUID())

	orderRepo := new(MockOrderRepository)
	method := new(MockPaymentMethod)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, target.ID()).Return(target, nil).Once(),
		method.On("Process", mock.AnythingOfType("*payment.Payment")).
			Return(payment.ResultRejected, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderPaymentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCheckoutOrderCommandHandler(factory, method, testClock())
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrPaymentDeclined)

	// Neither the paid order nor the declined payment may be persisted.
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "PaymentRepository")
	uow.AssertNotCalled(t, "Commit", mock.Anything)

	orderRepo.AssertExpectations(t)
	method.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCheckoutOrderCommandHandler_Handle_DraftWithoutAddress(t *testing.T) {
	ctx := t.Context()
	target := draftOrder(t) // no delivery address set
	cmd, _ := commands.NewCheckoutOrderCommand(target.ID(), kernel.NewUUID())

	orderRepo := new(MockOrderRepository)
	method := new(MockPaymentMethod)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, target.ID()).Return(target, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderPaymentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCheckoutOrderCommandHandler(factory, method, testClock())
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrInvalidOrder)
	uow.AssertExpectations(t)
}

func TestCheckoutOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CheckoutOrderCommand{} // not constructed properly
	factory := new(MockOrderPaymentUoWFactory)
	h := commands.NewCheckoutOrderCommandHandler(factory, new(MockPaymentMethod), testClock())
	require.Error(t, h.Handle(ctx, cmd))
}
