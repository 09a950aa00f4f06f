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

func TestNewCancelOrderCommand(t *testing.T) {
	orderID := kernel.NewUUID()
	cmd, err := commands.NewCancelOrderCommand(orderID)
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())

	_, err = commands.NewCancelOrderCommand(kernel.UUID{})
	require.Error(t, err)
}

func TestCancelOrderCommandHandler_Handle_UnwindsPayments(t *testing.T) {
	ctx := t.Context()
	target := checkoutReadyOrder(t)

	pendingCharge := pendingPayment(t)
	require.NoError(t, target.RegisterPayment(pendingCharge.ID()))

	approvedCharge, err := payment.RestorePayment(
		kernel.NewUUID(), target.ID(), brl(t, "107.80"),
		payment.Approved, testInstant, &testInstant, testClock())
	require.NoError(t, err)
	require.NoError(t, target.RegisterPayment(approvedCharge.ID()))
	require.NoError(t, target.MarkAsPaid())

	cmd, _ := commands.NewCancelOrderCommand(target.ID())

	orderRepo := new(MockOrderRepository)
	paymentRepo := new(MockPaymentRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, target.ID()).Return(target, nil).Once(),
		uow.On("PaymentRepository").Return(paymentRepo).Once(),
		paymentRepo.On("Get", mock.Anything, pendingCharge.ID()).Return(pendingCharge, nil).Once(),
		paymentRepo.On("Update", mock.Anything, pendingCharge).Return(nil).Once(),
		paymentRepo.On("Get", mock.Anything, approvedCharge.ID()).Return(approvedCharge, nil).Once(),
		paymentRepo.On("Update", mock.Anything, approvedCharge).Return(nil).Once(),
		orderRepo.On("Update", mock.Anything, target).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderPaymentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.Cancelled, target.Status())
	assert.NotNil(t, target.CancelledAt())
	assert.Equal(t, payment.Cancelled, pendingCharge.Status())
	assert.Equal(t, payment.Refunded, approvedCharge.Status())
	orderRepo.AssertExpectations(t)
	paymentRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_DraftWithoutPayments(t *testing.T) {
	ctx := t.Context()
	target := draftOrder(t)
	cmd, _ := commands.NewCancelOrderCommand(target.ID())

	orderRepo := new(MockOrderRepository)
	paymentRepo := new(MockPaymentRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, target.ID()).Return(target, nil).Once(),
		uow.On("PaymentRepository").Return(paymentRepo).Once(),
		orderRepo.On("Update", mock.Anything, target).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderPaymentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, order.Cancelled, target.Status())
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_DeliveredOrder(t *testing.T) {
	ctx := t.Context()
	target := checkoutReadyOrder(t)
	require.NoError(t, target.MarkAsPaid())
	require.NoError(t, target.Confirm())
	require.NoError(t, target.MarkAsDelivered())
	cmd, _ := commands.NewCancelOrderCommand(target.ID())

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, target.ID()).Return(target, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderPaymentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrInvalidOrder)
	uow.AssertExpectations(t)
}
