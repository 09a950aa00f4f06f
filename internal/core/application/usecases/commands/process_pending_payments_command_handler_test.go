package commands_test

import (
	"errors"
	"testing"

	"github.com/Smeltier/basic-delivery-system/internal/core/application/usecases/commands"
	"github.com/Smeltier/basic-delivery-system/internal/core/domain/model/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stretchr/testify/mock"
)

func TestNewProcessPendingPaymentsCommand(t *testing.T) {
	cmd := commands.NewProcessPendingPaymentsCommand()
	require.NoError(t, cmd.Validate())

	var unconstructed commands.ProcessPendingPaymentsCommand
	require.Error(t, unconstructed.Validate())
}

func TestProcessPendingPaymentsCommandHandler_Handle_SettlesCharges(t *testing.T) {
	ctx := t.Context()
	first := pendingPayment(t)
	second := pendingPayment(t)
	cmd := commands.NewProcessPendingPaymentsCommand()

	method := new(MockPaymentMethod)
	method.On("Process", first).Return(payment.ResultApproved, nil).Once()
	method.On("Process", second).Return(payment.ResultRejected, nil).Once()

	repo := new(MockPaymentRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PaymentRepository").Return(repo).Once(),
		repo.On("GetAllInPendingStatus", mock.Anything).
			Return([]*payment.Payment{first, second}, nil).Once(),
		repo.On("Update", mock.Anything, first).Return(nil).Once(),
		repo.On("Update", mock.Anything, second).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPaymentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewProcessPendingPaymentsCommandHandler(factory, method)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, payment.Approved, first.Status())
	assert.NotNil(t, first.ProcessedAt())
	assert.Equal(t, payment.Declined, second.Status())
	method.AssertExpectations(t)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestProcessPendingPaymentsCommandHandler_Handle_ChargeStaysPending(t *testing.T) {
	ctx := t.Context()
	charge := pendingPayment(t)
	cmd := commands.NewProcessPendingPaymentsCommand()

	method := new(MockPaymentMethod)
	method.On("Process", charge).Return(payment.ResultPending, nil).Once()

	repo := new(MockPaymentRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PaymentRepository").Return(repo).Once(),
		repo.On("GetAllInPendingStatus", mock.Anything).
			Return([]*payment.Payment{charge}, nil).Once(),
		repo.On("Update", mock.Anything, charge).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPaymentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewProcessPendingPaymentsCommandHandler(factory, method)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, payment.Pending, charge.Status())
	assert.Nil(t, charge.ProcessedAt())
	uow.AssertExpectations(t)
}

func TestProcessPendingPaymentsCommandHandler_Handle_NothingPending(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewProcessPendingPaymentsCommand()

	method := new(MockPaymentMethod)
	repo := new(MockPaymentRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PaymentRepository").Return(repo).Once(),
		repo.On("GetAllInPendingStatus", mock.Anything).
			Return([]*payment.Payment{}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPaymentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewProcessPendingPaymentsCommandHandler(factory, method)
	require.NoError(t, h.Handle(ctx, cmd))
	method.AssertNotCalled(t, "Process", mock.Anything)
	uow.AssertExpectations(t)
}

func TestProcessPendingPaymentsCommandHandler_Handle_MethodFailure(t *testing.T) {
	ctx := t.Context()
	charge := pendingPayment(t)
	cmd := commands.NewProcessPendingPaymentsCommand()

	providerErr := errors.New("provider unreachable")
	method := new(MockPaymentMethod)
	method.On("Process", charge).Return(payment.ResultPending, providerErr).Once()

	repo := new(MockPaymentRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PaymentRepository").Return(repo).Once(),
		repo.On("GetAllInPendingStatus", mock.Anything).
			Return([]*payment.Payment{charge}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPaymentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewProcessPendingPaymentsCommandHandler(factory, method)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, providerErr)
	assert.Equal(t, payment.Pending, charge.Status())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}
