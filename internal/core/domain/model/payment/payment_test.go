package payment_test

import (
	"errors"
	"testing"
	"time"

	"github.com/Smeltier/basic-delivery-system/internal/core/domain/model/kernel"
	"github.com/Smeltier/basic-delivery-system/internal/core/domain/model/payment"
	"github.com/Smeltier/basic-delivery-system/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testInstant = time.Date(2024, 6, 1, 18, 30, 0, 0, time.UTC)

type stubMethod struct {
	result payment.ProcessingResult
	err    error
	calls  int
}

func (m *stubMethod) Process(_ *payment.Payment) (payment.ProcessingResult, error) {
	m.calls++
	return m.result, m.err
}

func newPendingPayment(t *testing.T) *payment.Payment {
	t.Helper()
	amount, err := kernel.MoneyFromString("58.90", kernel.BRL)
	require.NoError(t, err)
	p, err := payment.NewPayment(kernel.NewUUID(), kernel.NewUUID(), amount, clock.NewFixed(testInstant))
	require.NoError(t, err)
	return p
}

func TestNewPayment(t *testing.T) {
	t.Run("should create a pending payment with stamped creation time", func(t *testing.T) {
		id := kernel.NewUUID()
		orderID := kernel.NewUUID()
		amount, err := kernel.MoneyFromString("58.90", kernel.BRL)
		require.NoError(t, err)

		p, err := payment.NewPayment(id, orderID, amount, clock.NewFixed(testInstant))

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.ID().IsEqual(id))
		assert.True(t, p.OrderID().IsEqual(orderID))
		assert.True(t, p.Amount().IsEqual(amount))
		assert.Equal(t, payment.Pending, p.Status())
		assert.Equal(t, testInstant, p.CreatedAt())
		assert.Nil(t, p.ProcessedAt())
	})

	t.Run("should fail with unconstructed identifiers", func(t *testing.T) {
		var blank kernel.UUID
		amount, err := kernel.MoneyFromString("58.90", kernel.BRL)
		require.NoError(t, err)

		_, err = payment.NewPayment(blank, blank, amount, clock.NewFixed(testInstant))

		require.Error(t, err)
	})

	t.Run("should fail with a non-positive amount", func(t *testing.T) {
		zero := kernel.ZeroMoney(kernel.BRL)

		_, err := payment.NewPayment(kernel.NewUUID(), kernel.NewUUID(), zero, clock.NewFixed(testInstant))

		require.ErrorIs(t, err, payment.ErrInvalidPaymentOperation)
	})

	t.Run("should fail without a clock", func(t *testing.T) {
		amount, err := kernel.MoneyFromString("58.90", kernel.BRL)
		require.NoError(t, err)

		_, err = payment.NewPayment(kernel.NewUUID(), kernel.NewUUID(), amount, nil)

		require.Error(t, err)
	})
}

func TestPayment_Validate(t *testing.T) {
	t.Run("nil payment fails validation", func(t *testing.T) {
		var p *payment.Payment

		require.Error(t, p.Validate())
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var p payment.Payment

		require.Error(t, p.Validate())
	})
}

func TestPayment_Process(t *testing.T) {
	t.Run("approved verdict settles the payment", func(t *testing.T) {
		p := newPendingPayment(t)
		method := &stubMethod{result: payment.ResultApproved}

		require.NoError(t, p.Process(method))

		assert.Equal(t, payment.Approved, p.Status())
		assert.Equal(t, 1, method.calls)
		require.NotNil(t, p.ProcessedAt())
		assert.Equal(t, testInstant, *p.ProcessedAt())
	})

	t.Run("rejected verdict declines the payment", func(t *testing.T) {
		p := newPendingPayment(t)
		method := &stubMethod{result: payment.ResultRejected}

		require.NoError(t, p.Process(method))

		assert.Equal(t, payment.Declined, p.Status())
		require.NotNil(t, p.ProcessedAt())
	})

	t.Run("pending verdict leaves the payment untouched", func(t *testing.T) {
		p := newPendingPayment(t)
		method := &stubMethod{result: payment.ResultPending}

		require.NoError(t, p.Process(method))

		assert.Equal(t, payment.Pending, p.Status())
		assert.Nil(t, p.ProcessedAt())
	})

	t.Run("method errors propagate without changing state", func(t *testing.T) {
		p := newPendingPayment(t)
		boom := errors.New("provider unreachable")
		method := &stubMethod{result: payment.ResultApproved, err: boom}

		err := p.Process(method)

		require.ErrorIs(t, err, boom)
		assert.Equal(t, payment.Pending, p.Status())
		assert.Nil(t, p.ProcessedAt())
	})

	t.Run("settled payments cannot be processed again", func(t *testing.T) {
		p := newPendingPayment(t)
		method := &stubMethod{result: payment.ResultApproved}
		require.NoError(t, p.Process(method))

		err := p.Process(method)

		require.ErrorIs(t, err, payment.ErrInvalidPaymentOperation)
		assert.Equal(t, 1, method.calls)
	})

	t.Run("nil method fails", func(t *testing.T) {
		p := newPendingPayment(t)

		err := p.Process(nil)

		require.ErrorIs(t, err, payment.ErrInvalidPaymentOperation)
	})
}

func TestPayment_Cancel(t *testing.T) {
	t.Run("pending payment is cancelled and stamped", func(t *testing.T) {
		p := newPendingPayment(t)

		require.NoError(t, p.Cancel())

		assert.Equal(t, payment.Cancelled, p.Status())
		require.NotNil(t, p.ProcessedAt())
	})

	t.Run("approved payment cannot be cancelled", func(t *testing.T) {
		p := newPendingPayment(t)
		require.NoError(t, p.Process(&stubMethod{result: payment.ResultApproved}))

		require.ErrorIs(t, p.Cancel(), payment.ErrInvalidPaymentOperation)
		assert.Equal(t, payment.Approved, p.Status())
	})
}

func TestPayment_Refund(t *testing.T) {
	t.Run("approved payment is refunded", func(t *testing.T) {
		p := newPendingPayment(t)
		require.NoError(t, p.Process(&stubMethod{result: payment.ResultApproved}))

		require.NoError(t, p.Refund())

		assert.Equal(t, payment.Refunded, p.Status())
	})

	t.Run("pending payment cannot be refunded", func(t *testing.T) {
		p := newPendingPayment(t)

		require.ErrorIs(t, p.Refund(), payment.ErrInvalidPaymentOperation)
		assert.Equal(t, payment.Pending, p.Status())
	})
}

func TestRestorePayment(t *testing.T) {
	t.Run("should rehydrate the complete state", func(t *testing.T) {
		amount, err := kernel.MoneyFromString("58.90", kernel.BRL)
		require.NoError(t, err)
		processedAt := testInstant.Add(time.Minute)

		p, err := payment.RestorePayment(
			kernel.NewUUID(), kernel.NewUUID(), amount,
			payment.Approved, testInstant, &processedAt,
			clock.NewFixed(testInstant))

		require.NoError(t, err)
		assert.Equal(t, payment.Approved, p.Status())
		assert.Equal(t, testInstant, p.CreatedAt())
		require.NotNil(t, p.ProcessedAt())
		assert.Equal(t, processedAt, *p.ProcessedAt())
	})

	t.Run("should reject an invalid status", func(t *testing.T) {
		amount, err := kernel.MoneyFromString("58.90", kernel.BRL)
		require.NoError(t, err)

		_, err = payment.RestorePayment(
			kernel.NewUUID(), kernel.NewUUID(), amount,
			payment.StatusUnknown, testInstant, nil,
			clock.NewFixed(testInstant))

		require.Error(t, err)
	})
}
