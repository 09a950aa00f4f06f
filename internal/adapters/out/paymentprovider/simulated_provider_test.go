package paymentprovider

import (
	"log/slog"
	"testing"

	"github.com/Smeltier/basic-delivery-system/internal/core/domain/model/kernel"
	"github.com/Smeltier/basic-delivery-system/internal/core/domain/model/payment"
	"github.com/Smeltier/basic-delivery-system/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulatedProvider_Process(t *testing.T) {
	provider := NewSimulatedProvider(slog.Default())

	t.Run("approves a pending charge", func(t *testing.T) {
		amount, err := kernel.MoneyFromString("107.80", kernel.BRL)
		require.NoError(t, err)

		charge, err := payment.NewPayment(kernel.NewUUID(), kernel.NewUUID(), amount, clock.NewSystem())
		require.NoError(t, err)

		result, err := provider.Process(charge)

		require.NoError(t, err)
		assert.Equal(t, payment.ResultApproved, result)
	})

	t.Run("rejects an unconstructed charge", func(t *testing.T) {
		var charge payment.Payment

		_, err := provider.Process(&charge)

		assert.ErrorIs(t, err, payment.ErrPaymentIsNotConstructed)
	})
}
