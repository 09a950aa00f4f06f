package kernel_test

import (
	"testing"

	"github.com/Smeltier/basic-delivery-system/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, amount string, currency kernel.Currency) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(amount, currency)
	require.NoError(t, err)
	return m
}

func TestNewMoney(t *testing.T) {
	t.Run("should create money with non-negative amount", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.NewFromInt(10), kernel.BRL)

		require.NoError(t, err)
		require.NoError(t, m.Validate())
		assert.Equal(t, kernel.BRL, m.Currency())
		assert.True(t, m.Amount().Equal(decimal.NewFromInt(10)))
	})

	t.Run("should create money with zero amount", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.Zero, kernel.USD)

		require.NoError(t, err)
		assert.True(t, m.IsZero())
		assert.False(t, m.IsPositive())
	})

	t.Run("should fail with negative amount", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.NewFromInt(-1), kernel.BRL)

		require.Error(t, err)
		require.ErrorIs(t, err, kernel.ErrInvalidMoneyOperation)
	})

	t.Run("should fail with invalid currency", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.NewFromInt(10), kernel.CurrencyUnknown)

		require.Error(t, err)
	})

	t.Run("zero value money should fail validation", func(t *testing.T) {
		var m kernel.Money

		require.Error(t, m.Validate())
		assert.Equal(t, kernel.ErrMoneyIsNotConstructed, m.Validate())
	})
}

func TestMoneyFromString(t *testing.T) {
	t.Run("should parse decimal strings", func(t *testing.T) {
		m, err := kernel.MoneyFromString("49.90", kernel.BRL)

		require.NoError(t, err)
		assert.True(t, m.Amount().Equal(decimal.RequireFromString("49.9")))
	})

	t.Run("should fail on non-decimal input", func(t *testing.T) {
		_, err := kernel.MoneyFromString("ten", kernel.BRL)

		require.ErrorIs(t, err, kernel.ErrInvalidMoneyOperation)
	})

	t.Run("should fail on negative input", func(t *testing.T) {
		_, err := kernel.MoneyFromString("-0.01", kernel.BRL)

		require.ErrorIs(t, err, kernel.ErrInvalidMoneyOperation)
	})
}

func TestMoney_Add(t *testing.T) {
	t.Run("should add amounts in the same currency", func(t *testing.T) {
		a := mustMoney(t, "10.50", kernel.BRL)
		b := mustMoney(t, "4.50", kernel.BRL)

		sum, err := a.Add(b)

		require.NoError(t, err)
		assert.True(t, sum.IsEqual(mustMoney(t, "15.00", kernel.BRL)))
	})

	t.Run("should fail with currency mismatch", func(t *testing.T) {
		a := mustMoney(t, "10", kernel.BRL)
		b := mustMoney(t, "10", kernel.USD)

		_, err := a.Add(b)

		require.ErrorIs(t, err, kernel.ErrCurrencyMismatch)
	})

	t.Run("should fail on unconstructed operand", func(t *testing.T) {
		a := mustMoney(t, "10", kernel.BRL)
		var b kernel.Money

		_, err := a.Add(b)

		require.Error(t, err)
	})
}

func TestMoney_Subtract(t *testing.T) {
	t.Run("subtracting money from itself should be zero", func(t *testing.T) {
		m := mustMoney(t, "123.45", kernel.BRL)

		diff, err := m.Subtract(m)

		require.NoError(t, err)
		assert.True(t, diff.IsZero())
	})

	t.Run("should fail with insufficient funds", func(t *testing.T) {
		a := mustMoney(t, "5", kernel.BRL)
		b := mustMoney(t, "5.01", kernel.BRL)

		_, err := a.Subtract(b)

		require.ErrorIs(t, err, kernel.ErrInsufficientFunds)
	})

	t.Run("should fail with currency mismatch", func(t *testing.T) {
		a := mustMoney(t, "10", kernel.EUR)
		b := mustMoney(t, "1", kernel.BRL)

		_, err := a.Subtract(b)

		require.ErrorIs(t, err, kernel.ErrCurrencyMismatch)
	})
}

func TestMoney_Multiply(t *testing.T) {
	t.Run("should multiply by a positive factor", func(t *testing.T) {
		m := mustMoney(t, "10", kernel.BRL)

		result, err := m.Multiply(5)

		require.NoError(t, err)
		assert.True(t, result.IsEqual(mustMoney(t, "50", kernel.BRL)))
	})

	t.Run("should multiply by zero", func(t *testing.T) {
		m := mustMoney(t, "10", kernel.BRL)

		result, err := m.Multiply(0)

		require.NoError(t, err)
		assert.True(t, result.IsZero())
	})

	t.Run("should fail with negative factor", func(t *testing.T) {
		m := mustMoney(t, "10", kernel.BRL)

		_, err := m.Multiply(-1)

		require.ErrorIs(t, err, kernel.ErrInvalidMoneyOperation)
	})

	t.Run("should be distributive over factor addition", func(t *testing.T) {
		unitPrice := mustMoney(t, "7.35", kernel.BRL)

		whole, err := unitPrice.Multiply(2 + 3)
		require.NoError(t, err)

		first, err := unitPrice.Multiply(2)
		require.NoError(t, err)
		second, err := unitPrice.Multiply(3)
		require.NoError(t, err)
		parts, err := first.Add(second)
		require.NoError(t, err)

		assert.True(t, whole.IsEqual(parts))
	})
}

func TestMoney_IsEqual(t *testing.T) {
	t.Run("should ignore trailing zeros", func(t *testing.T) {
		a := mustMoney(t, "10.0", kernel.BRL)
		b := mustMoney(t, "10.00", kernel.BRL)

		assert.True(t, a.IsEqual(b))
	})

	t.Run("should distinguish currencies", func(t *testing.T) {
		a := mustMoney(t, "10", kernel.BRL)
		b := mustMoney(t, "10", kernel.USD)

		assert.False(t, a.IsEqual(b))
	})

	t.Run("should distinguish amounts", func(t *testing.T) {
		a := mustMoney(t, "10", kernel.BRL)
		b := mustMoney(t, "10.01", kernel.BRL)

		assert.False(t, a.IsEqual(b))
	})
}

func TestZeroMoney(t *testing.T) {
	t.Run("should create zero amount in given currency", func(t *testing.T) {
		m := kernel.ZeroMoney(kernel.BRL)

		require.NoError(t, m.Validate())
		assert.True(t, m.IsZero())
		assert.Equal(t, kernel.BRL, m.Currency())
	})

	t.Run("should yield invalid money for unknown currency", func(t *testing.T) {
		m := kernel.ZeroMoney(kernel.CurrencyUnknown)

		require.Error(t, m.Validate())
	})
}
