package kernel

import (
	"errors"
	"fmt"

	"github.com/Smeltier/basic-delivery-system/internal/pkg/errs"
	"github.com/Smeltier/basic-delivery-system/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrMoneyIsNotConstructed is returned when validating a zero-value Money.
	ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
		"Money must be created via NewMoney, MoneyFromString, or ZeroMoney")

	// ErrCurrencyMismatch is returned by arithmetic between different currencies,
	// and by order operations receiving a price or fee in a foreign currency.
	ErrCurrencyMismatch = errors.New("currency mismatch")

	// ErrInvalidMoneyOperation is returned on negative construction amounts
	// and negative multiplication factors.
	ErrInvalidMoneyOperation = errors.New("invalid money operation")

	// ErrInsufficientFunds is returned when a subtraction would go negative.
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// Money is an immutable, non-negative decimal amount tagged with a Currency.
// All arithmetic is currency-checked: operations between different currencies
// fail with ErrCurrencyMismatch, and no operation can produce a negative
// amount. Comparisons use decimal semantics, so 10.0 and 10.00 are equal.
//
// The zero value is invalid; construct through NewMoney, MoneyFromString or
// ZeroMoney.
type Money struct { //nolint:recvcheck //using for validation
	amount   decimal.Decimal
	currency Currency
	guard    guard.ConstructorGuard
}

// NewMoney creates a Money from a decimal amount and currency.
// Fails with ErrInvalidMoneyOperation if the amount is negative, and with a
// validation error if the currency is not supported.
func NewMoney(amount decimal.Decimal, currency Currency) (Money, error) {
	if err := currency.Validate(); err != nil {
		return Money{}, err
	}

	if amount.IsNegative() {
		return Money{}, fmt.Errorf("%w: amount %s is negative", ErrInvalidMoneyOperation, amount)
	}

	return Money{
		amount:   amount,
		currency: currency,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// MoneyFromString parses a decimal string ("49.90") into a Money.
// Used by the transport and persistence adapters.
func MoneyFromString(amount string, currency Currency) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %s is not a decimal amount", ErrInvalidMoneyOperation, amount)
	}
	return NewMoney(d, currency)
}

// ZeroMoney returns the zero amount in the given currency.
// An unsupported currency yields a Money that fails Validate.
func ZeroMoney(currency Currency) Money {
	m, _ := NewMoney(decimal.Zero, currency)
	return m
}

// Validate checks that the Money was built through a constructor.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Amount returns the decimal amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the currency tag.
func (m Money) Currency() Currency {
	return m.currency
}

// Add returns the sum of two amounts in the same currency.
// Fails with ErrCurrencyMismatch if the currencies differ.
func (m Money) Add(other Money) (Money, error) {
	if err := m.ensureSameCurrency(other); err != nil {
		return Money{}, err
	}

	return NewMoney(m.amount.Add(other.amount), m.currency)
}

// Subtract returns the difference of two amounts in the same currency.
// Fails with ErrCurrencyMismatch if the currencies differ and with
// ErrInsufficientFunds if the result would be negative.
func (m Money) Subtract(other Money) (Money, error) {
	if err := m.ensureSameCurrency(other); err != nil {
		return Money{}, err
	}

	if m.amount.LessThan(other.amount) {
		return Money{}, fmt.Errorf("%w: %s is less than %s", ErrInsufficientFunds, m, other)
	}

	return NewMoney(m.amount.Sub(other.amount), m.currency)
}

// Multiply scales the amount by a non-negative integer factor.
// Fails with ErrInvalidMoneyOperation if the factor is negative.
func (m Money) Multiply(factor int) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}

	if factor < 0 {
		return Money{}, fmt.Errorf("%w: factor %d is negative", ErrInvalidMoneyOperation, factor)
	}

	return NewMoney(m.amount.Mul(decimal.NewFromInt(int64(factor))), m.currency)
}

// IsZero reports whether the amount equals zero, regardless of scale.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// IsEqual reports value equality: same currency and numerically equal
// amounts. Trailing zeros are insignificant.
func (m Money) IsEqual(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

// String renders the amount followed by its currency code, e.g. "49.9 BRL".
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.amount, m.currency)
}

func (m Money) ensureSameCurrency(other Money) error {
	if err := m.Validate(); err != nil {
		return err
	}
	if err := other.Validate(); err != nil {
		return err
	}

	if m.currency != other.currency {
		return fmt.Errorf("%w: %s and %s", ErrCurrencyMismatch, m.currency, other.currency)
	}
	return nil
}
