package kernel

import (
	"fmt"

	"github.com/Smeltier/basic-delivery-system/internal/pkg/errs"
)

// Currency identifies the monetary unit of a Money amount. Arithmetic
// between Money values is only defined within a single currency.
//
// The zero value (CurrencyUnknown) is invalid and exists to catch
// uninitialized Currency values coming from persistence or transport.
type Currency int

const (
	// CurrencyUnknown is an invalid, uninitialized currency.
	CurrencyUnknown Currency = iota

	// BRL is the Brazilian real, the platform's default currency.
	BRL

	// USD is the United States dollar.
	USD

	// EUR is the euro.
	EUR
)

func getCurrencyStrings() map[Currency]string {
	return map[Currency]string{
		CurrencyUnknown: "UNKNOWN",
		BRL:             "BRL",
		USD:             "USD",
		EUR:             "EUR",
	}
}

func getValidCurrencyStrings() map[Currency]string {
	//nolint:exhaustive // CurrencyUnknown is intentionally excluded as it's invalid
	return map[Currency]string{
		BRL: "BRL",
		USD: "USD",
		EUR: "EUR",
	}
}

// CurrencyFromString parses the ISO 4217 code of a supported currency.
// Returns an error for unknown or empty codes.
func CurrencyFromString(s string) (Currency, error) {
	for currency, code := range getValidCurrencyStrings() {
		if code == s {
			return currency, nil
		}
	}
	return CurrencyUnknown, errs.NewValueIsInvalidErrorWithCause(
		"currency is invalid", fmt.Errorf("%q is not a supported currency code", s))
}

// Validate checks that the Currency is one of the supported values.
func (c Currency) Validate() error {
	if _, ok := getValidCurrencyStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"currency is invalid", fmt.Errorf("%d is not a valid currency", c))
	}
	return nil
}

// String returns the ISO 4217 code, or "UNKNOWN" for invalid values.
// Implements fmt.Stringer and is safe on any Currency value.
func (c Currency) String() string {
	if str, ok := getCurrencyStrings()[c]; ok {
		return str
	}
	return "UNKNOWN"
}
