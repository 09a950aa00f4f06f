package kernel

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Smeltier/basic-delivery-system/internal/pkg/errs"
	"github.com/Smeltier/basic-delivery-system/internal/pkg/guard"
)

var (
	cpfPattern   = regexp.MustCompile(`^(\d{3}\.\d{3}\.\d{3}-\d{2}|\d{11})$`)
	cpfNonDigits = regexp.MustCompile(`\D`)
)

// ErrCpfIsNotConstructed is returned when validating a zero-value Cpf.
var ErrCpfIsNotConstructed = errs.NewValueIsRequiredError(
	"CPF must be created via NewCpf constructor")

// Cpf is a Brazilian taxpayer identifier. Construction accepts the formatted
// ("123.456.789-09") and bare eleven-digit forms, verifies both check digits,
// rejects repeated-digit sequences, and stores the bare digits.
type Cpf struct {
	value string
	guard guard.ConstructorGuard
}

// NewCpf validates and normalizes a CPF number.
func NewCpf(value string) (Cpf, error) {
	if !cpfPattern.MatchString(value) {
		return Cpf{}, errs.NewValueIsInvalidErrorWithCause(
			"CPF is invalid", fmt.Errorf("%q does not match the CPF format", value))
	}

	clean := cpfNonDigits.ReplaceAllString(value, "")

	if allSameDigit(clean) || !validCpfDigits(clean) {
		return Cpf{}, errs.NewValueIsInvalidErrorWithCause(
			"CPF is invalid", fmt.Errorf("%q fails the check-digit verification", value))
	}

	return Cpf{
		value: clean,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the Cpf came from the constructor.
func (c Cpf) Validate() error {
	return c.guard.Validate(ErrCpfIsNotConstructed)
}

// Value returns the eleven bare digits.
func (c Cpf) Value() string {
	return c.value
}

// IsEqual reports whether two CPFs hold the same digits.
func (c Cpf) IsEqual(other Cpf) bool {
	return c.value == other.value
}

// allSameDigit reports whether every digit in the sequence is identical.
// Sequences like "11111111111" carry valid check digits and must be rejected
// separately.
func allSameDigit(digits string) bool {
	return strings.Count(digits, digits[:1]) == len(digits)
}

func validCpfDigits(cpf string) bool {
	return cpfCheckDigit(cpf[:9], 10) == int(cpf[9]-'0') &&
		cpfCheckDigit(cpf[:10], 11) == int(cpf[10]-'0')
}

func cpfCheckDigit(digits string, weight int) int {
	sum := 0
	for _, r := range digits {
		sum += int(r-'0') * weight
		weight--
	}

	remainder := sum % 11
	if remainder < 2 {
		return 0
	}
	return 11 - remainder
}
