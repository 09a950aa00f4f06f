package kernel

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Smeltier/basic-delivery-system/internal/pkg/errs"
	"github.com/Smeltier/basic-delivery-system/internal/pkg/guard"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ErrEmailIsNotConstructed is returned when validating a zero-value Email.
var ErrEmailIsNotConstructed = errs.NewValueIsRequiredError(
	"email must be created via NewEmail constructor")

// Email is a syntactically validated, lower-cased e-mail address.
type Email struct {
	value string
	guard guard.ConstructorGuard
}

// NewEmail validates and normalizes an e-mail address.
func NewEmail(value string) (Email, error) {
	value = strings.TrimSpace(value)

	if !emailPattern.MatchString(value) {
		return Email{}, errs.NewValueIsInvalidErrorWithCause(
			"email is invalid", fmt.Errorf("%q is not a valid e-mail address", value))
	}

	return Email{
		value: strings.ToLower(value),
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the Email came from the constructor.
func (e Email) Validate() error {
	return e.guard.Validate(ErrEmailIsNotConstructed)
}

// Value returns the normalized address.
func (e Email) Value() string {
	return e.value
}

// IsEqual reports whether two addresses are the same after normalization.
func (e Email) IsEqual(other Email) bool {
	return e.value == other.value
}
