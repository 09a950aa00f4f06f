package kernel

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Smeltier/basic-delivery-system/internal/pkg/errs"
	"github.com/Smeltier/basic-delivery-system/internal/pkg/guard"
)

var zipCodePattern = regexp.MustCompile(`^\d{5}-?\d{3}$`)

// ErrZipCodeIsNotConstructed is returned when validating a zero-value ZipCode.
var ErrZipCodeIsNotConstructed = errs.NewValueIsRequiredError(
	"zip code must be created via NewZipCode constructor")

// ZipCode is a Brazilian postal code (CEP). The value is stored normalized
// without the hyphen; String renders the conventional "xxxxx-xxx" form.
type ZipCode struct {
	value string
	guard guard.ConstructorGuard
}

// NewZipCode validates and normalizes a CEP. Accepts "01310-100" and
// "01310100"; everything else fails.
func NewZipCode(value string) (ZipCode, error) {
	value = strings.TrimSpace(value)

	if !zipCodePattern.MatchString(value) {
		return ZipCode{}, errs.NewValueIsInvalidErrorWithCause(
			"zip code is invalid", fmt.Errorf("%q does not match the CEP format", value))
	}

	return ZipCode{
		value: strings.ReplaceAll(value, "-", ""),
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the ZipCode came from the constructor.
func (z ZipCode) Validate() error {
	return z.guard.Validate(ErrZipCodeIsNotConstructed)
}

// Value returns the normalized eight-digit code.
func (z ZipCode) Value() string {
	return z.value
}

// IsEqual reports whether two zip codes hold the same normalized value.
func (z ZipCode) IsEqual(other ZipCode) bool {
	return z.value == other.value
}

// String renders the code as "xxxxx-xxx".
func (z ZipCode) String() string {
	if len(z.value) != 8 {
		return z.value
	}
	return z.value[:5] + "-" + z.value[5:]
}
