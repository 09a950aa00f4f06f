package restaurant

import (
	"errors"
	"fmt"

	"github.com/Smeltier/basic-delivery-system/internal/pkg/errs"
)

// ErrInvalidRestaurantOperation is returned when an action is attempted in a
// status that does not permit it.
var ErrInvalidRestaurantOperation = errors.New("invalid restaurant operation")

// Status represents whether a restaurant currently accepts orders.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusClosed means the restaurant does not accept orders. Menu edits
	// happen in this status.
	StatusClosed

	// StatusOpen means the restaurant accepts orders.
	StatusOpen
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "Unknown",
		StatusClosed:  "Closed",
		StatusOpen:    "Open",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusClosed: "Closed",
		StatusOpen:   "Open",
	}
}

// StatusFromString parses a status name, typically when rehydrating from
// storage or transport.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status is one of the defined states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
