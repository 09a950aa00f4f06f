package order

import (
	"errors"
	"fmt"

	"github.com/Smeltier/basic-delivery-system/internal/pkg/errs"
)

// ErrInvalidOrder is returned when a mutation is attempted in a status that
// does not permit it, or when an operation references an item the order does
// not hold.
var ErrInvalidOrder = errors.New("invalid order operation")

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions:
//
//	Draft ──> Paid ──> Confirmed ──> Delivered
//	  │         │          │
//	  └─────────┴──────────┴──> Cancelled
//
// Delivered and Cancelled are terminal; no transition leaves them.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// Draft is the initial status. Draft orders accept item, address and
	// payment-reference edits.
	Draft

	// Paid indicates the order has been paid and is waiting for the
	// restaurant to confirm it.
	Paid

	// Confirmed indicates the restaurant accepted the order and is
	// preparing it.
	Confirmed

	// Delivered indicates the order reached the client. Terminal.
	Delivered

	// Cancelled indicates the order was aborted before delivery. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "Unknown",
		Draft:         "Draft",
		Paid:          "Paid",
		Confirmed:     "Confirmed",
		Delivered:     "Delivered",
		Cancelled:     "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		Draft:     "Draft",
		Paid:      "Paid",
		Confirmed: "Confirmed",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
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

// Validate checks that the Status is one of the defined lifecycle states.
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

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// ValidateCanEdit checks that the status still accepts draft edits
// (item changes, delivery address, payment registration) without
// performing any transition.
func (s Status) ValidateCanEdit() error {
	if s != Draft {
		return fmt.Errorf("%w: cannot edit order in status %s", ErrInvalidOrder, s)
	}
	return nil
}

// Pay transitions the status to Paid.
//
// Valid transitions:
//   - Draft -> Paid
func (s Status) Pay() (Status, error) {
	if s != Draft {
		return 0, fmt.Errorf("%w: order in status %s cannot be paid", ErrInvalidOrder, s)
	}
	return Paid, nil
}

// Confirm transitions the status to Confirmed.
//
// Valid transitions:
//   - Paid -> Confirmed
func (s Status) Confirm() (Status, error) {
	if s != Paid {
		return 0, fmt.Errorf("%w: only paid orders can be confirmed, status is %s", ErrInvalidOrder, s)
	}
	return Confirmed, nil
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - Confirmed -> Delivered
func (s Status) Deliver() (Status, error) {
	if s != Confirmed {
		return 0, fmt.Errorf("%w: order in status %s cannot be delivered", ErrInvalidOrder, s)
	}
	return Delivered, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions: any state except Delivered. Cancelling an already
// cancelled order is permitted and keeps it cancelled.
func (s Status) Cancel() (Status, error) {
	if s == Delivered {
		return 0, fmt.Errorf("%w: delivered orders cannot be cancelled", ErrInvalidOrder)
	}
	return Cancelled, nil
}
