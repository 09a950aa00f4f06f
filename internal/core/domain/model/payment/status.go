package payment

import (
	"errors"
	"fmt"

	"github.com/Smeltier/basic-delivery-system/internal/pkg/errs"
)

// ErrInvalidPaymentOperation is returned when an action is attempted in a
// status that does not permit it.
var ErrInvalidPaymentOperation = errors.New("invalid payment operation")

// Status represents the settlement state of a payment.
// It implements a state machine with defined transitions:
//
//	Pending ──> Approved ──> Refunded
//	  │    └──> Declined
//	  └──> Cancelled
//
// Declined, Cancelled and Refunded are terminal.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// Pending is the initial status. The payment was created but not yet
	// settled by its method.
	Pending

	// Approved indicates the method accepted the charge.
	Approved

	// Declined indicates the method rejected the charge. Terminal.
	Declined

	// Cancelled indicates the payment was withdrawn before settling. Terminal.
	Cancelled

	// Refunded indicates an approved charge was returned. Terminal.
	Refunded
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "Unknown",
		Pending:       "Pending",
		Approved:      "Approved",
		Declined:      "Declined",
		Cancelled:     "Cancelled",
		Refunded:      "Refunded",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Approved:  "Approved",
		Declined:  "Declined",
		Cancelled: "Cancelled",
		Refunded:  "Refunded",
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

// Validate checks that the Status is one of the defined settlement states.
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
	return s == Declined || s == Cancelled || s == Refunded
}

// Approve transitions the status to Approved.
//
// Valid transitions:
//   - Pending -> Approved
func (s Status) Approve() (Status, error) {
	if s != Pending {
		return 0, fmt.Errorf("%w: payment in status %s cannot be approved", ErrInvalidPaymentOperation, s)
	}
	return Approved, nil
}

// Decline transitions the status to Declined.
//
// Valid transitions:
//   - Pending -> Declined
func (s Status) Decline() (Status, error) {
	if s != Pending {
		return 0, fmt.Errorf("%w: payment in status %s cannot be declined", ErrInvalidPaymentOperation, s)
	}
	return Declined, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled
func (s Status) Cancel() (Status, error) {
	if s != Pending {
		return 0, fmt.Errorf("%w: only pending payments can be cancelled, status is %s", ErrInvalidPaymentOperation, s)
	}
	return Cancelled, nil
}

// Refund transitions the status to Refunded.
//
// Valid transitions:
//   - Approved -> Refunded
func (s Status) Refund() (Status, error) {
	if s != Approved {
		return 0, fmt.Errorf("%w: only approved payments can be refunded, status is %s", ErrInvalidPaymentOperation, s)
	}
	return Refunded, nil
}
