package restaurant

import (
	"fmt"
	"time"

	"github.com/Smeltier/basic-delivery-system/internal/pkg/errs"
	"github.com/Smeltier/basic-delivery-system/internal/pkg/guard"
)

// ErrOpeningHoursAreNotConstructed is returned when an OpeningHours instance
// was not created through NewOpeningHours.
var ErrOpeningHoursAreNotConstructed = errs.NewValueIsRequiredError(
	"OpeningHours must be created via NewOpeningHours constructor")

const openingHoursLayout = "15:04"

// OpeningHours is the daily window during which a restaurant may open.
// Opening must come strictly before closing; overnight windows are not
// supported.
type OpeningHours struct {
	opensAt  time.Duration
	closesAt time.Duration

	guard guard.ConstructorGuard
}

// NewOpeningHours parses a daily window from "HH:MM" bounds.
func NewOpeningHours(opensAt, closesAt string) (OpeningHours, error) {
	open, err := parseClockTime(opensAt)
	if err != nil {
		return OpeningHours{}, errs.NewValueIsInvalidErrorWithCause("opensAt", err)
	}

	closing, err := parseClockTime(closesAt)
	if err != nil {
		return OpeningHours{}, errs.NewValueIsInvalidErrorWithCause("closesAt", err)
	}

	if open >= closing {
		return OpeningHours{}, errs.NewValueIsInvalidErrorWithCause("openingHours",
			fmt.Errorf("opening %s must come before closing %s", opensAt, closesAt))
	}

	return OpeningHours{
		opensAt:  open,
		closesAt: closing,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the OpeningHours instance was properly constructed.
func (h OpeningHours) Validate() error {
	return h.guard.Validate(ErrOpeningHoursAreNotConstructed)
}

// IsWithin reports whether the clock time of t falls inside the window.
// The closing bound is exclusive.
func (h OpeningHours) IsWithin(t time.Time) bool {
	elapsed := time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute
	return elapsed >= h.opensAt && elapsed < h.closesAt
}

// OpensAt returns the opening bound formatted as "HH:MM".
func (h OpeningHours) OpensAt() string {
	return formatClockTime(h.opensAt)
}

// ClosesAt returns the closing bound formatted as "HH:MM".
func (h OpeningHours) ClosesAt() string {
	return formatClockTime(h.closesAt)
}

// IsEqual compares two windows by their bounds.
func (h OpeningHours) IsEqual(other OpeningHours) bool {
	return h.opensAt == other.opensAt && h.closesAt == other.closesAt
}

func (h OpeningHours) String() string {
	return fmt.Sprintf("%s-%s", h.OpensAt(), h.ClosesAt())
}

func parseClockTime(s string) (time.Duration, error) {
	t, err := time.Parse(openingHoursLayout, s)
	if err != nil {
		return 0, err
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}

func formatClockTime(d time.Duration) string {
	return fmt.Sprintf("%02d:%02d", int(d.Hours()), int(d.Minutes())%60)
}
