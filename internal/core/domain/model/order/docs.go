// Package order implements the order aggregate of the food-delivery domain.
//
// An Order is created as a draft when a client adds the first item from a
// restaurant's menu. While in draft it accepts item edits, a delivery address
// with its fee, and payment registrations. Payment moves it through
// Paid -> Confirmed -> Delivered; it can be cancelled from any state except
// Delivered. Orders are never deleted: terminal states are kept for history.
//
// The aggregate owns its line items and payment references exclusively and
// enforces all invariants itself: every item price and the delivery fee share
// the order currency, and each mutation is gated by the Status state machine.
// Lifecycle timestamps come from an injected clock so transitions are
// deterministic under test.
package order
