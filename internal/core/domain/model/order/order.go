package order

import (
	"errors"
	"fmt"
	"time"

	"github.com/Smeltier/basic-delivery-system/internal/core/domain/model/kernel"
	"github.com/Smeltier/basic-delivery-system/internal/pkg/clock"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order is the aggregate root of the ordering domain. It accumulates line
// items from one restaurant's menu on behalf of one account, tracks the
// delivery address and fee, references its payments by identifier, and walks
// the Draft -> Paid -> Confirmed -> Delivered lifecycle.
//
// Invariants:
//   - Every item unit price and the delivery fee share the order currency.
//   - At most one line per menu item while the order is a draft; adding the
//     same menu item again merges quantities into the existing line.
//   - Mutations are gated by Status; Delivered and Cancelled are terminal.
//   - Guards run before any state is touched, so a failed operation leaves
//     the aggregate exactly as it was.
//
// The items and payment-reference slices are owned exclusively by the
// aggregate; accessors hand out copies.
type Order struct {
	id           kernel.UUID
	accountID    kernel.UUID
	restaurantID kernel.UUID
	currency     kernel.Currency

	items    []OrderItem
	payments []kernel.UUID

	deliveryAddress *kernel.Address
	deliveryFee     kernel.Money

	createdAt   time.Time
	paidAt      *time.Time
	confirmedAt *time.Time
	cancelledAt *time.Time
	deliveredAt *time.Time

	status Status
	clock  clock.Clock

	isConstructed bool
}

// NewOrder creates a draft order for an account at a restaurant, denominated
// in the given currency. The delivery fee starts at zero in that currency and
// createdAt is stamped from the injected clock.
func NewOrder(
	id kernel.UUID,
	restaurantID kernel.UUID,
	accountID kernel.UUID,
	currency kernel.Currency,
	clk clock.Clock,
) (*Order, error) {
	order := &Order{
		status:        Draft,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setRestaurantID(restaurantID),
		order.setAccountID(accountID),
		order.setCurrency(currency),
		order.setClock(clk),
	); err != nil {
		return nil, err
	}

	order.createdAt = clk.Now()
	order.deliveryFee = kernel.ZeroMoney(currency)
	return order, nil
}

// RestoreOrder rehydrates an order from storage with its complete state.
// The same construction invariants apply; timestamps and optional fields are
// taken as persisted.
func RestoreOrder(
	id kernel.UUID,
	restaurantID kernel.UUID,
	accountID kernel.UUID,
	currency kernel.Currency,
	status Status,
	items []OrderItem,
	payments []kernel.UUID,
	deliveryAddress *kernel.Address,
	deliveryFee kernel.Money,
	createdAt time.Time,
	paidAt *time.Time,
	confirmedAt *time.Time,
	cancelledAt *time.Time,
	deliveredAt *time.Time,
	clk clock.Clock,
) (*Order, error) {
	order, err := NewOrder(id, restaurantID, accountID, currency, clk)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	for _, item := range items {
		if itemErr := item.Validate(); itemErr != nil {
			return nil, itemErr
		}
		if item.UnitPrice().Currency() != currency {
			return nil, fmt.Errorf("%w: item %s priced in %s, order is %s",
				kernel.ErrCurrencyMismatch, item.MenuItemID(), item.UnitPrice().Currency(), currency)
		}
	}

	for _, paymentID := range payments {
		if paymentErr := paymentID.Validate(); paymentErr != nil {
			return nil, paymentErr
		}
	}

	if deliveryAddress != nil {
		if addrErr := deliveryAddress.Validate(); addrErr != nil {
			return nil, addrErr
		}
		addr := *deliveryAddress
		order.deliveryAddress = &addr
	}

	if err = order.setDeliveryFee(deliveryFee); err != nil {
		return nil, err
	}

	order.status = status
	order.items = append(order.items, items...)
	order.payments = append(order.payments, payments...)
	order.createdAt = createdAt
	order.paidAt = copyTime(paidAt)
	order.confirmedAt = copyTime(confirmedAt)
	order.cancelledAt = copyTime(cancelledAt)
	order.deliveredAt = copyTime(deliveredAt)
	return order, nil
}

// Validate ensures the Order instance was properly constructed.
// Called when reconstructing orders from persistence to ensure integrity.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// AccountID returns the ordering account's identifier.
func (o *Order) AccountID() kernel.UUID {
	return o.accountID
}

// RestaurantID returns the restaurant's identifier.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// Currency returns the currency every amount on this order is denominated in.
func (o *Order) Currency() kernel.Currency {
	return o.currency
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// Items returns a copy of the line items in insertion order.
func (o *Order) Items() []OrderItem {
	items := make([]OrderItem, len(o.items))
	copy(items, o.items)
	return items
}

// Payments returns a copy of the registered payment identifiers in
// registration order.
func (o *Order) Payments() []kernel.UUID {
	payments := make([]kernel.UUID, len(o.payments))
	copy(payments, o.payments)
	return payments
}

// DeliveryAddress returns a copy of the delivery address, or nil if none was
// set yet.
func (o *Order) DeliveryAddress() *kernel.Address {
	if o.deliveryAddress == nil {
		return nil
	}
	addr := *o.deliveryAddress
	return &addr
}

// DeliveryFee returns the delivery fee. Zero in the order currency until an
// address change sets it.
func (o *Order) DeliveryFee() kernel.Money {
	return o.deliveryFee
}

// CreatedAt returns when the draft was opened.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// PaidAt returns when the order was paid, or nil.
func (o *Order) PaidAt() *time.Time {
	return copyTime(o.paidAt)
}

// ConfirmedAt returns when the restaurant confirmed the order, or nil.
func (o *Order) ConfirmedAt() *time.Time {
	return copyTime(o.confirmedAt)
}

// CancelledAt returns when the order was cancelled, or nil.
func (o *Order) CancelledAt() *time.Time {
	return copyTime(o.cancelledAt)
}

// DeliveredAt returns when the order was delivered, or nil.
func (o *Order) DeliveredAt() *time.Time {
	return copyTime(o.deliveredAt)
}

// Total returns the sum of all line totals in the order currency.
// The delivery fee is tracked separately and not included.
func (o *Order) Total() (kernel.Money, error) {
	total := kernel.ZeroMoney(o.currency)
	for _, item := range o.items {
		itemTotal, err := item.Total()
		if err != nil {
			return kernel.Money{}, err
		}
		total, err = total.Add(itemTotal)
		if err != nil {
			return kernel.Money{}, err
		}
	}
	return total, nil
}

// AddItem appends a menu item snapshot to the draft. If a line for the same
// menu item already exists, the quantity merges into that line and its
// snapshotted name, description, category and unit price are kept.
//
// Fails with ErrInvalidOrder when the order is not a draft and with
// kernel.ErrCurrencyMismatch when the unit price is in a foreign currency;
// item content and quantity violations propagate from NewOrderItem. On any
// failure the item list is unchanged.
func (o *Order) AddItem(
	menuItemID kernel.UUID,
	name string,
	description string,
	category kernel.MenuItemCategory,
	unitPrice kernel.Money,
	quantity int,
) error {
	if err := o.status.ValidateCanEdit(); err != nil {
		return err
	}

	if err := unitPrice.Validate(); err != nil {
		return err
	}

	if unitPrice.Currency() != o.currency {
		return fmt.Errorf("%w: unit price is %s, order is %s",
			kernel.ErrCurrencyMismatch, unitPrice.Currency(), o.currency)
	}

	item, err := NewOrderItem(menuItemID, name, description, category, unitPrice, quantity)
	if err != nil {
		return err
	}

	if idx := o.indexOfItem(menuItemID); idx >= 0 {
		merged, mergeErr := o.items[idx].withQuantity(o.items[idx].Quantity() + quantity)
		if mergeErr != nil {
			return mergeErr
		}
		o.items[idx] = merged
		return nil
	}

	o.items = append(o.items, item)
	return nil
}

// DecreaseItem lowers the quantity of the line holding menuItemID by
// quantity, removing the line entirely when the decrement equals the held
// quantity. No status guard applies.
//
// Fails with ErrInvalidOrderItemQuantity for a non-positive quantity, with
// ErrInvalidOrder when the order holds no such item, and with
// ErrInvalidOrderItem when the decrement exceeds the held quantity. On any
// failure the line is unchanged.
func (o *Order) DecreaseItem(menuItemID kernel.UUID, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: %d is not greater than 0", ErrInvalidOrderItemQuantity, quantity)
	}

	idx := o.indexOfItem(menuItemID)
	if idx < 0 {
		return fmt.Errorf("%w: order has no item %s", ErrInvalidOrder, menuItemID)
	}

	held := o.items[idx].Quantity()
	switch {
	case quantity > held:
		return fmt.Errorf("%w: cannot decrease %d of %d held", ErrInvalidOrderItem, quantity, held)
	case quantity == held:
		o.items = append(o.items[:idx], o.items[idx+1:]...)
	default:
		reduced, err := o.items[idx].withQuantity(held - quantity)
		if err != nil {
			return err
		}
		o.items[idx] = reduced
	}
	return nil
}

// RemoveItem deletes every line matching menuItemID from the draft.
// It is a no-op when the order holds no such item.
// Fails with ErrInvalidOrder when the order is not a draft.
func (o *Order) RemoveItem(menuItemID kernel.UUID) error {
	if err := o.status.ValidateCanEdit(); err != nil {
		return err
	}

	kept := o.items[:0]
	for _, item := range o.items {
		if !item.MenuItemID().IsEqual(menuItemID) {
			kept = append(kept, item)
		}
	}
	o.items = kept
	return nil
}

// ChangeDeliveryAddress sets the delivery destination and its fee on the
// draft. Fails with ErrInvalidOrder when the order is not a draft and with
// kernel.ErrCurrencyMismatch when the fee currency differs from the order
// currency; neither field changes on failure.
func (o *Order) ChangeDeliveryAddress(address kernel.Address, fee kernel.Money) error {
	if err := o.status.ValidateCanEdit(); err != nil {
		return err
	}

	if err := address.Validate(); err != nil {
		return err
	}

	if err := fee.Validate(); err != nil {
		return err
	}

	if fee.Currency() != o.currency {
		return fmt.Errorf("%w: delivery fee is %s, order is %s",
			kernel.ErrCurrencyMismatch, fee.Currency(), o.currency)
	}

	o.deliveryAddress = &address
	o.deliveryFee = fee
	return nil
}

// RegisterPayment appends a payment reference to the draft.
// Fails with ErrInvalidOrder when the order is not a draft.
func (o *Order) RegisterPayment(paymentID kernel.UUID) error {
	if err := o.status.ValidateCanEdit(); err != nil {
		return err
	}

	if err := paymentID.Validate(); err != nil {
		return err
	}

	o.payments = append(o.payments, paymentID)
	return nil
}

// MarkAsPaid transitions the draft to Paid and stamps paidAt.
// Requires at least one item, a delivery address, and a non-zero total;
// fails with ErrInvalidOrder otherwise.
func (o *Order) MarkAsPaid() error {
	newStatus, err := o.status.Pay()
	if err != nil {
		return err
	}

	if len(o.items) == 0 {
		return fmt.Errorf("%w: order must have at least one item", ErrInvalidOrder)
	}

	if o.deliveryAddress == nil {
		return fmt.Errorf("%w: order must have a delivery address", ErrInvalidOrder)
	}

	total, err := o.Total()
	if err != nil {
		return err
	}
	if total.IsZero() {
		return fmt.Errorf("%w: order total must not be zero", ErrInvalidOrder)
	}

	now := o.clock.Now()
	o.status = newStatus
	o.paidAt = &now
	return nil
}

// Confirm transitions a paid order to Confirmed and stamps confirmedAt.
// Fails with ErrInvalidOrder when the order is not Paid.
func (o *Order) Confirm() error {
	newStatus, err := o.status.Confirm()
	if err != nil {
		return err
	}

	now := o.clock.Now()
	o.status = newStatus
	o.confirmedAt = &now
	return nil
}

// MarkAsDelivered transitions a confirmed order to Delivered and stamps
// deliveredAt. Fails with ErrInvalidOrder when the order is not Confirmed.
func (o *Order) MarkAsDelivered() error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	now := o.clock.Now()
	o.status = newStatus
	o.deliveredAt = &now
	return nil
}

// Cancel transitions the order to Cancelled and stamps cancelledAt.
// Fails with ErrInvalidOrder when the order was already delivered.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	now := o.clock.Now()
	o.status = newStatus
	o.cancelledAt = &now
	return nil
}

func (o *Order) indexOfItem(menuItemID kernel.UUID) int {
	for i, item := range o.items {
		if item.MenuItemID().IsEqual(menuItemID) {
			return i
		}
	}
	return -1
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	o.restaurantID = restaurantID
	return nil
}

func (o *Order) setAccountID(accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return err
	}
	o.accountID = accountID
	return nil
}

func (o *Order) setCurrency(currency kernel.Currency) error {
	if err := currency.Validate(); err != nil {
		return err
	}
	o.currency = currency
	return nil
}

func (o *Order) setClock(clk clock.Clock) error {
	if clk == nil {
		return fmt.Errorf("%w: clock is required", ErrOrderIsNotConstructed)
	}
	o.clock = clk
	return nil
}

func (o *Order) setDeliveryFee(fee kernel.Money) error {
	if err := fee.Validate(); err != nil {
		return err
	}
	if fee.Currency() != o.currency {
		return fmt.Errorf("%w: delivery fee is %s, order is %s",
			kernel.ErrCurrencyMismatch, fee.Currency(), o.currency)
	}
	o.deliveryFee = fee
	return nil
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
