package payment

import (
	"errors"
	"fmt"
	"time"

	"github.com/Smeltier/basic-delivery-system/internal/core/domain/model/kernel"
	"github.com/Smeltier/basic-delivery-system/internal/pkg/clock"
)

var (
	// ErrPaymentIsNotConstructed is returned when a Payment instance was not
	// created through NewPayment or RestorePayment.
	ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment or RestorePayment constructor")
)

// ProcessingResult is the verdict a Method returns for a charge attempt.
type ProcessingResult int

const (
	// ResultPending means the method could not settle the charge yet and the
	// payment stays pending for a later retry.
	ResultPending ProcessingResult = iota

	// ResultApproved means the method accepted the charge.
	ResultApproved

	// ResultRejected means the method refused the charge.
	ResultRejected
)

// Method settles a charge against an external payment provider.
// Implementations must not mutate the payment; the aggregate applies the
// returned verdict itself.
type Method interface {
	Process(p *Payment) (ProcessingResult, error)
}

// Payment charges one order's total. It is created pending, settles through
// Process, and records when it was created and when it settled.
type Payment struct {
	id      kernel.UUID
	orderID kernel.UUID
	amount  kernel.Money

	status      Status
	createdAt   time.Time
	processedAt *time.Time

	clock clock.Clock

	isConstructed bool
}

// NewPayment creates a pending payment of amount for the given order.
// The amount must be a positive, constructed Money value.
func NewPayment(
	id kernel.UUID,
	orderID kernel.UUID,
	amount kernel.Money,
	clk clock.Clock,
) (*Payment, error) {
	payment := &Payment{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		payment.setID(id),
		payment.setOrderID(orderID),
		payment.setAmount(amount),
		payment.setClock(clk),
	); err != nil {
		return nil, err
	}

	payment.createdAt = clk.Now()
	return payment, nil
}

// RestorePayment rehydrates a payment from storage with its complete state.
func RestorePayment(
	id kernel.UUID,
	orderID kernel.UUID,
	amount kernel.Money,
	status Status,
	createdAt time.Time,
	processedAt *time.Time,
	clk clock.Clock,
) (*Payment, error) {
	payment, err := NewPayment(id, orderID, amount, clk)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	payment.status = status
	payment.createdAt = createdAt
	if processedAt != nil {
		at := *processedAt
		payment.processedAt = &at
	}
	return payment, nil
}

// Validate ensures the Payment instance was properly constructed.
func (p *Payment) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}
	return nil
}

// IsEqual compares two payments by identity.
func (p *Payment) IsEqual(other *Payment) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the payment's unique identifier.
func (p *Payment) ID() kernel.UUID {
	return p.id
}

// OrderID returns the identifier of the order being charged.
func (p *Payment) OrderID() kernel.UUID {
	return p.orderID
}

// Amount returns the charged amount.
func (p *Payment) Amount() kernel.Money {
	return p.amount
}

// Status returns the current settlement state.
func (p *Payment) Status() Status {
	return p.status
}

// CreatedAt returns when the payment was opened.
func (p *Payment) CreatedAt() time.Time {
	return p.createdAt
}

// ProcessedAt returns when the payment settled, or nil while it is pending.
func (p *Payment) ProcessedAt() *time.Time {
	if p.processedAt == nil {
		return nil
	}
	at := *p.processedAt
	return &at
}

// Process settles a pending payment through the given method. An approved or
// rejected verdict transitions the payment and stamps processedAt; a pending
// verdict leaves it untouched for a later retry.
//
// Fails with ErrInvalidPaymentOperation when the payment is not pending, and
// propagates method errors without changing state.
func (p *Payment) Process(method Method) error {
	if method == nil {
		return fmt.Errorf("%w: payment method is required", ErrInvalidPaymentOperation)
	}

	if p.status != Pending {
		return fmt.Errorf("%w: payment in status %s cannot be processed", ErrInvalidPaymentOperation, p.status)
	}

	result, err := method.Process(p)
	if err != nil {
		return err
	}

	switch result {
	case ResultApproved:
		newStatus, transitionErr := p.status.Approve()
		if transitionErr != nil {
			return transitionErr
		}
		p.settle(newStatus)
	case ResultRejected:
		newStatus, transitionErr := p.status.Decline()
		if transitionErr != nil {
			return transitionErr
		}
		p.settle(newStatus)
	case ResultPending:
		// Stays pending; ProcessPendingPayments retries later.
	default:
		return fmt.Errorf("%w: unknown processing result %d", ErrInvalidPaymentOperation, result)
	}
	return nil
}

// Cancel withdraws a pending payment and stamps processedAt.
// Fails with ErrInvalidPaymentOperation when the payment is not pending.
func (p *Payment) Cancel() error {
	newStatus, err := p.status.Cancel()
	if err != nil {
		return err
	}

	p.settle(newStatus)
	return nil
}

// Refund returns an approved charge and stamps processedAt.
// Fails with ErrInvalidPaymentOperation when the payment is not approved.
func (p *Payment) Refund() error {
	newStatus, err := p.status.Refund()
	if err != nil {
		return err
	}

	p.settle(newStatus)
	return nil
}

func (p *Payment) settle(status Status) {
	now := p.clock.Now()
	p.status = status
	p.processedAt = &now
}

func (p *Payment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Payment) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	p.orderID = orderID
	return nil
}

func (p *Payment) setAmount(amount kernel.Money) error {
	if err := amount.Validate(); err != nil {
		return err
	}
	if !amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive, got %s", ErrInvalidPaymentOperation, amount)
	}
	p.amount = amount
	return nil
}

func (p *Payment) setClock(clk clock.Clock) error {
	if clk == nil {
		return fmt.Errorf("%w: clock is required", ErrPaymentIsNotConstructed)
	}
	p.clock = clk
	return nil
}
