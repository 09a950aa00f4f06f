// Package paymentprovider implements the payment.Method port.
package paymentprovider

import (
	"log/slog"

	"github.com/Smeltier/basic-delivery-system/internal/core/domain/model/payment"
)

// SimulatedProvider is a payment method that approves every charge.
// It stands in for a real acquirer integration in local and test
// environments.
type SimulatedProvider struct {
	logger *slog.Logger
}

// NewSimulatedProvider creates a provider that approves all charges.
func NewSimulatedProvider(logger *slog.Logger) *SimulatedProvider {
	return &SimulatedProvider{
		logger: logger.With("component", "simulated_payment_provider"),
	}
}

// Process approves the charge unconditionally.
func (p *SimulatedProvider) Process(charge *payment.Payment) (payment.ProcessingResult, error) {
	if err := charge.Validate(); err != nil {
		return payment.ResultPending, err
	}

	p.logger.Info("Charge approved",
		"paymentID", charge.ID().String(),
		"orderID", charge.OrderID().String(),
		"amount", charge.Amount().String(),
	)
	return payment.ResultApproved, nil
}
