package commands

import (
	"errors"

	"github.com/Smeltier/basic-delivery-system/internal/pkg/guard"
)

var ErrProcessPendingPaymentsCommandIsNotConstructed = errors.New(
	"ProcessPendingPaymentsCommand must be created via NewProcessPendingPaymentsCommand constructor",
)

// ProcessPendingPaymentsCommand triggers a settlement retry for every payment
// still in pending status. This batch operation is run periodically by the
// payment processing job.
type ProcessPendingPaymentsCommand struct {
	guard guard.ConstructorGuard
}

// NewProcessPendingPaymentsCommand creates a command to retry pending
// payments. This is a parameterless command that processes all open charges.
func NewProcessPendingPaymentsCommand() ProcessPendingPaymentsCommand {
	command := ProcessPendingPaymentsCommand{
		guard: guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
func (c *ProcessPendingPaymentsCommand) Validate() error {
	return c.guard.Validate(ErrProcessPendingPaymentsCommandIsNotConstructed)
}
