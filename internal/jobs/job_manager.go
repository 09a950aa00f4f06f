package jobs

import (
	"fmt"
	"log/slog"

	"github.com/Smeltier/basic-delivery-system/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	paymentProcessingJob *PaymentProcessingJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	processPendingPaymentsHandler commands.ProcessPendingPaymentsCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		paymentProcessingJob: NewPaymentProcessingJob(processPendingPaymentsHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.paymentProcessingJob.Start(); err != nil {
		return fmt.Errorf("failed to start payment processing job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.paymentProcessingJob.Stop()
}
