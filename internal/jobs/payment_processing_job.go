package jobs

import (
	"context"
	"log/slog"

	"github.com/Smeltier/basic-delivery-system/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// PaymentProcessingJob manages the scheduled settlement of pending payments.
// Runs every ten seconds to push outstanding charges through the payment
// provider and record their verdicts.
type PaymentProcessingJob struct {
	handler commands.ProcessPendingPaymentsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPaymentProcessingJob creates a new job for settling pending payments.
// Uses ProcessPendingPaymentsCommandHandler to process outstanding charges.
func NewPaymentProcessingJob(handler commands.ProcessPendingPaymentsCommandHandler, logger *slog.Logger) *PaymentProcessingJob {
	return &PaymentProcessingJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "payment_processing_job"),
	}
}

// Start begins the payment processing job to run every ten seconds.
func (j *PaymentProcessingJob) Start() error {
	_, err := j.cron.AddFunc("*/10 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewProcessPendingPaymentsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Payment processing job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Payment processing job started (running every ten seconds)")
	return nil
}

// Stop stops the payment processing job.
func (j *PaymentProcessingJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Payment processing job stopped")
}
