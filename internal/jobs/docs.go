// Package jobs provides scheduled background tasks for the order platform.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the ordering service.
//
// # Available Jobs
//
// 1. PaymentProcessingJob - Runs every ten seconds to settle pending payments against the payment provider
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(processPendingPaymentsHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The payment processing job uses the cron expression "*/10 * * * * *" which
// means it runs every ten seconds. This keeps settlement latency low without
// hammering the payment provider.
//
// # Error Handling
//
// - Payment processing logs all errors as they indicate provider or storage issues
// - Failed job starts will stop any already running jobs
package jobs
