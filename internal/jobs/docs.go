// Package jobs provides scheduled background tasks for the lifecycle engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the restaurant platform.
//
// # Available Jobs
//
// 1. BatchExpiryJob - Runs every minute to transition overdue available storage batches to expired
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(expireBatchesHandler, logger)
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
// The expiry job uses the cron expression "0 * * * * *", firing at the top of
// every minute. Expiry is driven by wall-clock time rather than user actions,
// so a scheduled sweep is the only way overdue batches leave circulation.
//
// # Error Handling
//
// - A failed sweep is logged and retried on the next tick; batches stay available until then
// - Each overdue batch is expired independently, one failure does not stop the sweep
package jobs
