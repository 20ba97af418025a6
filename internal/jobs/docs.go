// Package jobs provides scheduled background tasks for the ordering system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the order service.
//
// # Available Jobs
//
// 1. StaleDraftExpirationJob - Runs hourly to cancel draft orders that have
// been idle for longer than the configured TTL
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(expireStaleDraftsHandler, draftTTL, logger)
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
// The expiration job uses the cron expression "0 0 * * * *" and runs at the
// top of every hour. Expiration is driven entirely by the stored timestamps,
// so a delayed or missed run postpones cleanup without skipping any order.
//
// # Error Handling
//
// - Drafts that change state between listing and cancellation are skipped
// - Failures are logged and retried on the next scheduled run
package jobs
