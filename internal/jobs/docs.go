// Package jobs provides scheduled background tasks for the marketplace.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle the periodic sweeps the order flow depends on.
//
// # Available Jobs
//
// 1. StaleOrderSweepJob - Rejects orders left pending past the restaurant response deadline
// 2. PartnerLocationSweepJob - Drops delivery partner positions that stopped being reported
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(rejectHandler, locationRepo, config, logger)
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
// Both jobs run every minute. Staleness is measured against configured
// cutoffs, so the sweep frequency only bounds how late a sweep can fire,
// not what it considers stale.
//
// # Error Handling
//
// Sweep failures are logged and retried on the next tick; a failed sweep
// never stops the scheduler.
package jobs
