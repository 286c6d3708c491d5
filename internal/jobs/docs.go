// Package jobs provides scheduled background tasks for the order relay
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations behind the synchronous API.
//
// # Available Jobs
//
// 1. OrderReconciliationJob - Re-submits orders stranded in created status,
// so that a crash between the local commit and the aggregator response never
// leaves an order stuck.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(submitPendingHandler, gracePeriod, schedule, logger)
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
// The reconciliation job takes a standard five-field cron expression from
// configuration; once a minute is a sensible default. The grace period keeps
// the pass from racing intake requests whose gateway call is still in flight.
//
// # Error Handling
//
// Each stranded order compensates for itself inside the handler, so a failed
// submission marks the order failed rather than aborting the pass. The joined
// error is logged for visibility only.
package jobs
