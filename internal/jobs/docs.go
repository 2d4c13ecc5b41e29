// Package jobs provides scheduled background tasks for the manufacturing
// workflow service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order and milestone tracking.
//
// # Available Jobs
//
// 1. MilestoneDelayJob - Runs every minute to mark milestones past their target date as delayed
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(markDelayedMilestonesHandler, logger)
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
// The delay sweep uses the cron expression "0 * * * * *" which means it runs
// at the top of every minute. Delay detection does not need to be real-time;
// a minute of lag is invisible next to milestone target dates measured in days.
//
// # Error Handling
//
// - A sweep over zero overdue milestones is a successful no-op, not an error
// - Failed sweeps are logged and counted; the next tick retries from scratch
// - Failed job starts will stop any already running jobs
package jobs
