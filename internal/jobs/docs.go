// Package jobs provides scheduled background tasks for the cargo service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations that are not driven by incoming requests.
//
// # Available Jobs
//
// 1. OverdueShipmentJob - Sweeps for shipments past their expected delivery
// date and logs them for ops attention.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(overdueHandler, "0 * * * *", logger)
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
// The sweep schedule is a standard five-field cron expression taken from
// configuration, hourly by default. Overdue shipments do not change state
// in the sweep; it only surfaces them in the logs.
package jobs
