// Package jobs provides scheduled background tasks for the marketplace.
//
// Jobs are cron-based (github.com/robfig/cron/v3) and strictly read-only:
// the order lifecycle advances only through buyer and rider requests.
//
// # Available Jobs
//
// 1. QueueDepthJob - Runs every 30 seconds and logs how many orders await a
// rider and how many are in transit, giving operators queue visibility
// without a metrics query.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(gormDB, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
package jobs
