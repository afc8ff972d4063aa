// Package jobs provides scheduled background tasks for the dispatch desk.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// SessionExpiryJob - sweeps the in-memory session registry and evicts sessions
// idle for longer than the configured TTL.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(registry, 8*time.Hour, "@every 1m", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The sweep schedule accepts standard five-field cron specs and descriptors
// such as "@every 1m" or "@hourly". A session in use during a sweep is
// skipped and looked at again on the next run.
package jobs
