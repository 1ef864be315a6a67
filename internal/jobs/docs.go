// Package jobs provides scheduled background tasks for the donation
// lifecycle, implemented with github.com/robfig/cron/v3.
//
// The single job, ExpirySweepJob, periodically expires donations whose
// best-before has passed. It is managed through JobManager:
//
//	jobManager := jobs.NewJobManager(expireDonationsHandler, schedule, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// The schedule is a standard five-field cron expression taken from
// configuration; the sweep tolerates overlap since the underlying
// command skips donations that turned terminal in the meantime.
package jobs
