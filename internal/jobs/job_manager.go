package jobs

import (
	"fmt"
	"log/slog"

	"foodbridge/internal/core/application/usecases/commands"
)

// JobManager coordinates the application's scheduled jobs.
type JobManager struct {
	expirySweepJob *ExpirySweepJob
}

// NewJobManager creates a job manager wiring the expiry sweep to its
// command handler and schedule.
func NewJobManager(
	expireDonationsHandler commands.ExpireDonationsCommandHandler,
	sweepSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		expirySweepJob: NewExpirySweepJob(expireDonationsHandler, sweepSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.expirySweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start expiry sweep job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.expirySweepJob.Stop()
}
