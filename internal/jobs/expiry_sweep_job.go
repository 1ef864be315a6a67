package jobs

import (
	"context"
	"log/slog"
	"time"

	"foodbridge/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ExpirySweepJob periodically expires donations whose best-before has
// passed, so stale listings drop out of the feed without donor action.
type ExpirySweepJob struct {
	handler  commands.ExpireDonationsCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewExpirySweepJob creates the sweep with a five-field cron schedule.
func NewExpirySweepJob(
	handler commands.ExpireDonationsCommandHandler,
	schedule string,
	logger *slog.Logger,
) *ExpirySweepJob {
	return &ExpirySweepJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "expiry_sweep_job"),
	}
}

// Start begins the sweep on its configured schedule.
func (j *ExpirySweepJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewExpireDonationsCommand(time.Now().UTC())
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Expiry sweep command invalid", "error", cmdErr)
			return
		}

		expired, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Expiry sweep failed", "error", handleErr)
			return
		}

		if expired > 0 {
			j.logger.InfoContext(ctx, "Expired stale donations", "count", expired)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Expiry sweep started", "schedule", j.schedule)
	return nil
}

// Stop stops the sweep.
func (j *ExpirySweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Expiry sweep stopped")
}
