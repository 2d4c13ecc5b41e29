package jobs

import (
	"context"
	"log/slog"

	"manufacturing/internal/core/application/usecases/commands"
	"manufacturing/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
)

// MilestoneDelayJob manages the scheduled sweep over overdue milestones.
// Runs every minute to mark milestones past their target date as delayed.
type MilestoneDelayJob struct {
	handler commands.MarkDelayedMilestonesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewMilestoneDelayJob creates a new job for the milestone delay sweep.
// Uses MarkDelayedMilestonesCommandHandler to flag overdue milestones every minute.
func NewMilestoneDelayJob(handler commands.MarkDelayedMilestonesCommandHandler,
	logger *slog.Logger) *MilestoneDelayJob {
	return &MilestoneDelayJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "milestone_delay_job"),
	}
}

// Start begins the milestone delay sweep to run every minute.
func (j *MilestoneDelayJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewMarkDelayedMilestonesCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			metrics.IncMilestoneSweepErrors()
			j.logger.ErrorContext(ctx, "Milestone delay sweep failed", "error", err)
			return
		}

		metrics.IncMilestoneSweeps()
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Milestone delay job started (running every minute)")
	return nil
}

// Stop stops the milestone delay job.
func (j *MilestoneDelayJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Milestone delay job stopped")
}
