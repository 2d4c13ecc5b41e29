package commands

import (
	"context"
	"time"
)

// MarkDelayedMilestonesCommandHandler marks overdue milestones as delayed.
// Retrieves every milestone past its target date whose status has not settled
// and flips it to delayed within a single transaction.
type MarkDelayedMilestonesCommandHandler struct {
	uowFactory MilestoneUoWFactory
}

// NewMarkDelayedMilestonesCommandHandler creates a handler for the delay sweep.
func NewMarkDelayedMilestonesCommandHandler(
	uowFactory MilestoneUoWFactory) MarkDelayedMilestonesCommandHandler {
	return MarkDelayedMilestonesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the sweep command. A sweep over zero overdue milestones is a
// successful no-op.
func (h MarkDelayedMilestonesCommandHandler) Handle(ctx context.Context,
	cmd MarkDelayedMilestonesCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	milestoneRepo := uow.MilestoneRepository()
	overdue, err := milestoneRepo.GetAllOverdue(ctx)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	for _, aggregate := range overdue {
		if !aggregate.MarkDelayed(now) {
			continue
		}
		if err = milestoneRepo.Update(ctx, aggregate); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
