package commands

import (
	"context"
)

// UpdateMilestoneProgressCommandHandler handles milestone completion updates.
type UpdateMilestoneProgressCommandHandler struct {
	uowFactory MilestoneUoWFactory
}

// NewUpdateMilestoneProgressCommandHandler creates a handler for progress updates.
func NewUpdateMilestoneProgressCommandHandler(
	uowFactory MilestoneUoWFactory) UpdateMilestoneProgressCommandHandler {
	return UpdateMilestoneProgressCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the progress update command.
func (h UpdateMilestoneProgressCommandHandler) Handle(ctx context.Context,
	cmd UpdateMilestoneProgressCommand) error {
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
	aggregate, err := milestoneRepo.Get(ctx, cmd.MilestoneID())
	if err != nil {
		return err
	}

	aggregate.UpdateProgress(cmd.Completion())

	if err = milestoneRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
