package commands

import (
	"context"
)

// UpdateMilestoneStatusCommandHandler handles milestone status changes.
type UpdateMilestoneStatusCommandHandler struct {
	uowFactory MilestoneUoWFactory
}

// NewUpdateMilestoneStatusCommandHandler creates a handler for status changes.
func NewUpdateMilestoneStatusCommandHandler(
	uowFactory MilestoneUoWFactory) UpdateMilestoneStatusCommandHandler {
	return UpdateMilestoneStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change command.
func (h UpdateMilestoneStatusCommandHandler) Handle(ctx context.Context,
	cmd UpdateMilestoneStatusCommand) error {
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

	if err = aggregate.ChangeStatus(cmd.Status()); err != nil {
		return err
	}

	if err = milestoneRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
