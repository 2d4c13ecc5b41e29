package commands

import (
	"context"

	"manufacturing/internal/core/domain/model/milestone"
)

// CreateMilestoneCommandHandler handles the business logic for milestone
// creation. New milestones start not_started at 0% completion.
type CreateMilestoneCommandHandler struct {
	uowFactory MilestoneUoWFactory
}

// NewCreateMilestoneCommandHandler creates a handler for milestone creation.
func NewCreateMilestoneCommandHandler(uowFactory MilestoneUoWFactory) CreateMilestoneCommandHandler {
	return CreateMilestoneCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the milestone creation command.
func (h CreateMilestoneCommandHandler) Handle(ctx context.Context, cmd CreateMilestoneCommand) error {
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

	aggregate, err := milestone.NewMilestone(cmd.MilestoneID(), cmd.ProjectID(), cmd.Name(), cmd.TargetDate())
	if err != nil {
		return err
	}

	if err = uow.MilestoneRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
