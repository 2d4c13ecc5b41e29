package commands

import (
	"context"
	"time"
)

// UpdateStepStatusCommandHandler handles workflow step status changes.
// The aggregate enforces the transition table and advances the current-step
// cursor when the active step completes; both the step and the cursor are
// persisted in the same transaction.
type UpdateStepStatusCommandHandler struct {
	uowFactory WorkflowUoWFactory
}

// NewUpdateStepStatusCommandHandler creates a handler for step status changes.
func NewUpdateStepStatusCommandHandler(uowFactory WorkflowUoWFactory) UpdateStepStatusCommandHandler {
	return UpdateStepStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change command.
// Illegal transitions surface the domain's transition error unchanged.
func (h UpdateStepStatusCommandHandler) Handle(ctx context.Context, cmd UpdateStepStatusCommand) error {
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

	workflowRepo := uow.WorkflowRepository()
	aggregate, err := workflowRepo.GetByStepID(ctx, cmd.StepID())
	if err != nil {
		return err
	}

	if err = aggregate.ChangeStepStatus(cmd.StepID(), cmd.Status(), cmd.Notes(), time.Now().UTC()); err != nil {
		return err
	}

	if err = workflowRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
