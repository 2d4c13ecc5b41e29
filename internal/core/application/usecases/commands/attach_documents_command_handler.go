package commands

import (
	"context"
)

// AttachDocumentsCommandHandler handles appending document references to a
// workflow step. Existing references are never replaced or removed.
type AttachDocumentsCommandHandler struct {
	uowFactory WorkflowUoWFactory
}

// NewAttachDocumentsCommandHandler creates a handler for document attachment.
func NewAttachDocumentsCommandHandler(uowFactory WorkflowUoWFactory) AttachDocumentsCommandHandler {
	return AttachDocumentsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the attachment command.
func (h AttachDocumentsCommandHandler) Handle(ctx context.Context, cmd AttachDocumentsCommand) error {
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

	if err = aggregate.AttachDocuments(cmd.StepID(), cmd.Documents()); err != nil {
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
