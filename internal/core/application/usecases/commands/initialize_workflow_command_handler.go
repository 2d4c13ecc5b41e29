package commands

import (
	"context"
	"time"

	"manufacturing/internal/core/domain/model/workflow"
	"manufacturing/internal/core/ports"
	"manufacturing/internal/pkg/errs"
)

// InitializeWorkflowCommandHandler handles the business logic for workflow
// initialization. Verifies the order is registered, then creates and persists
// the full step sequence in one transaction so partial workflows never exist.
//
// Example:
//
//	handler := NewInitializeWorkflowCommandHandler(uowFactory, orders)
//	cmd, _ := NewInitializeWorkflowCommand(orderID)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("workflow initialization failed: %w", err)
//	}
type InitializeWorkflowCommandHandler struct {
	uowFactory WorkflowUoWFactory
	orders     ports.OrderRegistry
}

// NewInitializeWorkflowCommandHandler creates a handler for workflow initialization.
// Requires a WorkflowUoWFactory for transactional persistence and an OrderRegistry
// to reject workflows for unknown orders.
func NewInitializeWorkflowCommandHandler(uowFactory WorkflowUoWFactory,
	orders ports.OrderRegistry) InitializeWorkflowCommandHandler {
	return InitializeWorkflowCommandHandler{
		uowFactory: uowFactory,
		orders:     orders,
	}
}

// Handle processes the workflow initialization command.
// Returns an ObjectNotFoundError for unregistered orders and an
// ObjectAlreadyExistsError when the order already has a workflow.
func (h InitializeWorkflowCommandHandler) Handle(ctx context.Context, cmd InitializeWorkflowCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	exists, err := h.orders.Exists(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if !exists {
		return errs.NewObjectNotFoundError("order", cmd.OrderID().String())
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := workflow.NewWorkflow(cmd.OrderID(), time.Now().UTC())
	if err != nil {
		return err
	}

	if err = uow.WorkflowRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
