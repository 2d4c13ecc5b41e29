package commands

import (
	"context"
	"log/slog"
	"time"

	"manufacturing/internal/core/ports"
	"manufacturing/internal/pkg/errs"
)

// AssignEmployeeCommandHandler handles putting employees on workflow steps.
// Verifies the employee against the directory, records the assignment inside a
// transaction, and files a task on the employee's inbox once the assignment has
// committed.
type AssignEmployeeCommandHandler struct {
	uowFactory WorkflowUoWFactory
	employees  ports.EmployeeDirectory
	inbox      ports.TaskInbox
	logger     *slog.Logger
}

// NewAssignEmployeeCommandHandler creates a handler for step assignment.
func NewAssignEmployeeCommandHandler(uowFactory WorkflowUoWFactory,
	employees ports.EmployeeDirectory, inbox ports.TaskInbox,
	logger *slog.Logger) AssignEmployeeCommandHandler {
	return AssignEmployeeCommandHandler{
		uowFactory: uowFactory,
		employees:  employees,
		inbox:      inbox,
		logger:     logger.With("component", "assign_employee_handler"),
	}
}

// Handle processes the assignment command.
// Returns an ObjectNotFoundError for unknown employees or steps; assigning a
// completed step surfaces the domain's terminal-step error unchanged.
func (h AssignEmployeeCommandHandler) Handle(ctx context.Context, cmd AssignEmployeeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	exists, err := h.employees.Exists(ctx, cmd.EmployeeID())
	if err != nil {
		return err
	}
	if !exists {
		return errs.NewObjectNotFoundError("employee", cmd.EmployeeID().String())
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

	if err = aggregate.AssignEmployee(cmd.StepID(), cmd.EmployeeID(), time.Now().UTC()); err != nil {
		return err
	}

	if err = workflowRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	// The assignment is committed; a failed inbox notification must not undo it.
	step, err := aggregate.StepByID(cmd.StepID())
	if err != nil {
		return nil
	}
	if err := h.inbox.NotifyAssignment(ctx, cmd.EmployeeID(), aggregate.OrderID(), cmd.StepID(),
		step.Name(), cmd.Reason()); err != nil {
		h.logger.ErrorContext(ctx, "Failed to notify task inbox about assignment",
			"error", err,
			"employee_id", cmd.EmployeeID().String(),
			"step_id", cmd.StepID().String())
	}

	return nil
}
