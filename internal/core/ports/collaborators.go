package ports

import (
	"context"

	"manufacturing/internal/core/domain/model/kernel"
)

// OrderRegistry answers existence checks against the sales-order registry.
// Workflows are only ever initialized for orders that are actually on file.
type OrderRegistry interface {
	// Exists reports whether the order is registered.
	Exists(ctx context.Context, orderID kernel.UUID) (bool, error)
}

// EmployeeDirectory answers existence checks against the employee directory.
type EmployeeDirectory interface {
	// Exists reports whether the employee is on the directory.
	Exists(ctx context.Context, employeeID kernel.UUID) (bool, error)
}

// TaskInbox records a work item for an employee when a workflow step is
// assigned to them, so the assignment shows up on their task list.
type TaskInbox interface {
	// NotifyAssignment files a task for the employee referencing the step.
	// The reason is free text from whoever made the assignment, possibly empty.
	NotifyAssignment(ctx context.Context, employeeID, orderID, stepID kernel.UUID,
		stepName, reason string) error
}
