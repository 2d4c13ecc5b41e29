// Package ports defines repository and collaborator interfaces for the
// manufacturing domain. These interfaces establish contracts between the
// domain layer and infrastructure, enabling dependency inversion and
// testability.
package ports

import (
	"context"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/workflow"
)

// WorkflowRepository defines the persistence contract for workflow aggregates.
// Provides methods for storing and retrieving an order's full step sequence
// together with its current-step cursor.
type WorkflowRepository interface {
	// Add persists a new workflow aggregate with all of its steps.
	// Returns an ObjectAlreadyExistsError when the order already has a workflow.
	Add(ctx context.Context, aggregate *workflow.Workflow) error

	// Update persists changes to an existing workflow aggregate.
	// The workflow must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *workflow.Workflow) error

	// GetByOrderID retrieves the workflow owned by an order.
	// Returns the complete workflow with all steps ordered by step number.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*workflow.Workflow, error)

	// GetByStepID retrieves the workflow containing a given step.
	// Steps are addressed directly by API clients, so the owning order is
	// resolved here rather than passed in.
	GetByStepID(ctx context.Context, stepID kernel.UUID) (*workflow.Workflow, error)
}
