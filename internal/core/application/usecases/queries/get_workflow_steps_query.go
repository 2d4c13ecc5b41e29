// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/pkg/guard"
)

var (
	ErrGetWorkflowStepsQueryIsNotConstructed = errors.New(
		"GetWorkflowStepsQuery must be created via NewGetWorkflowStepsQuery constructor",
	)
)

// GetWorkflowStepsQuery retrieves an order's workflow steps together with a
// progress summary. Assignee display names are resolved against the employee
// directory in the same read.
//
// Example:
//
//	query, err := NewGetWorkflowStepsQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetWorkflowStepsQueryHandler(db)
//	response, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve workflow: %w", err)
//	}
//	fmt.Printf("%d%% complete\n", response.Progress.ProgressPercentage)
type GetWorkflowStepsQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetWorkflowStepsQuery creates a query for an order's workflow steps.
func NewGetWorkflowStepsQuery(orderID kernel.UUID) (GetWorkflowStepsQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetWorkflowStepsQuery{}, err
	}

	return GetWorkflowStepsQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetWorkflowStepsQueryIsNotConstructed if validation fails.
func (q GetWorkflowStepsQuery) Validate() error {
	return q.guard.Validate(ErrGetWorkflowStepsQueryIsNotConstructed)
}

// OrderID returns the order ID from the query.
func (q GetWorkflowStepsQuery) OrderID() kernel.UUID {
	return q.orderID
}

// WorkflowStepResponse represents one workflow step in the read model.
// The assignee name is denormalized from the employee directory; steps without
// an assignee carry an empty name.
type WorkflowStepResponse struct {
	ID                 kernel.UUID
	StepNumber         int
	StepType           string
	Name               string
	Status             string
	AssignedEmployeeID *kernel.UUID
	AssigneeName       string
	AssignedAt         *time.Time
	StartedAt          *time.Time
	CompletedAt        *time.Time
	Documents          []DocumentResponse
	Notes              string
}

// DocumentResponse represents one attached document reference.
type DocumentResponse struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// WorkflowProgressResponse summarizes how far an order has moved through its
// workflow. The percentage is completed steps over total steps, rounded to the
// nearest integer.
type WorkflowProgressResponse struct {
	TotalSteps         int
	CompletedSteps     int
	InProgressSteps    int
	RemainingSteps     int
	ProgressPercentage int
}

// GetWorkflowStepsQueryResponse bundles the ordered steps with their progress
// summary and the current-step cursor.
type GetWorkflowStepsQueryResponse struct {
	OrderID           kernel.UUID
	CurrentStepNumber int
	Steps             []WorkflowStepResponse
	Progress          WorkflowProgressResponse
}
