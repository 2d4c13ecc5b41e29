// Package workflowrepo provides data transfer objects and mapping functions for
// workflow persistence. This package implements the repository pattern for the
// workflow domain aggregate, handling the conversion between domain entities
// and database representations.
package workflowrepo

import (
	"encoding/json"
	"time"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/workflow"

	"github.com/google/uuid"
)

// WorkflowDTO represents the database structure for persisting workflow aggregates.
// The aggregate root row carries only the cursor; the steps live in their own
// table linked by the owning order.
type WorkflowDTO struct {
	OrderID           uuid.UUID         `gorm:"type:uuid;primaryKey"`
	CurrentStepNumber int               `gorm:"type:int;not null"`
	Steps             []WorkflowStepDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for workflow entities.
// Overrides GORM's default naming convention to use "workflows" instead of "workflow_dtos".
func (WorkflowDTO) TableName() string {
	return "workflows"
}

// WorkflowStepDTO represents the database structure for persisting workflow steps.
// The unique index on (order_id, step_number) backs the one-step-per-number
// invariant at the storage level.
type WorkflowStepDTO struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID            uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_workflow_steps_order_step"`
	StepNumber         int        `gorm:"type:int;not null;uniqueIndex:idx_workflow_steps_order_step"`
	StepType           string     `gorm:"type:varchar(64);not null"`
	StepName           string     `gorm:"type:varchar(255);not null"`
	Status             string     `gorm:"type:varchar(32);not null"`
	AssignedEmployeeID *uuid.UUID `gorm:"type:uuid;index"`
	AssignedAt         *time.Time
	StartedAt          *time.Time
	CompletedAt        *time.Time
	Documents          []byte `gorm:"type:jsonb"`
	Notes              string `gorm:"type:text"`
}

// TableName specifies the database table name for workflow step entities.
func (WorkflowStepDTO) TableName() string {
	return "workflow_steps"
}

// fromDomain converts a workflow domain aggregate to its database representation.
func fromDomain(aggregate *workflow.Workflow) (WorkflowDTO, error) {
	orderID := aggregate.OrderID().Bytes()
	steps := make([]WorkflowStepDTO, 0, len(aggregate.Steps()))

	for _, step := range aggregate.Steps() {
		var assignedEmployeeID *uuid.UUID
		if step.AssignedEmployeeID() != nil {
			raw := step.AssignedEmployeeID().Bytes()
			assignedEmployeeID = &raw
		}

		documents, err := json.Marshal(step.Documents())
		if err != nil {
			return WorkflowDTO{}, err
		}

		steps = append(steps, WorkflowStepDTO{
			ID:                 step.ID().Bytes(),
			OrderID:            orderID,
			StepNumber:         step.StepNumber(),
			StepType:           string(step.StepType()),
			StepName:           step.Name(),
			Status:             step.Status().String(),
			AssignedEmployeeID: assignedEmployeeID,
			AssignedAt:         step.AssignedAt(),
			StartedAt:          step.StartedAt(),
			CompletedAt:        step.CompletedAt(),
			Documents:          documents,
			Notes:              step.Notes(),
		})
	}

	return WorkflowDTO{
		OrderID:           orderID,
		CurrentStepNumber: aggregate.CurrentStepNumber(),
		Steps:             steps,
	}, nil
}

// toDomain converts a database DTO to a workflow domain aggregate.
// Reconstructs the complete aggregate including all steps using RestoreWorkflow,
// which re-checks the step sequence invariant.
func toDomain(dto WorkflowDTO) (*workflow.Workflow, error) {
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	steps := make([]*workflow.Step, 0, len(dto.Steps))
	for _, stepDto := range dto.Steps {
		step, stepErr := stepToDomain(stepDto)
		if stepErr != nil {
			return nil, stepErr
		}
		steps = append(steps, step)
	}

	return workflow.RestoreWorkflow(orderID, dto.CurrentStepNumber, steps)
}

// stepToDomain converts a step DTO to its domain entity.
func stepToDomain(dto WorkflowStepDTO) (*workflow.Step, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := workflow.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	stepType, err := workflow.StageTypeFromString(dto.StepType)
	if err != nil {
		return nil, err
	}

	var assignedEmployeeID *kernel.UUID
	if dto.AssignedEmployeeID != nil {
		employeeID, empErr := kernel.UUIDFromBytes((*dto.AssignedEmployeeID)[:])
		if empErr != nil {
			return nil, empErr
		}
		assignedEmployeeID = &employeeID
	}

	documents := make([]workflow.DocumentRef, 0)
	if len(dto.Documents) > 0 {
		if err = json.Unmarshal(dto.Documents, &documents); err != nil {
			return nil, err
		}
	}

	return workflow.RestoreStep(id, dto.StepNumber, stepType, dto.StepName, status,
		assignedEmployeeID, dto.AssignedAt, dto.StartedAt, dto.CompletedAt, documents, dto.Notes)
}
