package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"math"
	"time"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetWorkflowStepsQueryHandler retrieves an order's workflow from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern; the
// assignee display name comes from a LEFT JOIN against the employee directory
// so unassigned steps still appear.
type GetWorkflowStepsQueryHandler struct {
	db *gorm.DB
}

// NewGetWorkflowStepsQueryHandler creates a handler for workflow step queries.
// Requires a GORM database connection for query execution.
func NewGetWorkflowStepsQueryHandler(db *gorm.DB) GetWorkflowStepsQueryHandler {
	return GetWorkflowStepsQueryHandler{db: db}
}

// Handle executes the query for one order's workflow.
// Returns the steps ordered by step number plus the progress summary.
// Returns an ObjectNotFoundError when the order has no workflow.
func (h GetWorkflowStepsQueryHandler) Handle(
	ctx context.Context,
	query GetWorkflowStepsQuery,
) (GetWorkflowStepsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetWorkflowStepsQueryResponse{}, err
	}

	response := GetWorkflowStepsQueryResponse{
		OrderID: query.OrderID(),
		Steps:   make([]WorkflowStepResponse, 0),
	}

	var currentStepNumber int
	err := h.db.WithContext(ctx).Raw(`
		SELECT current_step_number
		FROM workflows
		WHERE order_id = ?
	`, query.OrderID().Bytes()).Row().Scan(&currentStepNumber)
	if errors.Is(err, sql.ErrNoRows) {
		return GetWorkflowStepsQueryResponse{},
			errs.NewObjectNotFoundError("workflow", query.OrderID().String())
	}
	if err != nil {
		return GetWorkflowStepsQueryResponse{}, err
	}
	response.CurrentStepNumber = currentStepNumber

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			s.id,
			s.step_number,
			s.step_type,
			s.step_name,
			s.status,
			s.assigned_employee_id,
			COALESCE(e.first_name || ' ' || e.last_name, ''),
			s.assigned_at,
			s.started_at,
			s.completed_at,
			s.documents,
			s.notes
		FROM workflow_steps s
		LEFT JOIN employees e ON e.id = s.assigned_employee_id
		WHERE s.order_id = ?
		ORDER BY s.step_number
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return GetWorkflowStepsQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var step WorkflowStepResponse
		var id uuid.UUID
		var assignedEmployeeID uuid.NullUUID
		var assignedAt, startedAt, completedAt sql.NullTime
		var documents []byte

		err = rows.Scan(
			&id,
			&step.StepNumber,
			&step.StepType,
			&step.Name,
			&step.Status,
			&assignedEmployeeID,
			&step.AssigneeName,
			&assignedAt,
			&startedAt,
			&completedAt,
			&documents,
			&step.Notes,
		)
		if err != nil {
			return GetWorkflowStepsQueryResponse{}, err
		}

		stepID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return GetWorkflowStepsQueryResponse{}, idErr
		}
		step.ID = stepID

		if assignedEmployeeID.Valid {
			employeeID, empErr := kernel.UUIDFromBytes(assignedEmployeeID.UUID[:])
			if empErr != nil {
				return GetWorkflowStepsQueryResponse{}, empErr
			}
			step.AssignedEmployeeID = &employeeID
		}

		step.AssignedAt = nullableTime(assignedAt)
		step.StartedAt = nullableTime(startedAt)
		step.CompletedAt = nullableTime(completedAt)

		step.Documents = make([]DocumentResponse, 0)
		if len(documents) > 0 {
			if jsonErr := json.Unmarshal(documents, &step.Documents); jsonErr != nil {
				return GetWorkflowStepsQueryResponse{}, jsonErr
			}
		}

		response.Steps = append(response.Steps, step)
	}

	if err = rows.Err(); err != nil {
		return GetWorkflowStepsQueryResponse{}, err
	}

	response.Progress = summarizeProgress(response.Steps)

	return response, nil
}

// summarizeProgress rolls the per-step statuses up into the progress view.
func summarizeProgress(steps []WorkflowStepResponse) WorkflowProgressResponse {
	progress := WorkflowProgressResponse{TotalSteps: len(steps)}

	for _, step := range steps {
		switch step.Status {
		case "completed":
			progress.CompletedSteps++
		case "in_progress":
			progress.InProgressSteps++
		}
	}

	progress.RemainingSteps = progress.TotalSteps - progress.CompletedSteps
	if progress.TotalSteps > 0 {
		progress.ProgressPercentage = int(math.Round(
			float64(progress.CompletedSteps) / float64(progress.TotalSteps) * 100))
	}

	return progress
}

func nullableTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	return &t.Time
}
