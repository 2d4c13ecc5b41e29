package queries

import (
	"context"

	"manufacturing/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetProjectTeamPerformanceQueryHandler lists per-employee tracking rows for a
// project, joined against the employee directory for display names.
type GetProjectTeamPerformanceQueryHandler struct {
	db *gorm.DB
}

// NewGetProjectTeamPerformanceQueryHandler creates a handler for team performance queries.
// Requires a GORM database connection for query execution.
func NewGetProjectTeamPerformanceQueryHandler(db *gorm.DB) GetProjectTeamPerformanceQueryHandler {
	return GetProjectTeamPerformanceQueryHandler{db: db}
}

// Handle executes the team performance query for one project.
// Rows come back ordered by efficiency descending; ties keep their insertion
// order. A project without tracking records yields an empty slice.
func (h GetProjectTeamPerformanceQueryHandler) Handle(
	ctx context.Context,
	query GetProjectTeamPerformanceQuery,
) ([]GetProjectTeamPerformanceQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	team := make([]GetProjectTeamPerformanceQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			r.employee_id,
			COALESCE(e.first_name || ' ' || e.last_name, ''),
			r.tasks_assigned,
			r.tasks_completed,
			r.hours_worked,
			r.efficiency_percentage
		FROM tracking_records r
		LEFT JOIN employees e ON e.id = r.employee_id
		WHERE r.project_id = ?
		ORDER BY r.efficiency_percentage DESC, r.created_at
	`, query.ProjectID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var member GetProjectTeamPerformanceQueryResponse
		var employeeID uuid.UUID

		err = rows.Scan(
			&employeeID,
			&member.EmployeeName,
			&member.TasksAssigned,
			&member.TasksCompleted,
			&member.HoursWorked,
			&member.EfficiencyPercentage,
		)
		if err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(employeeID[:])
		if idErr != nil {
			return nil, idErr
		}
		member.EmployeeID = id

		team = append(team, member)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return team, nil
}
