package queries

import (
	"errors"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/pkg/guard"
)

var (
	ErrGetProjectTeamPerformanceQueryIsNotConstructed = errors.New(
		"GetProjectTeamPerformanceQuery must be created via NewGetProjectTeamPerformanceQuery constructor",
	)
)

// GetProjectTeamPerformanceQuery lists the per-employee tracking rows on one
// project, most efficient first.
type GetProjectTeamPerformanceQuery struct {
	projectID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetProjectTeamPerformanceQuery creates a query for a project's team performance.
func NewGetProjectTeamPerformanceQuery(projectID kernel.UUID) (GetProjectTeamPerformanceQuery, error) {
	if err := projectID.Validate(); err != nil {
		return GetProjectTeamPerformanceQuery{}, err
	}

	return GetProjectTeamPerformanceQuery{
		projectID: projectID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetProjectTeamPerformanceQueryIsNotConstructed if validation fails.
func (q GetProjectTeamPerformanceQuery) Validate() error {
	return q.guard.Validate(ErrGetProjectTeamPerformanceQueryIsNotConstructed)
}

// ProjectID returns the project ID from the query.
func (q GetProjectTeamPerformanceQuery) ProjectID() kernel.UUID {
	return q.projectID
}

// GetProjectTeamPerformanceQueryResponse is one team member's row on a project.
// The employee name is denormalized from the employee directory.
type GetProjectTeamPerformanceQueryResponse struct {
	EmployeeID           kernel.UUID
	EmployeeName         string
	TasksAssigned        int
	TasksCompleted       int
	HoursWorked          float64
	EfficiencyPercentage int
}
