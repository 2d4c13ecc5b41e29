package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetEmployeePerformanceQueryHandler sums an employee's tracking ledger.
type GetEmployeePerformanceQueryHandler struct {
	db *gorm.DB
}

// NewGetEmployeePerformanceQueryHandler creates a handler for performance queries.
// Requires a GORM database connection for query execution.
func NewGetEmployeePerformanceQueryHandler(db *gorm.DB) GetEmployeePerformanceQueryHandler {
	return GetEmployeePerformanceQueryHandler{db: db}
}

// Handle executes the summary query for one employee.
func (h GetEmployeePerformanceQueryHandler) Handle(
	ctx context.Context,
	query GetEmployeePerformanceQuery,
) (GetEmployeePerformanceQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetEmployeePerformanceQueryResponse{}, err
	}

	response := GetEmployeePerformanceQueryResponse{EmployeeID: query.EmployeeID()}

	err := h.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(tasks_assigned), 0),
			COALESCE(SUM(tasks_completed), 0),
			COALESCE(SUM(tasks_in_progress), 0),
			COALESCE(SUM(tasks_paused), 0),
			COALESCE(SUM(tasks_cancelled), 0),
			COALESCE(SUM(hours_worked), 0),
			COALESCE(ROUND(AVG(efficiency_percentage)), 0)
		FROM tracking_records
		WHERE employee_id = ?
	`, query.EmployeeID().Bytes()).Row().Scan(
		&response.TasksAssigned,
		&response.TasksCompleted,
		&response.TasksInProgress,
		&response.TasksPaused,
		&response.TasksCancelled,
		&response.HoursWorked,
		&response.AverageEfficiency,
	)
	if err != nil {
		return GetEmployeePerformanceQueryResponse{}, err
	}

	return response, nil
}
