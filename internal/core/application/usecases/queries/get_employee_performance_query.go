package queries

import (
	"errors"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/pkg/guard"
)

var (
	ErrGetEmployeePerformanceQueryIsNotConstructed = errors.New(
		"GetEmployeePerformanceQuery must be created via NewGetEmployeePerformanceQuery constructor",
	)
)

// GetEmployeePerformanceQuery sums an employee's tracking records across every
// project into one performance view.
type GetEmployeePerformanceQuery struct {
	employeeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetEmployeePerformanceQuery creates a query for an employee's performance.
func NewGetEmployeePerformanceQuery(employeeID kernel.UUID) (GetEmployeePerformanceQuery, error) {
	if err := employeeID.Validate(); err != nil {
		return GetEmployeePerformanceQuery{}, err
	}

	return GetEmployeePerformanceQuery{
		employeeID: employeeID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetEmployeePerformanceQueryIsNotConstructed if validation fails.
func (q GetEmployeePerformanceQuery) Validate() error {
	return q.guard.Validate(ErrGetEmployeePerformanceQueryIsNotConstructed)
}

// EmployeeID returns the employee ID from the query.
func (q GetEmployeePerformanceQuery) EmployeeID() kernel.UUID {
	return q.employeeID
}

// GetEmployeePerformanceQueryResponse is the cross-project performance summary
// for one employee. Counters and hours are sums; efficiency is the rounded
// average over the employee's records. An employee without records reports all
// zeros.
type GetEmployeePerformanceQueryResponse struct {
	EmployeeID        kernel.UUID
	TasksAssigned     int
	TasksCompleted    int
	TasksInProgress   int
	TasksPaused       int
	TasksCancelled    int
	HoursWorked       float64
	AverageEfficiency int
}
