package commands

import (
	"errors"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/tracking"
	"manufacturing/internal/pkg/guard"
)

var (
	ErrUpdateTaskStatsCommandIsNotConstructed = errors.New(
		"UpdateTaskStatsCommand must be created via NewUpdateTaskStatsCommand constructor",
	)
)

// UpdateTaskStatsCommand represents a request to replace an employee's task
// counter snapshot on a project. The incoming snapshot overwrites the stored
// one wholesale; callers sending partial updates must merge beforehand.
type UpdateTaskStatsCommand struct { //nolint:recvcheck //using for validation
	employeeID kernel.UUID
	projectID  kernel.UUID
	stats      tracking.TaskStats

	guard guard.ConstructorGuard
}

// NewUpdateTaskStatsCommand creates a command to overwrite task counters.
// The snapshot itself is validated by tracking.NewTaskStats before it gets here.
func NewUpdateTaskStatsCommand(employeeID, projectID kernel.UUID,
	stats tracking.TaskStats) (UpdateTaskStatsCommand, error) {
	command := UpdateTaskStatsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setEmployeeID(employeeID),
		command.setProjectID(projectID),
	); err != nil {
		return UpdateTaskStatsCommand{}, err
	}

	command.stats = stats
	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateTaskStatsCommandIsNotConstructed if validation fails.
func (c UpdateTaskStatsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateTaskStatsCommandIsNotConstructed)
}

// EmployeeID returns the employee ID from the command.
func (c UpdateTaskStatsCommand) EmployeeID() kernel.UUID {
	return c.employeeID
}

// ProjectID returns the project ID from the command.
func (c UpdateTaskStatsCommand) ProjectID() kernel.UUID {
	return c.projectID
}

// Stats returns the counter snapshot from the command.
func (c UpdateTaskStatsCommand) Stats() tracking.TaskStats {
	return c.stats
}

func (c *UpdateTaskStatsCommand) setEmployeeID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.employeeID = id
	return nil
}

func (c *UpdateTaskStatsCommand) setProjectID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.projectID = id
	return nil
}
