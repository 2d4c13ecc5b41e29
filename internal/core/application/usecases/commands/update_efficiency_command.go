package commands

import (
	"errors"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/pkg/guard"
)

var (
	ErrUpdateEfficiencyCommandIsNotConstructed = errors.New(
		"UpdateEfficiencyCommand must be created via NewUpdateEfficiencyCommand constructor",
	)
)

// UpdateEfficiencyCommand represents a request to set an employee's efficiency
// rating on a project.
type UpdateEfficiencyCommand struct { //nolint:recvcheck //using for validation
	employeeID kernel.UUID
	projectID  kernel.UUID
	efficiency kernel.Percentage

	guard guard.ConstructorGuard
}

// NewUpdateEfficiencyCommand creates a command to set an efficiency rating.
func NewUpdateEfficiencyCommand(employeeID, projectID kernel.UUID,
	efficiency kernel.Percentage) (UpdateEfficiencyCommand, error) {
	command := UpdateEfficiencyCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setEmployeeID(employeeID),
		command.setProjectID(projectID),
	); err != nil {
		return UpdateEfficiencyCommand{}, err
	}

	command.efficiency = efficiency
	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateEfficiencyCommandIsNotConstructed if validation fails.
func (c UpdateEfficiencyCommand) Validate() error {
	return c.guard.Validate(ErrUpdateEfficiencyCommandIsNotConstructed)
}

// EmployeeID returns the employee ID from the command.
func (c UpdateEfficiencyCommand) EmployeeID() kernel.UUID {
	return c.employeeID
}

// ProjectID returns the project ID from the command.
func (c UpdateEfficiencyCommand) ProjectID() kernel.UUID {
	return c.projectID
}

// Efficiency returns the efficiency rating from the command.
func (c UpdateEfficiencyCommand) Efficiency() kernel.Percentage {
	return c.efficiency
}

func (c *UpdateEfficiencyCommand) setEmployeeID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.employeeID = id
	return nil
}

func (c *UpdateEfficiencyCommand) setProjectID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.projectID = id
	return nil
}
