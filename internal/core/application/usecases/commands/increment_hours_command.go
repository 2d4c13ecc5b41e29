package commands

import (
	"errors"
	"fmt"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/pkg/errs"
	"manufacturing/internal/pkg/guard"
)

var (
	ErrIncrementHoursCommandIsNotConstructed = errors.New(
		"IncrementHoursCommand must be created via NewIncrementHoursCommand constructor",
	)
)

// IncrementHoursCommand represents a request to add worked hours to an
// employee's ledger on a project. Hours only accumulate; there is no operation
// that subtracts them.
type IncrementHoursCommand struct { //nolint:recvcheck //using for validation
	employeeID kernel.UUID
	projectID  kernel.UUID
	hours      float64

	guard guard.ConstructorGuard
}

// NewIncrementHoursCommand creates a command to add worked hours.
// Negative deltas are rejected.
func NewIncrementHoursCommand(employeeID, projectID kernel.UUID,
	hours float64) (IncrementHoursCommand, error) {
	command := IncrementHoursCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setEmployeeID(employeeID),
		command.setProjectID(projectID),
		command.setHours(hours),
	); err != nil {
		return IncrementHoursCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrIncrementHoursCommandIsNotConstructed if validation fails.
func (c IncrementHoursCommand) Validate() error {
	return c.guard.Validate(ErrIncrementHoursCommandIsNotConstructed)
}

// EmployeeID returns the employee ID from the command.
func (c IncrementHoursCommand) EmployeeID() kernel.UUID {
	return c.employeeID
}

// ProjectID returns the project ID from the command.
func (c IncrementHoursCommand) ProjectID() kernel.UUID {
	return c.projectID
}

// Hours returns the hour delta from the command.
func (c IncrementHoursCommand) Hours() float64 {
	return c.hours
}

func (c *IncrementHoursCommand) setEmployeeID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.employeeID = id
	return nil
}

func (c *IncrementHoursCommand) setProjectID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.projectID = id
	return nil
}

func (c *IncrementHoursCommand) setHours(hours float64) error {
	if hours < 0 {
		return errs.NewValueIsInvalidErrorWithCause("hours",
			fmt.Errorf("%v is negative", hours))
	}

	c.hours = hours
	return nil
}
