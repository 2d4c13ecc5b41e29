package commands

import (
	"errors"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/pkg/guard"
)

var (
	ErrAssignEmployeeCommandIsNotConstructed = errors.New(
		"AssignEmployeeCommand must be created via NewAssignEmployeeCommand constructor",
	)
)

// AssignEmployeeCommand represents a request to put an employee on a workflow
// step. Reassigning an already-assigned step overwrites the previous assignee.
type AssignEmployeeCommand struct { //nolint:recvcheck //using for validation
	stepID     kernel.UUID
	employeeID kernel.UUID
	reason     string

	guard guard.ConstructorGuard
}

// NewAssignEmployeeCommand creates a command to assign an employee to a step.
// The reason is free text carried through to the employee's task inbox; it may
// be empty.
func NewAssignEmployeeCommand(stepID, employeeID kernel.UUID, reason string) (AssignEmployeeCommand, error) {
	command := AssignEmployeeCommand{
		reason: reason,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setStepID(stepID),
		command.setEmployeeID(employeeID),
	); err != nil {
		return AssignEmployeeCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignEmployeeCommandIsNotConstructed if validation fails.
func (c AssignEmployeeCommand) Validate() error {
	return c.guard.Validate(ErrAssignEmployeeCommandIsNotConstructed)
}

// StepID returns the step ID from the command.
func (c AssignEmployeeCommand) StepID() kernel.UUID {
	return c.stepID
}

// EmployeeID returns the employee ID from the command.
func (c AssignEmployeeCommand) EmployeeID() kernel.UUID {
	return c.employeeID
}

// Reason returns the free-text assignment reason, possibly empty.
func (c AssignEmployeeCommand) Reason() string {
	return c.reason
}

func (c *AssignEmployeeCommand) setStepID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.stepID = id
	return nil
}

func (c *AssignEmployeeCommand) setEmployeeID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.employeeID = id
	return nil
}
