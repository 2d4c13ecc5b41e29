package commands

import (
	"errors"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/workflow"
	"manufacturing/internal/pkg/guard"
)

var (
	ErrUpdateStepStatusCommandIsNotConstructed = errors.New(
		"UpdateStepStatusCommand must be created via NewUpdateStepStatusCommand constructor",
	)
)

// UpdateStepStatusCommand represents a request to move a workflow step to a new
// status, optionally replacing the step's notes.
type UpdateStepStatusCommand struct { //nolint:recvcheck //using for validation
	stepID kernel.UUID
	status workflow.Status
	notes  string

	guard guard.ConstructorGuard
}

// NewUpdateStepStatusCommand creates a command to change a step's status.
// The target status must be one of the named workflow statuses; whether the
// transition is allowed from the step's current status is decided by the
// aggregate when the command is handled.
func NewUpdateStepStatusCommand(stepID kernel.UUID, status workflow.Status,
	notes string) (UpdateStepStatusCommand, error) {
	command := UpdateStepStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setStepID(stepID),
		command.setStatus(status),
	); err != nil {
		return UpdateStepStatusCommand{}, err
	}

	command.notes = notes
	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateStepStatusCommandIsNotConstructed if validation fails.
func (c UpdateStepStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateStepStatusCommandIsNotConstructed)
}

// StepID returns the step ID from the command.
func (c UpdateStepStatusCommand) StepID() kernel.UUID {
	return c.stepID
}

// Status returns the target status from the command.
func (c UpdateStepStatusCommand) Status() workflow.Status {
	return c.status
}

// Notes returns the replacement notes from the command (empty keeps existing notes).
func (c UpdateStepStatusCommand) Notes() string {
	return c.notes
}

func (c *UpdateStepStatusCommand) setStepID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.stepID = id
	return nil
}

func (c *UpdateStepStatusCommand) setStatus(status workflow.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
