package commands

import (
	"errors"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/milestone"
	"manufacturing/internal/pkg/guard"
)

var (
	ErrUpdateMilestoneStatusCommandIsNotConstructed = errors.New(
		"UpdateMilestoneStatusCommand must be created via NewUpdateMilestoneStatusCommand constructor",
	)
)

// UpdateMilestoneStatusCommand represents a request to set a milestone's status
// directly. Unlike workflow steps, milestone statuses carry no transition
// table; any named status may be set at any time.
type UpdateMilestoneStatusCommand struct { //nolint:recvcheck //using for validation
	milestoneID kernel.UUID
	status      milestone.Status

	guard guard.ConstructorGuard
}

// NewUpdateMilestoneStatusCommand creates a command to change a milestone's status.
func NewUpdateMilestoneStatusCommand(milestoneID kernel.UUID,
	status milestone.Status) (UpdateMilestoneStatusCommand, error) {
	command := UpdateMilestoneStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setMilestoneID(milestoneID),
		command.setStatus(status),
	); err != nil {
		return UpdateMilestoneStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateMilestoneStatusCommandIsNotConstructed if validation fails.
func (c UpdateMilestoneStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMilestoneStatusCommandIsNotConstructed)
}

// MilestoneID returns the milestone ID from the command.
func (c UpdateMilestoneStatusCommand) MilestoneID() kernel.UUID {
	return c.milestoneID
}

// Status returns the target status from the command.
func (c UpdateMilestoneStatusCommand) Status() milestone.Status {
	return c.status
}

func (c *UpdateMilestoneStatusCommand) setMilestoneID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.milestoneID = id
	return nil
}

func (c *UpdateMilestoneStatusCommand) setStatus(status milestone.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
