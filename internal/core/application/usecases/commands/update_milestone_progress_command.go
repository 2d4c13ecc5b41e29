package commands

import (
	"errors"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/pkg/guard"
)

var (
	ErrUpdateMilestoneProgressCommandIsNotConstructed = errors.New(
		"UpdateMilestoneProgressCommand must be created via NewUpdateMilestoneProgressCommand constructor",
	)
)

// UpdateMilestoneProgressCommand represents a request to set a milestone's
// completion percentage. Out-of-range values are rejected at construction, not
// clamped.
type UpdateMilestoneProgressCommand struct { //nolint:recvcheck //using for validation
	milestoneID kernel.UUID
	completion  kernel.Percentage

	guard guard.ConstructorGuard
}

// NewUpdateMilestoneProgressCommand creates a command to update milestone progress.
func NewUpdateMilestoneProgressCommand(milestoneID kernel.UUID,
	completion kernel.Percentage) (UpdateMilestoneProgressCommand, error) {
	command := UpdateMilestoneProgressCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setMilestoneID(milestoneID); err != nil {
		return UpdateMilestoneProgressCommand{}, err
	}

	command.completion = completion
	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateMilestoneProgressCommandIsNotConstructed if validation fails.
func (c UpdateMilestoneProgressCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMilestoneProgressCommandIsNotConstructed)
}

// MilestoneID returns the milestone ID from the command.
func (c UpdateMilestoneProgressCommand) MilestoneID() kernel.UUID {
	return c.milestoneID
}

// Completion returns the completion percentage from the command.
func (c UpdateMilestoneProgressCommand) Completion() kernel.Percentage {
	return c.completion
}

func (c *UpdateMilestoneProgressCommand) setMilestoneID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.milestoneID = id
	return nil
}
