package commands

import (
	"errors"

	"manufacturing/internal/pkg/guard"
)

var ErrMarkDelayedMilestonesCommandIsNotConstructed = errors.New(
	"MarkDelayedMilestonesCommand must be created via NewMarkDelayedMilestonesCommand constructor",
)

// MarkDelayedMilestonesCommand triggers a sweep over all milestones that are
// past their target date and not yet settled, marking them delayed.
// This is a parameterless command; the scheduled job runs it every minute.
//
// Example:
//
//	cmd := NewMarkDelayedMilestonesCommand()
//	handler := NewMarkDelayedMilestonesCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("Delay sweep failed: %v", err)
//	}
type MarkDelayedMilestonesCommand struct {
	guard guard.ConstructorGuard
}

// NewMarkDelayedMilestonesCommand creates a new command to run the delay sweep.
func NewMarkDelayedMilestonesCommand() MarkDelayedMilestonesCommand {
	return MarkDelayedMilestonesCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrMarkDelayedMilestonesCommandIsNotConstructed if validation fails.
func (c *MarkDelayedMilestonesCommand) Validate() error {
	return c.guard.Validate(
		ErrMarkDelayedMilestonesCommandIsNotConstructed,
	)
}
