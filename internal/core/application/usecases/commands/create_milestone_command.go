package commands

import (
	"errors"
	"time"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/pkg/guard"
)

var (
	ErrCreateMilestoneCommandIsNotConstructed = errors.New(
		"CreateMilestoneCommand must be created via NewCreateMilestoneCommand constructor",
	)
	ErrMilestoneNameIsRequired = errors.New("milestone name is required")
)

// CreateMilestoneCommand represents a request to add a delivery milestone to a
// project. Automatically generates a unique ID for the milestone; the caller
// reads it back from the command after handling.
//
// Example:
//
//	due := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
//	cmd, err := NewCreateMilestoneCommand(projectID, "First article inspection", &due)
//	if err != nil {
//	    return fmt.Errorf("invalid milestone data: %w", err)
//	}
//
//	handler := NewCreateMilestoneCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create milestone: %w", err)
//	}
//	fmt.Printf("Created milestone with ID: %s", cmd.MilestoneID())
type CreateMilestoneCommand struct { //nolint:recvcheck //using for validation
	milestoneID kernel.UUID
	projectID   kernel.UUID
	name        string
	targetDate  *time.Time

	guard guard.ConstructorGuard
}

// NewCreateMilestoneCommand creates a command to add a milestone.
// The target date is optional; undated milestones are never marked delayed.
func NewCreateMilestoneCommand(projectID kernel.UUID, name string,
	targetDate *time.Time) (CreateMilestoneCommand, error) {
	command := CreateMilestoneCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setMilestoneID(kernel.NewUUID()),
		command.setProjectID(projectID),
		command.setName(name),
	); err != nil {
		return CreateMilestoneCommand{}, err
	}

	command.targetDate = targetDate
	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateMilestoneCommandIsNotConstructed if validation fails.
func (c CreateMilestoneCommand) Validate() error {
	return c.guard.Validate(ErrCreateMilestoneCommandIsNotConstructed)
}

// MilestoneID returns the generated milestone ID from the command.
func (c CreateMilestoneCommand) MilestoneID() kernel.UUID {
	return c.milestoneID
}

// ProjectID returns the project ID from the command.
func (c CreateMilestoneCommand) ProjectID() kernel.UUID {
	return c.projectID
}

// Name returns the milestone name from the command.
func (c CreateMilestoneCommand) Name() string {
	return c.name
}

// TargetDate returns the optional target date from the command.
func (c CreateMilestoneCommand) TargetDate() *time.Time {
	return c.targetDate
}

func (c *CreateMilestoneCommand) setMilestoneID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.milestoneID = id
	return nil
}

func (c *CreateMilestoneCommand) setProjectID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.projectID = id
	return nil
}

func (c *CreateMilestoneCommand) setName(name string) error {
	if name == "" {
		return ErrMilestoneNameIsRequired
	}

	c.name = name
	return nil
}
