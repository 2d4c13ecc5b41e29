package commands

import (
	"errors"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/pkg/guard"
)

var (
	ErrCreateTrackingRecordCommandIsNotConstructed = errors.New(
		"CreateTrackingRecordCommand must be created via NewCreateTrackingRecordCommand constructor",
	)
)

// CreateTrackingRecordCommand represents a request to open a tracking ledger
// record for an employee on a project, optionally narrowed to one production
// stage. Automatically generates a unique ID for the record.
type CreateTrackingRecordCommand struct { //nolint:recvcheck //using for validation
	trackingID        kernel.UUID
	employeeID        kernel.UUID
	projectID         kernel.UUID
	productionStageID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateTrackingRecordCommand creates a command to open a tracking record.
func NewCreateTrackingRecordCommand(employeeID, projectID kernel.UUID,
	productionStageID *kernel.UUID) (CreateTrackingRecordCommand, error) {
	command := CreateTrackingRecordCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setTrackingID(kernel.NewUUID()),
		command.setEmployeeID(employeeID),
		command.setProjectID(projectID),
		command.setProductionStageID(productionStageID),
	); err != nil {
		return CreateTrackingRecordCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateTrackingRecordCommandIsNotConstructed if validation fails.
func (c CreateTrackingRecordCommand) Validate() error {
	return c.guard.Validate(ErrCreateTrackingRecordCommandIsNotConstructed)
}

// TrackingID returns the generated record ID from the command.
func (c CreateTrackingRecordCommand) TrackingID() kernel.UUID {
	return c.trackingID
}

// EmployeeID returns the employee ID from the command.
func (c CreateTrackingRecordCommand) EmployeeID() kernel.UUID {
	return c.employeeID
}

// ProjectID returns the project ID from the command.
func (c CreateTrackingRecordCommand) ProjectID() kernel.UUID {
	return c.projectID
}

// ProductionStageID returns the optional production stage ID from the command.
func (c CreateTrackingRecordCommand) ProductionStageID() *kernel.UUID {
	return c.productionStageID
}

func (c *CreateTrackingRecordCommand) setTrackingID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.trackingID = id
	return nil
}

func (c *CreateTrackingRecordCommand) setEmployeeID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.employeeID = id
	return nil
}

func (c *CreateTrackingRecordCommand) setProjectID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.projectID = id
	return nil
}

func (c *CreateTrackingRecordCommand) setProductionStageID(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return err
	}

	c.productionStageID = id
	return nil
}
