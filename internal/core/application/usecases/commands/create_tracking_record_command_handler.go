package commands

import (
	"context"
	"time"

	"manufacturing/internal/core/domain/model/tracking"
	"manufacturing/internal/core/ports"
	"manufacturing/internal/pkg/errs"
)

// CreateTrackingRecordCommandHandler handles opening tracking ledger records.
// Verifies the employee against the directory before persisting; the database's
// unique constraint on (employee, project, stage) rejects duplicates.
type CreateTrackingRecordCommandHandler struct {
	uowFactory TrackingUoWFactory
	employees  ports.EmployeeDirectory
}

// NewCreateTrackingRecordCommandHandler creates a handler for record creation.
func NewCreateTrackingRecordCommandHandler(uowFactory TrackingUoWFactory,
	employees ports.EmployeeDirectory) CreateTrackingRecordCommandHandler {
	return CreateTrackingRecordCommandHandler{
		uowFactory: uowFactory,
		employees:  employees,
	}
}

// Handle processes the record creation command.
// Returns an ObjectNotFoundError for unknown employees and an
// ObjectAlreadyExistsError when a record for the identity already exists.
func (h CreateTrackingRecordCommandHandler) Handle(ctx context.Context,
	cmd CreateTrackingRecordCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	exists, err := h.employees.Exists(ctx, cmd.EmployeeID())
	if err != nil {
		return err
	}
	if !exists {
		return errs.NewObjectNotFoundError("employee", cmd.EmployeeID().String())
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := tracking.NewTrackingRecord(cmd.TrackingID(), cmd.EmployeeID(),
		cmd.ProjectID(), cmd.ProductionStageID(), time.Now().UTC())
	if err != nil {
		return err
	}

	if err = uow.TrackingRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
