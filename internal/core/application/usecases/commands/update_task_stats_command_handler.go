package commands

import (
	"context"
	"errors"
	"time"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/tracking"
	"manufacturing/internal/pkg/errs"
)

// UpdateTaskStatsCommandHandler handles task counter snapshot writes.
// The ledger is upserted by identity: the first write for an (employee,
// project) pair opens the record, later writes replace the stored snapshot.
type UpdateTaskStatsCommandHandler struct {
	uowFactory TrackingUoWFactory
}

// NewUpdateTaskStatsCommandHandler creates a handler for counter snapshot writes.
func NewUpdateTaskStatsCommandHandler(uowFactory TrackingUoWFactory) UpdateTaskStatsCommandHandler {
	return UpdateTaskStatsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the snapshot write command.
func (h UpdateTaskStatsCommandHandler) Handle(ctx context.Context, cmd UpdateTaskStatsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	trackingRepo := uow.TrackingRepository()
	now := time.Now().UTC()

	aggregate, err := trackingRepo.GetByIdentity(ctx, cmd.EmployeeID(), cmd.ProjectID(), nil)
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		aggregate, err = tracking.NewTrackingRecord(kernel.NewUUID(), cmd.EmployeeID(),
			cmd.ProjectID(), nil, now)
		if err != nil {
			return err
		}
		aggregate.OverwriteStats(cmd.Stats(), now)
		if err = trackingRepo.Add(ctx, aggregate); err != nil {
			return err
		}
	case err != nil:
		return err
	default:
		aggregate.OverwriteStats(cmd.Stats(), now)
		if err = trackingRepo.Update(ctx, aggregate); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
