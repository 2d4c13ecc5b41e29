package commands

import (
	"context"
	"errors"
	"time"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/tracking"
	"manufacturing/internal/pkg/errs"
)

// UpdateEfficiencyCommandHandler handles efficiency rating writes.
// Upserts by identity like the counter snapshot handler.
type UpdateEfficiencyCommandHandler struct {
	uowFactory TrackingUoWFactory
}

// NewUpdateEfficiencyCommandHandler creates a handler for efficiency writes.
func NewUpdateEfficiencyCommandHandler(uowFactory TrackingUoWFactory) UpdateEfficiencyCommandHandler {
	return UpdateEfficiencyCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the efficiency write command.
func (h UpdateEfficiencyCommandHandler) Handle(ctx context.Context, cmd UpdateEfficiencyCommand) error {
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
		aggregate.UpdateEfficiency(cmd.Efficiency(), now)
		if err = trackingRepo.Add(ctx, aggregate); err != nil {
			return err
		}
	case err != nil:
		return err
	default:
		aggregate.UpdateEfficiency(cmd.Efficiency(), now)
		if err = trackingRepo.Update(ctx, aggregate); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
