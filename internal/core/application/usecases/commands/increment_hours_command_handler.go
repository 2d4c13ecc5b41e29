package commands

import (
	"context"
	"errors"
	"time"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/tracking"
	"manufacturing/internal/pkg/errs"
)

// IncrementHoursCommandHandler handles worked-hour accumulation.
// Upserts by identity like the counter snapshot handler.
type IncrementHoursCommandHandler struct {
	uowFactory TrackingUoWFactory
}

// NewIncrementHoursCommandHandler creates a handler for hour accumulation.
func NewIncrementHoursCommandHandler(uowFactory TrackingUoWFactory) IncrementHoursCommandHandler {
	return IncrementHoursCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the hour accumulation command.
func (h IncrementHoursCommandHandler) Handle(ctx context.Context, cmd IncrementHoursCommand) error {
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
		if err = aggregate.AddHours(cmd.Hours(), now); err != nil {
			return err
		}
		if err = trackingRepo.Add(ctx, aggregate); err != nil {
			return err
		}
	case err != nil:
		return err
	default:
		if err = aggregate.AddHours(cmd.Hours(), now); err != nil {
			return err
		}
		if err = trackingRepo.Update(ctx, aggregate); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
