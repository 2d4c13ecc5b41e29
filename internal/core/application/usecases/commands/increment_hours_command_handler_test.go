package commands_test

import (
	"testing"
	"time"

	"manufacturing/internal/core/application/usecases/commands"
	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/tracking"
	"manufacturing/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/mock"
)

func TestNewIncrementHoursCommand_NegativeHours(t *testing.T) {
	_, err := commands.NewIncrementHoursCommand(kernel.NewUUID(), kernel.NewUUID(), -1.5)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestIncrementHoursCommandHandler_Handle_Accumulates(t *testing.T) {
	ctx := t.Context()
	employeeID := kernel.NewUUID()
	projectID := kernel.NewUUID()

	record, err := tracking.NewTrackingRecord(kernel.NewUUID(), employeeID, projectID, nil,
		time.Now().UTC())
	require.NoError(t, err)
	require.NoError(t, record.AddHours(8, time.Now().UTC()))

	cmd, err := commands.NewIncrementHoursCommand(employeeID, projectID, 4.5)
	require.NoError(t, err)

	trackingRepo := new(MockTrackingRepository)
	uow := new(MockTrackingUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TrackingRepository").Return(trackingRepo).Once(),
		trackingRepo.On("GetByIdentity", ctx, employeeID, projectID, (*kernel.UUID)(nil)).
			Return(record, nil).Once(),
		trackingRepo.On("Update", ctx, record).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTrackingUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewIncrementHoursCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.InDelta(t, 12.5, record.HoursWorked(), 0.0001)

	trackingRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestIncrementHoursCommandHandler_Handle_OpensRecordOnFirstWrite(t *testing.T) {
	ctx := t.Context()
	employeeID := kernel.NewUUID()
	projectID := kernel.NewUUID()

	cmd, err := commands.NewIncrementHoursCommand(employeeID, projectID, 6)
	require.NoError(t, err)

	trackingRepo := new(MockTrackingRepository)
	uow := new(MockTrackingUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TrackingRepository").Return(trackingRepo).Once(),
		trackingRepo.On("GetByIdentity", ctx, employeeID, projectID, (*kernel.UUID)(nil)).
			Return(nil, errs.NewObjectNotFoundError("tracking record", employeeID.String())).Once(),
		trackingRepo.On("Add", ctx, mock.AnythingOfType("*tracking.TrackingRecord")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTrackingUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewIncrementHoursCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	addCall := trackingRepo.Calls[1]
	persisted := addCall.Arguments[1].(*tracking.TrackingRecord)
	require.InDelta(t, 6, persisted.HoursWorked(), 0.0001)
}
