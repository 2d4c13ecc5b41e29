package commands_test

import (
	"testing"
	"time"

	"manufacturing/internal/core/application/usecases/commands"
	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/milestone"
	"manufacturing/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateMilestoneProgressCommandHandler_Handle_PersistsNewCompletion(t *testing.T) {
	ctx := t.Context()
	milestoneID := kernel.NewUUID()

	due := time.Now().UTC().AddDate(0, 1, 0)
	aggregate, err := milestone.NewMilestone(milestoneID, kernel.NewUUID(), "Frame assembly", &due)
	require.NoError(t, err)

	completion, err := kernel.NewPercentage(65)
	require.NoError(t, err)
	cmd, err := commands.NewUpdateMilestoneProgressCommand(milestoneID, completion)
	require.NoError(t, err)

	milestoneRepo := new(MockMilestoneRepository)
	uow := new(MockMilestoneUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MilestoneRepository").Return(milestoneRepo).Once(),
		milestoneRepo.On("Get", ctx, milestoneID).Return(aggregate, nil).Once(),
		milestoneRepo.On("Update", ctx, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMilestoneUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateMilestoneProgressCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, 65, aggregate.Completion().Value())

	milestoneRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestUpdateMilestoneProgressCommandHandler_Handle_UnknownMilestone_ReturnsNotFound(t *testing.T) {
	ctx := t.Context()
	milestoneID := kernel.NewUUID()

	completion, err := kernel.NewPercentage(30)
	require.NoError(t, err)
	cmd, err := commands.NewUpdateMilestoneProgressCommand(milestoneID, completion)
	require.NoError(t, err)

	milestoneRepo := new(MockMilestoneRepository)
	uow := new(MockMilestoneUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MilestoneRepository").Return(milestoneRepo).Once(),
		milestoneRepo.On("Get", ctx, milestoneID).
			Return(nil, errs.NewObjectNotFoundError("milestone", milestoneID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMilestoneUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateMilestoneProgressCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	uow.AssertNotCalled(t, "Commit", ctx)
	milestoneRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
	milestoneRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateMilestoneProgressCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.UpdateMilestoneProgressCommand{} // not constructed properly

	factory := new(MockMilestoneUoWFactory)
	handler := commands.NewUpdateMilestoneProgressCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrUpdateMilestoneProgressCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
