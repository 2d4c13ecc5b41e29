package commands_test

import (
	"context"
	"testing"
	"time"

	"manufacturing/internal/core/application/usecases/commands"
	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/milestone"
	"manufacturing/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockMilestoneRepository struct{ mock.Mock }

func (m *MockMilestoneRepository) Add(ctx context.Context, aggregate *milestone.Milestone) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockMilestoneRepository) Update(ctx context.Context, aggregate *milestone.Milestone) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockMilestoneRepository) Get(ctx context.Context, id kernel.UUID) (*milestone.Milestone, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*milestone.Milestone), args.Error(1)
}

func (m *MockMilestoneRepository) GetAllOverdue(ctx context.Context) ([]*milestone.Milestone, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*milestone.Milestone), args.Error(1)
}

type MockMilestoneUoW struct{ mock.Mock }

func (m *MockMilestoneUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockMilestoneUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockMilestoneUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockMilestoneUoW) MilestoneRepository() ports.MilestoneRepository {
	args := m.Called()
	return args.Get(0).(ports.MilestoneRepository)
}

type MockMilestoneUoWFactory struct{ mock.Mock }

func (m *MockMilestoneUoWFactory) Create() commands.MilestoneUoW {
	args := m.Called()
	return args.Get(0).(commands.MilestoneUoW)
}

func overdueMilestone(t *testing.T) *milestone.Milestone {
	t.Helper()
	past := time.Now().UTC().Add(-24 * time.Hour)
	aggregate, err := milestone.NewMilestone(kernel.NewUUID(), kernel.NewUUID(), "FAT report", &past)
	require.NoError(t, err)
	return aggregate
}

func TestMarkDelayedMilestonesCommandHandler_Handle_MarksOverdue(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewMarkDelayedMilestonesCommand()

	first := overdueMilestone(t)
	second := overdueMilestone(t)

	milestoneRepo := new(MockMilestoneRepository)
	uow := new(MockMilestoneUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MilestoneRepository").Return(milestoneRepo).Once(),
		milestoneRepo.On("GetAllOverdue", ctx).
			Return([]*milestone.Milestone{first, second}, nil).Once(),
		milestoneRepo.On("Update", ctx, first).Return(nil).Once(),
		milestoneRepo.On("Update", ctx, second).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMilestoneUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMarkDelayedMilestonesCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, milestone.Delayed, first.Status())
	require.Equal(t, milestone.Delayed, second.Status())

	milestoneRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestMarkDelayedMilestonesCommandHandler_Handle_NothingOverdue(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewMarkDelayedMilestonesCommand()

	milestoneRepo := new(MockMilestoneRepository)
	uow := new(MockMilestoneUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MilestoneRepository").Return(milestoneRepo).Once(),
		milestoneRepo.On("GetAllOverdue", ctx).Return([]*milestone.Milestone{}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMilestoneUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMarkDelayedMilestonesCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	milestoneRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
}

func TestMarkDelayedMilestonesCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.MarkDelayedMilestonesCommand{} // not constructed properly

	factory := new(MockMilestoneUoWFactory)
	handler := commands.NewMarkDelayedMilestonesCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrMarkDelayedMilestonesCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
