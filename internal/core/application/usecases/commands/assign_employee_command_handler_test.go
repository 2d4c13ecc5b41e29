package commands_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"manufacturing/internal/core/application/usecases/commands"
	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/workflow"
	"manufacturing/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockEmployeeDirectory struct{ mock.Mock }

func (m *MockEmployeeDirectory) Exists(ctx context.Context, employeeID kernel.UUID) (bool, error) {
	args := m.Called(ctx, employeeID)
	return args.Bool(0), args.Error(1)
}

type MockTaskInbox struct{ mock.Mock }

func (m *MockTaskInbox) NotifyAssignment(ctx context.Context, employeeID, orderID, stepID kernel.UUID,
	stepName, reason string) error {
	args := m.Called(ctx, employeeID, orderID, stepID, stepName, reason)
	return args.Error(0)
}

func TestAssignEmployeeCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	aggregate, err := workflow.NewWorkflow(kernel.NewUUID(), time.Now().UTC())
	require.NoError(t, err)
	step := aggregate.Steps()[0]
	employeeID := kernel.NewUUID()

	cmd, err := commands.NewAssignEmployeeCommand(step.ID(), employeeID, "urgent rework")
	require.NoError(t, err)

	employees := new(MockEmployeeDirectory)
	inbox := new(MockTaskInbox)
	workflowRepo := new(MockWorkflowRepository)
	uow := new(MockWorkflowUoW)

	mock.InOrder(
		employees.On("Exists", ctx, employeeID).Return(true, nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WorkflowRepository").Return(workflowRepo).Once(),
		workflowRepo.On("GetByStepID", ctx, step.ID()).Return(aggregate, nil).Once(),
		workflowRepo.On("Update", ctx, mock.AnythingOfType("*workflow.Workflow")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		inbox.On("NotifyAssignment", ctx, employeeID, aggregate.OrderID(), step.ID(), step.Name(),
			"urgent rework").Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockWorkflowUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignEmployeeCommandHandler(factory, employees, inbox,
		slog.New(slog.DiscardHandler))
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, step.AssignedEmployeeID())
	require.True(t, step.AssignedEmployeeID().IsEqual(employeeID))
	require.NotNil(t, step.AssignedAt())

	employees.AssertExpectations(t)
	inbox.AssertExpectations(t)
	workflowRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAssignEmployeeCommandHandler_Handle_UnknownEmployee(t *testing.T) {
	ctx := t.Context()
	employeeID := kernel.NewUUID()

	cmd, err := commands.NewAssignEmployeeCommand(kernel.NewUUID(), employeeID, "")
	require.NoError(t, err)

	employees := new(MockEmployeeDirectory)
	employees.On("Exists", ctx, employeeID).Return(false, nil).Once()

	inbox := new(MockTaskInbox)
	factory := new(MockWorkflowUoWFactory)

	handler := commands.NewAssignEmployeeCommandHandler(factory, employees, inbox,
		slog.New(slog.DiscardHandler))
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	factory.AssertNotCalled(t, "Create")
	inbox.AssertNotCalled(t, "NotifyAssignment",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAssignEmployeeCommandHandler_Handle_InboxFailureDoesNotFail(t *testing.T) {
	ctx := t.Context()

	aggregate, err := workflow.NewWorkflow(kernel.NewUUID(), time.Now().UTC())
	require.NoError(t, err)
	step := aggregate.Steps()[0]
	employeeID := kernel.NewUUID()

	cmd, err := commands.NewAssignEmployeeCommand(step.ID(), employeeID, "")
	require.NoError(t, err)

	employees := new(MockEmployeeDirectory)
	inbox := new(MockTaskInbox)
	workflowRepo := new(MockWorkflowRepository)
	uow := new(MockWorkflowUoW)

	mock.InOrder(
		employees.On("Exists", ctx, employeeID).Return(true, nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WorkflowRepository").Return(workflowRepo).Once(),
		workflowRepo.On("GetByStepID", ctx, step.ID()).Return(aggregate, nil).Once(),
		workflowRepo.On("Update", ctx, mock.AnythingOfType("*workflow.Workflow")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		inbox.On("NotifyAssignment", ctx, employeeID, aggregate.OrderID(), step.ID(), step.Name(),
			"").Return(errors.New("inbox unavailable")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockWorkflowUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignEmployeeCommandHandler(factory, employees, inbox,
		slog.New(slog.DiscardHandler))
	err = handler.Handle(ctx, cmd)

	// The committed assignment stands even when the notification fails.
	require.NoError(t, err)
}
