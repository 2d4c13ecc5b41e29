package commands_test

import (
	"testing"

	"manufacturing/internal/core/application/usecases/commands"
	"manufacturing/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInitializeWorkflowCommand_ValidInput(t *testing.T) {
	// Arrange
	orderID := kernel.NewUUID()

	// Act
	cmd, err := commands.NewInitializeWorkflowCommand(orderID)

	// Assert
	require.NoError(t, err)
	assert.True(t, cmd.OrderID().IsEqual(orderID))
	assert.NoError(t, cmd.Validate())
}

func TestNewInitializeWorkflowCommand_EmptyOrderID(t *testing.T) {
	// Act
	_, err := commands.NewInitializeWorkflowCommand(kernel.UUID{})

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestInitializeWorkflowCommand_Validate_ZeroValue(t *testing.T) {
	// Arrange - zero value command (not constructed via constructor)
	var cmd commands.InitializeWorkflowCommand

	// Act
	err := cmd.Validate()

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrInitializeWorkflowCommandIsNotConstructed)
}
