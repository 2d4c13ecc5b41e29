package commands

import (
	"errors"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/pkg/guard"
)

var (
	ErrInitializeWorkflowCommandIsNotConstructed = errors.New(
		"InitializeWorkflowCommand must be created via NewInitializeWorkflowCommand constructor",
	)
)

// InitializeWorkflowCommand represents a request to create the full production
// step sequence for a sales order. The order enters the workflow at step one.
//
// Example:
//
//	cmd, err := NewInitializeWorkflowCommand(orderID)
//	if err != nil {
//	    return fmt.Errorf("invalid order id: %w", err)
//	}
//
//	handler := NewInitializeWorkflowCommandHandler(uowFactory, orders)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to initialize workflow: %w", err)
//	}
type InitializeWorkflowCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewInitializeWorkflowCommand creates a command to initialize an order's workflow.
func NewInitializeWorkflowCommand(orderID kernel.UUID) (InitializeWorkflowCommand, error) {
	command := InitializeWorkflowCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return InitializeWorkflowCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrInitializeWorkflowCommandIsNotConstructed if validation fails.
func (c InitializeWorkflowCommand) Validate() error {
	return c.guard.Validate(ErrInitializeWorkflowCommandIsNotConstructed)
}

// OrderID returns the order ID from the command.
func (c InitializeWorkflowCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *InitializeWorkflowCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderID = id
	return nil
}
