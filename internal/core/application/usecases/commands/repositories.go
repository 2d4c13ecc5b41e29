// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"manufacturing/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// WorkflowRepoFactory provides access to the workflow repository within a transaction.
	WorkflowRepoFactory interface {
		WorkflowRepository() ports.WorkflowRepository
	}

	// MilestoneRepoFactory provides access to the milestone repository within a transaction.
	MilestoneRepoFactory interface {
		MilestoneRepository() ports.MilestoneRepository
	}

	// TrackingRepoFactory provides access to the tracking repository within a transaction.
	TrackingRepoFactory interface {
		TrackingRepository() ports.TrackingRepository
	}

	// WorkflowUoW manages transactions for workflow-only operations.
	// Used when commands only modify workflow aggregates.
	WorkflowUoW interface {
		TxManager
		WorkflowRepoFactory
	}

	// WorkflowUoWFactory creates new workflow unit of work instances.
	WorkflowUoWFactory interface {
		Create() WorkflowUoW
	}

	// MilestoneUoW manages transactions for milestone-only operations.
	MilestoneUoW interface {
		TxManager
		MilestoneRepoFactory
	}

	// MilestoneUoWFactory creates new milestone unit of work instances.
	MilestoneUoWFactory interface {
		Create() MilestoneUoW
	}

	// TrackingUoW manages transactions for tracking-ledger operations.
	TrackingUoW interface {
		TxManager
		TrackingRepoFactory
	}

	// TrackingUoWFactory creates new tracking unit of work instances.
	TrackingUoWFactory interface {
		Create() TrackingUoW
	}
)
