package ports

import (
	"context"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/milestone"
)

// MilestoneRepository defines the persistence contract for milestone aggregates.
type MilestoneRepository interface {
	// Add persists a new milestone aggregate to storage.
	Add(ctx context.Context, aggregate *milestone.Milestone) error

	// Update persists changes to an existing milestone aggregate.
	Update(ctx context.Context, aggregate *milestone.Milestone) error

	// Get retrieves a milestone aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*milestone.Milestone, error)

	// GetAllOverdue retrieves every milestone whose target date has passed and
	// whose status has not yet settled (not completed, not already delayed).
	// Used by the delay sweep to mark slipped milestones.
	GetAllOverdue(ctx context.Context) ([]*milestone.Milestone, error)
}
