package ports

import (
	"context"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/tracking"
)

// TrackingRepository defines the persistence contract for tracking records.
// Records are upserted by their (employee, project, stage) identity: the write
// commands create a record on first contact and mutate it afterwards.
type TrackingRepository interface {
	// Add persists a new tracking record.
	Add(ctx context.Context, aggregate *tracking.TrackingRecord) error

	// Update persists changes to an existing tracking record.
	Update(ctx context.Context, aggregate *tracking.TrackingRecord) error

	// Get retrieves a tracking record by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*tracking.TrackingRecord, error)

	// GetByIdentity retrieves the record for an (employee, project, stage)
	// triple. The stage may be nil for project-wide records. Returns an
	// ObjectNotFoundError when no record exists yet.
	GetByIdentity(ctx context.Context, employeeID, projectID kernel.UUID,
		productionStageID *kernel.UUID) (*tracking.TrackingRecord, error)
}
