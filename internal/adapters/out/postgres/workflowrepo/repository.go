package workflowrepo

import (
	"context"
	"errors"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/workflow"
	"manufacturing/internal/core/ports"
	"manufacturing/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

var _ ports.WorkflowRepository = &GormWorkflowRepository{}

// aggregateTracker is an interface for tracking aggregates within a unit of work.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormWorkflowRepository provides GORM-based persistence for workflow aggregates.
type GormWorkflowRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormWorkflowRepository creates a new GORM-based workflow repository.
// Requires a database connection and an aggregate tracker for unit of work integration.
func NewGormWorkflowRepository(db *gorm.DB, tracker aggregateTracker) *GormWorkflowRepository {
	return &GormWorkflowRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add persists a new workflow aggregate together with all of its steps.
// Returns ErrObjectAlreadyExists when a workflow for the order is already stored,
// which surfaces the once-per-order rule even under concurrent initialization.
func (r *GormWorkflowRepository) Add(ctx context.Context, aggregate *workflow.Workflow) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return errs.NewObjectAlreadyExistsError("workflow", aggregate.OrderID())
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.OrderID(), aggregate)

	return nil
}

// Update saves changes to an existing workflow aggregate.
// Uses FullSaveAssociations to ensure step changes are persisted with the root.
func (r *GormWorkflowRepository) Update(ctx context.Context, aggregate *workflow.Workflow) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.OrderID(), aggregate)

	return nil
}

// GetByOrderID retrieves the workflow aggregate for an order with all of its steps.
// Returns ErrObjectNotFound if no workflow has been initialized for the order.
func (r *GormWorkflowRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*workflow.Workflow, error) {
	dto := WorkflowDTO{}

	result := r.db.WithContext(ctx).
		Preload("Steps", func(db *gorm.DB) *gorm.DB {
			return db.Order("workflow_steps.step_number ASC")
		}).
		First(&dto, "order_id = ?", orderID.Bytes())
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("workflow", orderID)
		}
		return nil, result.Error
	}

	return toDomain(dto)
}

// GetByStepID resolves the workflow aggregate that owns the given step.
// Steps are addressed directly by their identifier at the API boundary, so the
// owning order is looked up first and the full aggregate loaded afterwards.
func (r *GormWorkflowRepository) GetByStepID(ctx context.Context, stepID kernel.UUID) (*workflow.Workflow, error) {
	var ownerID uuid.UUID

	result := r.db.WithContext(ctx).
		Model(&WorkflowStepDTO{}).
		Select("order_id").
		Where("id = ?", stepID.Bytes()).
		First(&ownerID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("workflow step", stepID)
		}
		return nil, result.Error
	}

	orderID, err := kernel.UUIDFromBytes(ownerID[:])
	if err != nil {
		return nil, err
	}

	return r.GetByOrderID(ctx, orderID)
}

// isUniqueViolation reports whether the error is a PostgreSQL unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
