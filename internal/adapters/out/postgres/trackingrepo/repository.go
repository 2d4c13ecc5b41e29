package trackingrepo

import (
	"context"
	"errors"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/tracking"
	"manufacturing/internal/core/ports"
	"manufacturing/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

var _ ports.TrackingRepository = &GormTrackingRepository{}

// aggregateTracker is an interface for tracking aggregates within a unit of work.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormTrackingRepository provides GORM-based persistence for tracking records.
type GormTrackingRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormTrackingRepository creates a new GORM-based tracking record repository.
func NewGormTrackingRepository(db *gorm.DB, tracker aggregateTracker) *GormTrackingRepository {
	return &GormTrackingRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add persists a new tracking record to the database.
// Returns ErrObjectAlreadyExists when a record with the same
// (employee, project, stage) identity is already stored.
func (r *GormTrackingRepository) Add(ctx context.Context, aggregate *tracking.TrackingRecord) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return errs.NewObjectAlreadyExistsError("tracking record", aggregate.ID())
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)

	return nil
}

// Update saves changes to an existing tracking record.
func (r *GormTrackingRepository) Update(ctx context.Context, aggregate *tracking.TrackingRecord) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	// fromDomain leaves CreatedAt zero; omit it so updates keep the insert time.
	result := r.db.WithContext(ctx).Omit("created_at").Save(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)

	return nil
}

// Get retrieves a tracking record by its unique identifier.
// Returns ErrObjectNotFound if no record exists with the given ID.
func (r *GormTrackingRepository) Get(ctx context.Context, id kernel.UUID) (*tracking.TrackingRecord, error) {
	dto := TrackingRecordDTO{}

	result := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes())
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("tracking record", id)
		}
		return nil, result.Error
	}

	return toDomain(dto)
}

// GetByIdentity retrieves the record for an (employee, project, stage) triple.
// A nil stage matches the project-wide record, which is stored with a NULL
// production stage column.
func (r *GormTrackingRepository) GetByIdentity(ctx context.Context, employeeID, projectID kernel.UUID,
	productionStageID *kernel.UUID) (*tracking.TrackingRecord, error) {
	dto := TrackingRecordDTO{}

	query := r.db.WithContext(ctx).
		Where("employee_id = ? AND project_id = ?", employeeID.Bytes(), projectID.Bytes())
	if productionStageID != nil {
		query = query.Where("production_stage_id = ?", productionStageID.Bytes())
	} else {
		query = query.Where("production_stage_id IS NULL")
	}

	result := query.First(&dto)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("tracking record", employeeID)
		}
		return nil, result.Error
	}

	return toDomain(dto)
}

// isUniqueViolation reports whether the error is a PostgreSQL unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
