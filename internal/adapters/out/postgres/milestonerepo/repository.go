package milestonerepo

import (
	"context"
	"errors"
	"time"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/milestone"
	"manufacturing/internal/core/ports"
	"manufacturing/internal/pkg/errs"

	"gorm.io/gorm"
)

var _ ports.MilestoneRepository = &GormMilestoneRepository{}

// aggregateTracker is an interface for tracking aggregates within a unit of work.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormMilestoneRepository provides GORM-based persistence for milestone aggregates.
type GormMilestoneRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormMilestoneRepository creates a new GORM-based milestone repository.
func NewGormMilestoneRepository(db *gorm.DB, tracker aggregateTracker) *GormMilestoneRepository {
	return &GormMilestoneRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add persists a new milestone aggregate to the database.
func (r *GormMilestoneRepository) Add(ctx context.Context, aggregate *milestone.Milestone) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)

	return nil
}

// Update saves changes to an existing milestone aggregate.
func (r *GormMilestoneRepository) Update(ctx context.Context, aggregate *milestone.Milestone) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)

	return nil
}

// Get retrieves a milestone aggregate by its unique identifier.
// Returns ErrObjectNotFound if no milestone exists with the given ID.
func (r *GormMilestoneRepository) Get(ctx context.Context, id kernel.UUID) (*milestone.Milestone, error) {
	dto := MilestoneDTO{}

	result := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes())
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("milestone", id)
		}
		return nil, result.Error
	}

	return toDomain(dto)
}

// GetAllOverdue retrieves milestones whose target date has passed and whose
// status is still open. Completed and already delayed milestones are excluded
// so the delay sweep never reprocesses settled work.
func (r *GormMilestoneRepository) GetAllOverdue(ctx context.Context) ([]*milestone.Milestone, error) {
	var dtos []MilestoneDTO

	result := r.db.WithContext(ctx).
		Where("target_date IS NOT NULL AND target_date < ?", time.Now().UTC()).
		Where("status NOT IN ?", []string{
			milestone.Completed.String(),
			milestone.Delayed.String(),
		}).
		Find(&dtos)
	if result.Error != nil {
		return nil, result.Error
	}

	aggregates := make([]*milestone.Milestone, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		aggregates = append(aggregates, aggregate)
	}

	return aggregates, nil
}
