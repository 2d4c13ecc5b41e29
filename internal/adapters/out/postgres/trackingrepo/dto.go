// Package trackingrepo provides data transfer objects and mapping functions for
// tracking record persistence. Records are keyed by their identity triple of
// employee, project and optional production stage, enforced with a unique index.
package trackingrepo

import (
	"time"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/tracking"

	"github.com/google/uuid"
)

// TrackingRecordDTO represents the database structure for persisting tracking records.
type TrackingRecordDTO struct {
	ID                   uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EmployeeID           uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_tracking_identity"`
	ProjectID            uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_tracking_identity"`
	ProductionStageID    *uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_tracking_identity"`
	TasksAssigned        int        `gorm:"type:int;not null"`
	TasksCompleted       int        `gorm:"type:int;not null"`
	TasksInProgress      int        `gorm:"type:int;not null"`
	TasksPaused          int        `gorm:"type:int;not null"`
	TasksCancelled       int        `gorm:"type:int;not null"`
	HoursWorked          float64    `gorm:"type:decimal(10,2);not null"`
	EfficiencyPercentage int        `gorm:"type:int;not null"`
	CreatedAt            time.Time  `gorm:"not null"`
	LastUpdated          time.Time  `gorm:"not null"`
}

// TableName specifies the database table name for tracking record entities.
func (TrackingRecordDTO) TableName() string {
	return "tracking_records"
}

// fromDomain converts a tracking record aggregate to its database representation.
// CreatedAt is managed by GORM on insert and left untouched on updates.
func fromDomain(aggregate *tracking.TrackingRecord) TrackingRecordDTO {
	var productionStageID *uuid.UUID
	if aggregate.ProductionStageID() != nil {
		raw := aggregate.ProductionStageID().Bytes()
		productionStageID = &raw
	}

	stats := aggregate.Stats()

	return TrackingRecordDTO{
		ID:                   aggregate.ID().Bytes(),
		EmployeeID:           aggregate.EmployeeID().Bytes(),
		ProjectID:            aggregate.ProjectID().Bytes(),
		ProductionStageID:    productionStageID,
		TasksAssigned:        stats.Assigned(),
		TasksCompleted:       stats.Completed(),
		TasksInProgress:      stats.InProgress(),
		TasksPaused:          stats.Paused(),
		TasksCancelled:       stats.Cancelled(),
		HoursWorked:          aggregate.HoursWorked(),
		EfficiencyPercentage: aggregate.Efficiency().Value(),
		LastUpdated:          aggregate.LastUpdated(),
	}
}

// toDomain converts a database DTO to a tracking record aggregate.
func toDomain(dto TrackingRecordDTO) (*tracking.TrackingRecord, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	employeeID, err := kernel.UUIDFromBytes(dto.EmployeeID[:])
	if err != nil {
		return nil, err
	}

	projectID, err := kernel.UUIDFromBytes(dto.ProjectID[:])
	if err != nil {
		return nil, err
	}

	var productionStageID *kernel.UUID
	if dto.ProductionStageID != nil {
		stageID, stageErr := kernel.UUIDFromBytes((*dto.ProductionStageID)[:])
		if stageErr != nil {
			return nil, stageErr
		}
		productionStageID = &stageID
	}

	stats, err := tracking.NewTaskStats(dto.TasksAssigned, dto.TasksCompleted,
		dto.TasksInProgress, dto.TasksPaused, dto.TasksCancelled)
	if err != nil {
		return nil, err
	}

	efficiency, err := kernel.NewPercentage(dto.EfficiencyPercentage)
	if err != nil {
		return nil, err
	}

	return tracking.RestoreTrackingRecord(id, employeeID, projectID, productionStageID,
		stats, efficiency, dto.HoursWorked, dto.LastUpdated)
}
