// Package milestonerepo provides data transfer objects and mapping functions for
// milestone persistence. This package implements the repository pattern for the
// milestone domain aggregate.
package milestonerepo

import (
	"time"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/milestone"

	"github.com/google/uuid"
)

// MilestoneDTO represents the database structure for persisting milestone aggregates.
type MilestoneDTO struct {
	ID                   uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ProjectID            uuid.UUID  `gorm:"type:uuid;not null;index"`
	Name                 string     `gorm:"type:varchar(255);not null"`
	TargetDate           *time.Time `gorm:"index"`
	Status               string     `gorm:"type:varchar(32);not null"`
	CompletionPercentage int        `gorm:"type:int;not null"`
}

// TableName specifies the database table name for milestone entities.
func (MilestoneDTO) TableName() string {
	return "milestones"
}

// fromDomain converts a milestone domain aggregate to its database representation.
func fromDomain(aggregate *milestone.Milestone) MilestoneDTO {
	return MilestoneDTO{
		ID:                   aggregate.ID().Bytes(),
		ProjectID:            aggregate.ProjectID().Bytes(),
		Name:                 aggregate.Name(),
		TargetDate:           aggregate.TargetDate(),
		Status:               aggregate.Status().String(),
		CompletionPercentage: aggregate.Completion().Value(),
	}
}

// toDomain converts a database DTO to a milestone domain aggregate.
func toDomain(dto MilestoneDTO) (*milestone.Milestone, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	projectID, err := kernel.UUIDFromBytes(dto.ProjectID[:])
	if err != nil {
		return nil, err
	}

	status, err := milestone.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	completion, err := kernel.NewPercentage(dto.CompletionPercentage)
	if err != nil {
		return nil, err
	}

	return milestone.RestoreMilestone(id, projectID, dto.Name, dto.TargetDate, status, completion)
}
