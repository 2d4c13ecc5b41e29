package queries

import (
	"errors"
	"time"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/pkg/guard"
)

var (
	ErrGetMilestonesQueryIsNotConstructed = errors.New(
		"GetMilestonesQuery must be created via NewGetMilestonesQuery constructor",
	)
)

// GetMilestonesQuery retrieves a project's milestones ordered by target date,
// soonest first, with undated milestones last.
type GetMilestonesQuery struct {
	projectID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetMilestonesQuery creates a query for a project's milestones.
func NewGetMilestonesQuery(projectID kernel.UUID) (GetMilestonesQuery, error) {
	if err := projectID.Validate(); err != nil {
		return GetMilestonesQuery{}, err
	}

	return GetMilestonesQuery{
		projectID: projectID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetMilestonesQueryIsNotConstructed if validation fails.
func (q GetMilestonesQuery) Validate() error {
	return q.guard.Validate(ErrGetMilestonesQueryIsNotConstructed)
}

// ProjectID returns the project ID from the query.
func (q GetMilestonesQuery) ProjectID() kernel.UUID {
	return q.projectID
}

// GetMilestonesQueryResponse represents one milestone in the read model.
type GetMilestonesQueryResponse struct {
	ID                   kernel.UUID
	Name                 string
	TargetDate           *time.Time
	Status               string
	CompletionPercentage int
}
