package queries

import (
	"errors"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/pkg/guard"
)

var (
	ErrGetProjectProgressQueryIsNotConstructed = errors.New(
		"GetProjectProgressQuery must be created via NewGetProjectProgressQuery constructor",
	)
)

// GetProjectProgressQuery rolls a project's milestones up into one progress
// view: status counts plus the average completion percentage.
type GetProjectProgressQuery struct {
	projectID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetProjectProgressQuery creates a query for a project's progress rollup.
func NewGetProjectProgressQuery(projectID kernel.UUID) (GetProjectProgressQuery, error) {
	if err := projectID.Validate(); err != nil {
		return GetProjectProgressQuery{}, err
	}

	return GetProjectProgressQuery{
		projectID: projectID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetProjectProgressQueryIsNotConstructed if validation fails.
func (q GetProjectProgressQuery) Validate() error {
	return q.guard.Validate(ErrGetProjectProgressQueryIsNotConstructed)
}

// ProjectID returns the project ID from the query.
func (q GetProjectProgressQuery) ProjectID() kernel.UUID {
	return q.projectID
}

// GetProjectProgressQueryResponse is the milestone rollup for one project.
// A project without milestones reports all zeros.
type GetProjectProgressQueryResponse struct {
	ProjectID            kernel.UUID
	TotalMilestones      int
	CompletedMilestones  int
	InProgressMilestones int
	DelayedMilestones    int
	AverageCompletion    int
}
