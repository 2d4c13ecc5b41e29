package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetProjectProgressQueryHandler computes the milestone rollup for a project.
// The aggregation happens in SQL; the average is rounded to the nearest integer
// and COALESCEd to zero for projects without milestones.
type GetProjectProgressQueryHandler struct {
	db *gorm.DB
}

// NewGetProjectProgressQueryHandler creates a handler for progress rollup queries.
// Requires a GORM database connection for query execution.
func NewGetProjectProgressQueryHandler(db *gorm.DB) GetProjectProgressQueryHandler {
	return GetProjectProgressQueryHandler{db: db}
}

// Handle executes the rollup query for one project.
func (h GetProjectProgressQueryHandler) Handle(
	ctx context.Context,
	query GetProjectProgressQuery,
) (GetProjectProgressQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetProjectProgressQueryResponse{}, err
	}

	response := GetProjectProgressQueryResponse{ProjectID: query.ProjectID()}

	err := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'completed'),
			COUNT(*) FILTER (WHERE status = 'in_progress'),
			COUNT(*) FILTER (WHERE status = 'delayed'),
			COALESCE(ROUND(AVG(completion_percentage)), 0)
		FROM milestones
		WHERE project_id = ?
	`, query.ProjectID().Bytes()).Row().Scan(
		&response.TotalMilestones,
		&response.CompletedMilestones,
		&response.InProgressMilestones,
		&response.DelayedMilestones,
		&response.AverageCompletion,
	)
	if err != nil {
		return GetProjectProgressQueryResponse{}, err
	}

	return response, nil
}
