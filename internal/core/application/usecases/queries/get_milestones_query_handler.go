package queries

import (
	"context"
	"database/sql"

	"manufacturing/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetMilestonesQueryHandler retrieves a project's milestones from the database.
type GetMilestonesQueryHandler struct {
	db *gorm.DB
}

// NewGetMilestonesQueryHandler creates a handler for milestone list queries.
// Requires a GORM database connection for query execution.
func NewGetMilestonesQueryHandler(db *gorm.DB) GetMilestonesQueryHandler {
	return GetMilestonesQueryHandler{db: db}
}

// Handle executes the query for a project's milestones.
// Returns milestones ordered by target date ascending with NULL dates last.
// A project without milestones yields an empty slice, not an error.
func (h GetMilestonesQueryHandler) Handle(
	ctx context.Context,
	query GetMilestonesQuery,
) ([]GetMilestonesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	milestones := make([]GetMilestonesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			target_date,
			status,
			completion_percentage
		FROM milestones
		WHERE project_id = ?
		ORDER BY target_date ASC NULLS LAST
	`, query.ProjectID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var milestone GetMilestonesQueryResponse
		var id uuid.UUID
		var targetDate sql.NullTime

		err = rows.Scan(
			&id,
			&milestone.Name,
			&targetDate,
			&milestone.Status,
			&milestone.CompletionPercentage,
		)
		if err != nil {
			return nil, err
		}

		milestoneID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		milestone.ID = milestoneID
		milestone.TargetDate = nullableTime(targetDate)

		milestones = append(milestones, milestone)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return milestones, nil
}
