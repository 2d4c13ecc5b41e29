package milestone

import (
	"errors"
	"time"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/pkg/errs"
)

var (
	// ErrMilestoneIsNotConstructed is returned when a Milestone instance was not
	// created through NewMilestone or RestoreMilestone.
	ErrMilestoneIsNotConstructed = errors.New(
		"Milestone must be created via NewMilestone or RestoreMilestone constructor")
)

// Milestone is the aggregate root for one project sub-goal. The target date is
// optional: undated milestones are allowed and sort after dated ones in
// listings. Completion percentage moves independently of status; neither derives
// the other, matching how planners in the field actually use the two fields.
type Milestone struct {
	id         kernel.UUID
	projectID  kernel.UUID
	name       string
	targetDate *time.Time
	status     Status
	completion kernel.Percentage

	isConstructed bool
}

// NewMilestone creates a milestone in NotStarted status with zero completion.
// The name is required; the target date may be nil.
func NewMilestone(id, projectID kernel.UUID, name string, targetDate *time.Time) (*Milestone, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := projectID.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("milestoneName")
	}

	return &Milestone{
		id:            id,
		projectID:     projectID,
		name:          name,
		targetDate:    targetDate,
		status:        NotStarted,
		isConstructed: true,
	}, nil
}

// RestoreMilestone reconstructs a milestone from persistence.
func RestoreMilestone(
	id, projectID kernel.UUID,
	name string,
	targetDate *time.Time,
	status Status,
	completion kernel.Percentage,
) (*Milestone, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := projectID.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("milestoneName")
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Milestone{
		id:            id,
		projectID:     projectID,
		name:          name,
		targetDate:    targetDate,
		status:        status,
		completion:    completion,
		isConstructed: true,
	}, nil
}

// Validate ensures the Milestone was created through a constructor.
func (m *Milestone) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMilestoneIsNotConstructed
	}
	return nil
}

// ID returns the milestone's unique identifier.
func (m *Milestone) ID() kernel.UUID {
	return m.id
}

// ProjectID returns the owning project's identifier.
func (m *Milestone) ProjectID() kernel.UUID {
	return m.projectID
}

// Name returns the milestone's name.
func (m *Milestone) Name() string {
	return m.name
}

// TargetDate returns the target date, or nil for undated milestones.
func (m *Milestone) TargetDate() *time.Time {
	return m.targetDate
}

// Status returns the current status.
func (m *Milestone) Status() Status {
	return m.status
}

// Completion returns the completion percentage.
func (m *Milestone) Completion() kernel.Percentage {
	return m.completion
}

// UpdateProgress sets the completion percentage. Out-of-range values never reach
// this method; the Percentage constructor rejects them at the boundary.
func (m *Milestone) UpdateProgress(completion kernel.Percentage) {
	m.completion = completion
}

// ChangeStatus sets the status after validating it against the value set.
func (m *Milestone) ChangeStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	m.status = status
	return nil
}

// IsOverdue reports whether the target date has passed without completion.
// Undated milestones are never overdue.
func (m *Milestone) IsOverdue(now time.Time) bool {
	if m.targetDate == nil {
		return false
	}
	return m.targetDate.Before(now) && m.status != Completed && m.status != Delayed
}

// MarkDelayed flips an overdue milestone to Delayed. Returns true when the
// status changed, so the sweep can report how many milestones it touched.
func (m *Milestone) MarkDelayed(now time.Time) bool {
	if !m.IsOverdue(now) {
		return false
	}
	m.status = Delayed
	return true
}
