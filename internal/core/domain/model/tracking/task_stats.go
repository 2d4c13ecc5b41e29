package tracking

import (
	"fmt"

	"manufacturing/internal/pkg/errs"
)

// TaskStats is a value object holding one snapshot of an employee's task
// counters on a project. It enforces two invariants the legacy data never did:
// every counter is non-negative, and the settled counters cannot exceed the
// assigned total (completed + inProgress + paused + cancelled ≤ assigned).
type TaskStats struct {
	assigned   int
	completed  int
	inProgress int
	paused     int
	cancelled  int
}

// NewTaskStats creates a validated counter snapshot.
func NewTaskStats(assigned, completed, inProgress, paused, cancelled int) (TaskStats, error) {
	counters := map[string]int{
		"tasksAssigned":   assigned,
		"tasksCompleted":  completed,
		"tasksInProgress": inProgress,
		"tasksPaused":     paused,
		"tasksCancelled":  cancelled,
	}
	for name, v := range counters {
		if v < 0 {
			return TaskStats{}, errs.NewValueIsInvalidErrorWithCause(name,
				fmt.Errorf("%d is negative", v))
		}
	}

	accounted := completed + inProgress + paused + cancelled
	if accounted > assigned {
		return TaskStats{}, errs.NewValueIsInvalidErrorWithCause("task stats",
			fmt.Errorf("%d tasks accounted for but only %d assigned", accounted, assigned))
	}

	return TaskStats{
		assigned:   assigned,
		completed:  completed,
		inProgress: inProgress,
		paused:     paused,
		cancelled:  cancelled,
	}, nil
}

// Assigned returns the total number of tasks assigned.
func (t TaskStats) Assigned() int { return t.assigned }

// Completed returns the number of completed tasks.
func (t TaskStats) Completed() int { return t.completed }

// InProgress returns the number of in-progress tasks.
func (t TaskStats) InProgress() int { return t.inProgress }

// Paused returns the number of paused tasks.
func (t TaskStats) Paused() int { return t.paused }

// Cancelled returns the number of cancelled tasks.
func (t TaskStats) Cancelled() int { return t.cancelled }
