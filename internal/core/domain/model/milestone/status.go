package milestone

import (
	"fmt"

	"manufacturing/internal/pkg/errs"
)

// Status represents the lifecycle state of a milestone. Unlike workflow steps,
// milestones have no enforced transition table: they are progress markers, and
// callers may set any recognized status at any time. Delayed is additionally set
// by the scheduled sweep when a target date passes without completion.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// NotStarted is the initial status of every milestone.
	NotStarted

	// InProgress indicates work toward the milestone has begun.
	InProgress

	// Completed indicates the milestone has been reached.
	Completed

	// Delayed indicates the target date passed before completion.
	Delayed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		NotStarted: "not_started",
		InProgress: "in_progress",
		Completed:  "completed",
		Delayed:    "delayed",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		NotStarted: "not_started",
		InProgress: "in_progress",
		Completed:  "completed",
		Delayed:    "delayed",
	}
}

// StatusFromString parses a wire status value against the closed value set.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid milestone status", s))
}

// Validate checks that the Status is one of the four recognized values.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
