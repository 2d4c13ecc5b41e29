package workflow

import (
	"errors"
	"fmt"

	"manufacturing/internal/pkg/errs"
)

// ErrInvalidStatusTransition is returned when the transition table forbids a
// requested status change. Distinct from plain validation errors so the API
// boundary can report it as a conflict rather than a bad request.
var ErrInvalidStatusTransition = errors.New("status transition is not allowed")

// Status represents the lifecycle state of a single workflow step.
// It implements a state machine with an explicit transition table:
//
//	Pending ────> InProgress ────> Completed (terminal)
//	   │              │ ▲
//	   │              ▼ │
//	   ├────────> OnHold┘
//	   │              │
//	   └────────> Rejected ──> InProgress (rework)
//
// Completed admits no further transitions. Rejected steps may be reworked by
// moving them back to InProgress; OnHold steps resume to InProgress or end in
// Rejected. There is no transition table in the legacy data this replaces, so
// the table above is the enforced contract.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of every step except the first one,
	// which is seeded InProgress when the workflow is initialized.
	Pending

	// InProgress indicates the step is actively being worked.
	InProgress

	// Completed indicates the step is finished. Terminal.
	Completed

	// OnHold indicates work on the step is paused.
	OnHold

	// Rejected indicates the step failed verification. It can be reworked.
	Rejected
)

// getStatusStrings returns a map of Status values to their wire representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		InProgress: "in_progress",
		Completed:  "completed",
		OnHold:     "on_hold",
		Rejected:   "rejected",
	}
}

// getValidStatusStrings returns only the statuses accepted from external input.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		InProgress: "in_progress",
		Completed:  "completed",
		OnHold:     "on_hold",
		Rejected:   "rejected",
	}
}

// transitions is the enforced transition table. Absence of a key (Completed)
// means the state is terminal.
var transitions = map[Status][]Status{
	Pending:    {InProgress, OnHold, Rejected},
	InProgress: {Completed, OnHold, Rejected},
	OnHold:     {InProgress, Rejected},
	Rejected:   {InProgress},
}

// StatusFromString parses a wire status value. Unrecognized values are rejected
// with a ValueIsInvalidError, never coerced.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid step status", s))
}

// Validate checks that the Status is one of the five recognized values.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, or "unknown" for invalid values.
// Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no transitions are allowed out of the status.
func (s Status) IsTerminal() bool {
	return s == Completed
}

// CanTransitionTo reports whether the table permits moving to next.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo validates and performs a transition, returning the new status.
// Returns an error wrapping ErrInvalidStatusTransition naming both states when
// the table forbids the move.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return Unknown, err
	}

	if !s.CanTransitionTo(next) {
		return Unknown, fmt.Errorf("%w: cannot transition step from %s to %s",
			ErrInvalidStatusTransition, s, next)
	}

	return next, nil
}
