package workflow

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/pkg/errs"
)

var (
	// ErrWorkflowIsNotConstructed is returned when a Workflow instance was not
	// created through NewWorkflow or RestoreWorkflow.
	ErrWorkflowIsNotConstructed = errors.New(
		"Workflow must be created via NewWorkflow or RestoreWorkflow constructor")
)

// Workflow is the aggregate root for one order's progression through the stage
// catalog. It owns exactly one Step per catalog entry (numbers 1..StageCount, no
// gaps) and the persisted current-step cursor.
//
// Invariants:
//   - Steps exist for exactly the catalog sequence numbers, in order
//   - The cursor always points at a valid step number
//   - Completing the step at the cursor advances the cursor to the next step;
//     the next step stays Pending until it is explicitly started
//   - Completed steps admit no further mutations
type Workflow struct {
	orderID           kernel.UUID
	currentStepNumber int
	steps             []*Step

	isConstructed bool
}

// NewWorkflow instantiates the full step sequence for an order. Step 1 is seeded
// InProgress with startedAt stamped (the order enters its workflow the moment it
// is initialized); all other steps start Pending. The cursor starts at 1.
func NewWorkflow(orderID kernel.UUID, now time.Time) (*Workflow, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	steps := make([]*Step, 0, StageCount)
	for _, stage := range Stages() {
		steps = append(steps, NewStep(stage))
	}

	first := steps[0]
	first.status = InProgress
	first.startedAt = &now

	return &Workflow{
		orderID:           orderID,
		currentStepNumber: 1,
		steps:             steps,
		isConstructed:     true,
	}, nil
}

// RestoreWorkflow reconstructs the aggregate from persistence, re-checking the
// sequence invariant: steps must cover exactly 1..StageCount with no gaps or
// duplicates.
func RestoreWorkflow(orderID kernel.UUID, currentStepNumber int, steps []*Step) (*Workflow, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if currentStepNumber < 1 || currentStepNumber > StageCount {
		return nil, errs.NewValueIsOutOfRangeError("currentStepNumber", currentStepNumber, 1, StageCount)
	}
	if len(steps) != StageCount {
		return nil, errs.NewValueIsInvalidErrorWithCause("steps",
			fmt.Errorf("workflow has %d steps, want %d", len(steps), StageCount))
	}

	sorted := make([]*Step, len(steps))
	copy(sorted, steps)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].StepNumber() < sorted[j].StepNumber()
	})

	for i, step := range sorted {
		if err := step.Validate(); err != nil {
			return nil, err
		}
		if step.StepNumber() != i+1 {
			return nil, errs.NewValueIsInvalidErrorWithCause("steps",
				fmt.Errorf("step sequence has a gap or duplicate at position %d", i+1))
		}
	}

	return &Workflow{
		orderID:           orderID,
		currentStepNumber: currentStepNumber,
		steps:             sorted,
		isConstructed:     true,
	}, nil
}

// Validate ensures the Workflow was created through a constructor.
func (w *Workflow) Validate() error {
	if w == nil || !w.isConstructed {
		return ErrWorkflowIsNotConstructed
	}
	return nil
}

// OrderID returns the owning order's identifier.
func (w *Workflow) OrderID() kernel.UUID {
	return w.orderID
}

// CurrentStepNumber returns the persisted active-step cursor.
func (w *Workflow) CurrentStepNumber() int {
	return w.currentStepNumber
}

// Steps returns the steps ordered by step number.
func (w *Workflow) Steps() []*Step {
	return w.steps
}

// StepByID finds a step by its identifier.
func (w *Workflow) StepByID(stepID kernel.UUID) (*Step, error) {
	for _, step := range w.steps {
		if step.ID().IsEqual(stepID) {
			return step, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("step", stepID.String())
}

// StepByNumber finds a step by its sequence number.
func (w *Workflow) StepByNumber(number int) (*Step, error) {
	if number < 1 || number > len(w.steps) {
		return nil, errs.NewValueIsOutOfRangeError("stepNumber", number, 1, len(w.steps))
	}
	return w.steps[number-1], nil
}

// AssignEmployee assigns (or reassigns) an employee to a step.
func (w *Workflow) AssignEmployee(stepID, employeeID kernel.UUID, now time.Time) error {
	step, err := w.StepByID(stepID)
	if err != nil {
		return err
	}
	return step.Assign(employeeID, now)
}

// ChangeStepStatus transitions a step and maintains the cursor: when the step at
// the cursor completes, the cursor moves past every completed step to the first
// open one (the last step leaves the cursor in place). Steps may complete out of
// order, so a single advance is not enough. The next step is not started
// automatically.
func (w *Workflow) ChangeStepStatus(stepID kernel.UUID, next Status, notes string, now time.Time) error {
	step, err := w.StepByID(stepID)
	if err != nil {
		return err
	}

	if err := step.ChangeStatus(next, notes, now); err != nil {
		return err
	}

	if next == Completed && step.StepNumber() == w.currentStepNumber {
		w.advanceCursor()
	}

	return nil
}

// advanceCursor moves the cursor to the first step at or after it that is not
// completed, stopping on the last step when everything is done.
func (w *Workflow) advanceCursor() {
	for w.currentStepNumber < StageCount &&
		w.steps[w.currentStepNumber-1].Status() == Completed {
		w.currentStepNumber++
	}
}

// AttachDocuments appends document references to a step.
func (w *Workflow) AttachDocuments(stepID kernel.UUID, refs []DocumentRef) error {
	step, err := w.StepByID(stepID)
	if err != nil {
		return err
	}
	return step.AttachDocuments(refs)
}

// IsComplete reports whether every step has been completed.
func (w *Workflow) IsComplete() bool {
	for _, step := range w.steps {
		if step.Status() != Completed {
			return false
		}
	}
	return true
}
