package workflow

import (
	"errors"
	"fmt"
	"time"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/pkg/errs"
)

var (
	// ErrStepIsNotConstructed is returned when a Step instance was not created
	// through NewStep or RestoreStep.
	ErrStepIsNotConstructed = errors.New("Step must be created via NewStep or RestoreStep constructor")

	// ErrStepIsCompleted is returned when a mutation targets a completed step.
	ErrStepIsCompleted = errors.New("step is completed and can no longer be modified")
)

// DocumentRef is a reference to a document held by the external document-storage
// collaborator. The workflow never owns document content, only the reference.
type DocumentRef struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// NewDocumentRef creates a document reference. The name is required; the URL is
// whatever locator the storage collaborator issued.
func NewDocumentRef(name, url string) (DocumentRef, error) {
	if name == "" {
		return DocumentRef{}, errs.NewValueIsRequiredError("document name")
	}
	return DocumentRef{Name: name, URL: url}, nil
}

// Step is one instantiated catalog stage of an order's workflow. It carries the
// status, the optional employee assignment with its timestamp, the work
// timestamps, the append-only document reference list, and free-text notes.
//
// Steps are owned by their Workflow aggregate; all mutations arrive through it.
type Step struct {
	id         kernel.UUID
	stepNumber int
	stepType   StageType
	name       string
	status     Status

	assignedEmployeeID *kernel.UUID
	assignedAt         *time.Time
	startedAt          *time.Time
	completedAt        *time.Time

	documents []DocumentRef
	notes     string

	isConstructed bool
}

// NewStep instantiates a catalog stage as a pending step.
func NewStep(stage StageDefinition) *Step {
	return &Step{
		id:            kernel.NewUUID(),
		stepNumber:    stage.Number,
		stepType:      stage.Type,
		name:          stage.Name,
		status:        Pending,
		isConstructed: true,
	}
}

// RestoreStep reconstructs a step from persistence. The status must be valid and
// the step number must exist in the catalog.
func RestoreStep(
	id kernel.UUID,
	stepNumber int,
	stepType StageType,
	name string,
	status Status,
	assignedEmployeeID *kernel.UUID,
	assignedAt, startedAt, completedAt *time.Time,
	documents []DocumentRef,
	notes string,
) (*Step, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if _, err := StageByNumber(stepNumber); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if assignedEmployeeID != nil {
		if err := assignedEmployeeID.Validate(); err != nil {
			return nil, err
		}
	}

	return &Step{
		id:                 id,
		stepNumber:         stepNumber,
		stepType:           stepType,
		name:               name,
		status:             status,
		assignedEmployeeID: assignedEmployeeID,
		assignedAt:         assignedAt,
		startedAt:          startedAt,
		completedAt:        completedAt,
		documents:          documents,
		notes:              notes,
		isConstructed:      true,
	}, nil
}

// Validate ensures the Step was created through a constructor.
func (s *Step) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStepIsNotConstructed
	}
	return nil
}

// ID returns the step's unique identifier.
func (s *Step) ID() kernel.UUID {
	return s.id
}

// StepNumber returns the step's position in the fixed sequence (1-based).
func (s *Step) StepNumber() int {
	return s.stepNumber
}

// StepType returns the catalog type key of the step.
func (s *Step) StepType() StageType {
	return s.stepType
}

// Name returns the step's display name.
func (s *Step) Name() string {
	return s.name
}

// Status returns the current status of the step.
func (s *Step) Status() Status {
	return s.status
}

// AssignedEmployeeID returns the assigned employee, or nil when unassigned.
func (s *Step) AssignedEmployeeID() *kernel.UUID {
	return s.assignedEmployeeID
}

// AssignedAt returns when the current assignment was made, or nil.
func (s *Step) AssignedAt() *time.Time {
	return s.assignedAt
}

// StartedAt returns when work on the step first began, or nil.
func (s *Step) StartedAt() *time.Time {
	return s.startedAt
}

// CompletedAt returns when the step was completed, or nil.
func (s *Step) CompletedAt() *time.Time {
	return s.completedAt
}

// Documents returns the append-only list of document references.
func (s *Step) Documents() []DocumentRef {
	return s.documents
}

// Notes returns the step's free-text notes.
func (s *Step) Notes() string {
	return s.notes
}

// Assign sets or overwrites the employee assignment and stamps assignedAt.
// Reassignment is allowed; the previous assignee is simply replaced.
// The status is not changed. Completed steps reject assignment.
func (s *Step) Assign(employeeID kernel.UUID, now time.Time) error {
	if err := employeeID.Validate(); err != nil {
		return err
	}
	if s.status.IsTerminal() {
		return ErrStepIsCompleted
	}

	s.assignedEmployeeID = &employeeID
	s.assignedAt = &now
	return nil
}

// ChangeStatus transitions the step per the status table. startedAt is stamped
// the first time the step enters InProgress; completedAt is stamped iff the new
// status is Completed. Non-empty notes replace the current notes.
func (s *Step) ChangeStatus(next Status, notes string, now time.Time) error {
	newStatus, err := s.status.TransitionTo(next)
	if err != nil {
		return err
	}

	s.status = newStatus

	if newStatus == InProgress && s.startedAt == nil {
		s.startedAt = &now
	}
	if newStatus == Completed {
		s.completedAt = &now
	}
	if notes != "" {
		s.notes = notes
	}

	return nil
}

// AttachDocuments appends document references. Append-only log semantics:
// duplicates are kept, nothing is ever removed.
func (s *Step) AttachDocuments(refs []DocumentRef) error {
	if len(refs) == 0 {
		return errs.NewValueIsRequiredError("documentRefs")
	}
	for i, ref := range refs {
		if ref.Name == "" {
			return errs.NewValueIsInvalidErrorWithCause("documentRefs",
				fmt.Errorf("document reference %d has no name", i))
		}
	}

	s.documents = append(s.documents, refs...)
	return nil
}
