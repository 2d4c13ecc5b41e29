package commands

import (
	"errors"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/workflow"
	"manufacturing/internal/pkg/guard"
)

var (
	ErrAttachDocumentsCommandIsNotConstructed = errors.New(
		"AttachDocumentsCommand must be created via NewAttachDocumentsCommand constructor",
	)
	ErrDocumentsAreRequired = errors.New("at least one document reference is required")
)

// AttachDocumentsCommand represents a request to append document references to
// a workflow step. Documents are references only; the files themselves live in
// an external store.
type AttachDocumentsCommand struct { //nolint:recvcheck //using for validation
	stepID    kernel.UUID
	documents []workflow.DocumentRef

	guard guard.ConstructorGuard
}

// NewAttachDocumentsCommand creates a command to attach documents to a step.
// Requires at least one document reference.
func NewAttachDocumentsCommand(stepID kernel.UUID,
	documents []workflow.DocumentRef) (AttachDocumentsCommand, error) {
	command := AttachDocumentsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setStepID(stepID),
		command.setDocuments(documents),
	); err != nil {
		return AttachDocumentsCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAttachDocumentsCommandIsNotConstructed if validation fails.
func (c AttachDocumentsCommand) Validate() error {
	return c.guard.Validate(ErrAttachDocumentsCommandIsNotConstructed)
}

// StepID returns the step ID from the command.
func (c AttachDocumentsCommand) StepID() kernel.UUID {
	return c.stepID
}

// Documents returns the document references from the command.
func (c AttachDocumentsCommand) Documents() []workflow.DocumentRef {
	return c.documents
}

func (c *AttachDocumentsCommand) setStepID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.stepID = id
	return nil
}

func (c *AttachDocumentsCommand) setDocuments(documents []workflow.DocumentRef) error {
	if len(documents) == 0 {
		return ErrDocumentsAreRequired
	}

	c.documents = documents
	return nil
}
