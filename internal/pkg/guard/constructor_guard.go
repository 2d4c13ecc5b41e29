// Package guard provides a defensive-construction helper for commands and value
// objects. Embedding a ConstructorGuard lets a type detect whether it was built
// through its constructor or left as a zero value, so validation can reject
// improperly created instances before they reach a handler.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guarded object is a
// zero value and no more specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. The zero value is
// invalid; only NewConstructorGuard produces a passing guard.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that passes validation. Call it inside the
// owning type's constructor and store the result in a private field.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero-value guard it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
