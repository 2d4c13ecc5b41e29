// Package errs provides standardized error types for the manufacturing-order application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package covers the failure taxonomy of the core:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is malformed or not in its closed value set
//   - ValueIsOutOfRangeError: a value violates its [min, max] bounds
//   - ObjectNotFoundError: a referenced object does not exist
//   - ObjectAlreadyExistsError: a creation attempt collided with an existing object
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is classifies against the sentinel
//
// Infrastructure failures (connection loss, timeouts) are deliberately not modeled
// here; driver errors propagate unwrapped so callers can decide whether a retry
// is safe for the operation in question.
package errs
