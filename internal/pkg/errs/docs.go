// Package errs provides the typed errors shared by the drone fleet layers.
//
// Every error type follows the same shape:
//   - a sentinel error variable (e.g., ErrObjectNotFound) used with errors.Is
//   - a struct type carrying the details of the failure
//   - constructors with and without a cause
//   - Error() for formatting and Unwrap() returning the sentinel
//
// Adapters report missing or duplicated records through ObjectNotFoundError and
// ObjectAlreadyExistsError; the application layer translates them into the
// fleet's domain errors.
package errs
