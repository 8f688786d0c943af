// Package errs provides standardized error types for the cargo application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package defines one family per failure class in the core's taxonomy:
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError:
//     validation failures that the caller can correct locally
//   - ObjectNotFoundError: a referenced entity is absent
//   - ConflictError: a storage-level uniqueness violation (handle, contact
//     address, tracking identifier, employee code)
//   - UnauthorizedError: the caller lacks authentication, holds the wrong
//     role, or does not own the entity being mutated
//   - StorageError: a transient persistence failure; the enclosing
//     transaction was rolled back in full and the operation is retryable
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrConflict)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method resolving to the family sentinel
//
// This standardized approach to error handling improves error reporting,
// makes error handling more consistent, and enables classification with
// errors.Is at every layer boundary.
package errs
