// Package errs provides the error taxonomy for the foodbridge application.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The taxonomy covers the failure kinds the lifecycle coordinator can
// surface to callers:
//   - ValidationError: malformed or missing input
//   - ObjectNotFoundError: a referenced entity is absent
//   - ForbiddenError: the caller lacks ownership or role for the action
//   - InvalidStateError: a transition not permitted from the current state
//   - ConflictError: a uniqueness violation
//   - UnavailableError: a transient store failure, safe to retry upstream
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrInvalidState)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method resolving to the sentinel for errors.Is checks
package errs
