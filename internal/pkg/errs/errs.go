package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for each error kind. Callers classify failures with
// errors.Is against these, while the concrete types below carry details.
var (
	ErrValidation     = errors.New("validation failed")
	ErrObjectNotFound = errors.New("object not found")
	ErrForbidden      = errors.New("action is forbidden")
	ErrInvalidState   = errors.New("transition is not permitted from current state")
	ErrConflict       = errors.New("conflicts with an existing object")
	ErrUnavailable    = errors.New("store is unavailable")
)

// sanitize strips newlines so error messages stay single-line in logs.
func sanitize(v any) string {
	s := fmt.Sprintf("%s", v)
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return s
}

// ValidationError reports malformed or missing input. It is
// user-correctable and maps to a 4xx response at the edge.
type ValidationError struct {
	ParamName string
	Cause     error
}

func NewValidationError(paramName string) *ValidationError {
	return &ValidationError{ParamName: paramName}
}

func NewValidationErrorWithCause(paramName string, cause error) *ValidationError {
	return &ValidationError{ParamName: paramName, Cause: cause}
}

func (e *ValidationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("validation failed: %s (cause: %s)", sanitize(e.ParamName), sanitize(e.Cause))
	}
	return fmt.Sprintf("validation failed: %s", sanitize(e.ParamName))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// ObjectNotFoundError reports that a referenced entity is absent.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("object not found: param is: %s, ID is: %s (cause: %s)",
			sanitize(e.ParamName), sanitize(e.ID), sanitize(e.Cause))
	}
	return fmt.Sprintf("object not found: %s", sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ForbiddenError reports that the caller lacks ownership or the role
// required for the attempted action.
type ForbiddenError struct {
	Action string
	Cause  error
}

func NewForbiddenError(action string) *ForbiddenError {
	return &ForbiddenError{Action: action}
}

func NewForbiddenErrorWithCause(action string, cause error) *ForbiddenError {
	return &ForbiddenError{Action: action, Cause: cause}
}

func (e *ForbiddenError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("action is forbidden: %s (cause: %s)", sanitize(e.Action), sanitize(e.Cause))
	}
	return fmt.Sprintf("action is forbidden: %s", sanitize(e.Action))
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

// InvalidStateError reports a lifecycle transition that is not allowed
// from the entity's current status.
type InvalidStateError struct {
	ParamName string
	Cause     error
}

func NewInvalidStateError(paramName string) *InvalidStateError {
	return &InvalidStateError{ParamName: paramName}
}

func NewInvalidStateErrorWithCause(paramName string, cause error) *InvalidStateError {
	return &InvalidStateError{ParamName: paramName, Cause: cause}
}

func (e *InvalidStateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("transition is not permitted: %s (cause: %s)", sanitize(e.ParamName), sanitize(e.Cause))
	}
	return fmt.Sprintf("transition is not permitted: %s", sanitize(e.ParamName))
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

// ConflictError reports a uniqueness violation, such as a second request
// for the same (donation, receiver) pair.
type ConflictError struct {
	ParamName string
	Value     any
	Cause     error
}

func NewConflictError(paramName string, value any) *ConflictError {
	return &ConflictError{ParamName: paramName, Value: value}
}

func NewConflictErrorWithCause(paramName string, value any, cause error) *ConflictError {
	return &ConflictError{ParamName: paramName, Value: value, Cause: cause}
}

func (e *ConflictError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("conflict: param is: %s, value is: %s (cause: %s)",
			sanitize(e.ParamName), sanitize(e.Value), sanitize(e.Cause))
	}
	return fmt.Sprintf("conflict: %s already exists for %s", sanitize(e.Value), sanitize(e.ParamName))
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// UnavailableError reports a transient store failure. Callers may retry;
// the coordinator itself never does.
type UnavailableError struct {
	Cause error
}

func NewUnavailableError(cause error) *UnavailableError {
	return &UnavailableError{Cause: cause}
}

func (e *UnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("store is unavailable (cause: %s)", sanitize(e.Cause))
	}
	return "store is unavailable"
}

func (e *UnavailableError) Unwrap() error {
	return ErrUnavailable
}
