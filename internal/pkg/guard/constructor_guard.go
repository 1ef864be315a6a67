// Package guard enforces that value objects and commands are created
// through their designated constructor functions rather than as zero
// values. Embedding a ConstructorGuard lets Validate distinguish a
// properly built object from an accidental struct literal.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil error is
// passed for a zero-value guard, so validation always fails with a
// meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as constructed. The zero value fails
// validation; only NewConstructorGuard produces a passing guard.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks its owner as properly
// constructed. Call it in every constructor of a guarded type.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero-value guard it
// returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
