// Package guard provides the ConstructorGuard used by commands, queries and
// domain objects to reject zero values that bypassed their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the object was not
// constructed and the caller supplied no more specific error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a struct as created through its constructor. Embed it
// as a field, set it with NewConstructorGuard in the constructor, and check it
// from the struct's Validate method.
//
// Example:
//
//	var ErrAddScanLinesCommandIsNotConstructed = errors.New("AddScanLinesCommand must be created via NewAddScanLinesCommand")
//
//	type AddScanLinesCommand struct {
//	    raw   string
//	    guard guard.ConstructorGuard
//	}
//
//	func (c AddScanLinesCommand) Validate() error {
//	    return c.guard.Validate(ErrAddScanLinesCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that reports the owner as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero-value guard it
// returns validationError, or ErrDefaultConstructorGuard when that is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
