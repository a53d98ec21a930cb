// Package guard provides the ConstructorGuard used by value objects and
// commands to tell constructor-built instances apart from zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in structs that must only be created through
// their constructor. The zero value reports itself as not constructed.
//
// Example usage:
//
//	var ErrLineItemNotConstructed = errors.New("LineItem must be created via NewLineItem")
//
//	type LineItem struct {
//	    code  string
//	    guard guard.ConstructorGuard
//	}
//
//	func (l LineItem) Validate() error {
//	    return l.guard.Validate(ErrLineItemNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that marks its owner as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for constructed owners. Otherwise it returns
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
