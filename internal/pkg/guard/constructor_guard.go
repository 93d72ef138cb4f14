// Package guard provides the constructor-guard pattern for application-layer
// objects such as commands and queries. Embedding a ConstructorGuard lets a
// struct detect whether it was built through its designated constructor or
// left as a zero value, so that validation can reject uninitialized instances.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a
// nil validation error, ensuring validation always fails with a meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as constructed through its constructor
// function. The zero value fails validation.
//
// Example:
//
//	type TransitionCommand struct {
//	    target string
//	    guard  guard.ConstructorGuard
//	}
//
//	func NewTransitionCommand(target string) (TransitionCommand, error) {
//	    if target == "" {
//	        return TransitionCommand{}, errors.New("target is required")
//	    }
//	    return TransitionCommand{target: target, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c TransitionCommand) Validate() error {
//	    return c.guard.Validate(ErrCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the owning object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the owning object was built through its
// constructor. Otherwise it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
