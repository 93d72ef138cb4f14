package lifecycle

import (
	"errors"
	"fmt"
)

// Domain rejections returned by the engine. All of them are expected
// outcomes for the caller to surface to the user; none of them mutates the
// entity or the event log.
var (
	// ErrTransitionNotAllowed indicates that no rule exists for the requested
	// (kind, fromState, toState) triple.
	ErrTransitionNotAllowed = errors.New("transition is not allowed")

	// ErrTransitionForbidden indicates that a rule exists but the actor's role
	// is not permitted, or the rule's guard predicate rejected the transition.
	ErrTransitionForbidden = errors.New("transition is forbidden")

	// ErrAuditNoteRequired indicates that the rule demands an audit note and
	// none was supplied.
	ErrAuditNoteRequired = errors.New("audit note is required")

	// ErrStateConflict indicates that the supplied snapshot's current state
	// diverges from the state implied by the latest event for the entity.
	ErrStateConflict = errors.New("entity state conflicts with the event log")

	// ErrNotReversible indicates an undo attempt against a rule that is not
	// marked reversible.
	ErrNotReversible = errors.New("transition is not reversible")

	// ErrUndoWindowExpired indicates an undo attempt outside the rule's
	// reversibility window.
	ErrUndoWindowExpired = errors.New("reversibility window has expired")

	// ErrAlreadyCompensated indicates that a compensating event already
	// references the original event.
	ErrAlreadyCompensated = errors.New("event has already been compensated")

	// ErrNoInverseRule indicates that no rule exists for the inverse
	// (kind, toState, fromState) transition required by an undo.
	ErrNoInverseRule = errors.New("no inverse rule exists for this transition")

	// ErrEventNotFound indicates that the referenced event does not exist.
	ErrEventNotFound = errors.New("event not found")
)

// ErrInfrastructure is the sentinel for runtime persistence faults.
// It is the only runtime failure a caller may legitimately retry.
var ErrInfrastructure = errors.New("infrastructure failure")

// ErrRuleConfig is the sentinel for invalid rule-table registration.
// Registration happens at process start; a ConfigError halts startup.
var ErrRuleConfig = errors.New("rule table configuration is invalid")

// InfrastructureError wraps a storage or persistence fault encountered while
// appending to or reading from the event log. The operation it reports failed
// atomically: no entity mutation or partial append is observable.
type InfrastructureError struct {
	Op    string
	Cause error
}

// NewInfrastructureError creates an InfrastructureError for the given operation.
func NewInfrastructureError(op string, cause error) *InfrastructureError {
	return &InfrastructureError{Op: op, Cause: cause}
}

// Error formats the error message, including the cause when present.
func (e *InfrastructureError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrInfrastructure, e.Op, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrInfrastructure, e.Op)
}

// Unwrap returns the sentinel error for use with errors.Is.
func (e *InfrastructureError) Unwrap() error {
	return ErrInfrastructure
}

// ConfigError reports an invalid rule registration, such as a duplicate
// (kind, fromState, toState) entry or a rule that fails validation.
type ConfigError struct {
	Kind  Kind
	From  State
	To    State
	Cause error
}

// NewConfigError creates a ConfigError for the offending rule triple.
func NewConfigError(kind Kind, from, to State, cause error) *ConfigError {
	return &ConfigError{Kind: kind, From: from, To: to, Cause: cause}
}

// Error formats the error message, including the cause when present.
func (e *ConfigError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %s -> %s (cause: %s)", ErrRuleConfig, e.Kind, e.From, e.To, e.Cause)
	}
	return fmt.Sprintf("%s: %s: %s -> %s", ErrRuleConfig, e.Kind, e.From, e.To)
}

// Unwrap returns the sentinel error for use with errors.Is.
func (e *ConfigError) Unwrap() error {
	return ErrRuleConfig
}
