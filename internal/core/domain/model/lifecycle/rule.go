package lifecycle

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/kernel"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/pkg/errs"
)

// ErrTransitionRuleIsNotConstructed is returned when a TransitionRule was not
// created through the NewTransitionRule constructor.
var ErrTransitionRuleIsNotConstructed = errors.New("TransitionRule must be created via NewTransitionRule")

// GuardPredicate decides whether a role-authorized transition is also
// semantically valid given the current entity snapshot. Predicates must be
// pure and synchronous: no I/O, no mutation of the snapshot.
type GuardPredicate func(entity Entity, actor kernel.Actor, target State) bool

// Transform computes the field deltas a transition applies to the entity
// snapshot (stamping a completion time, folding a draw into a used-amount
// counter). It returns an updated copy and must not mutate its input.
// The engine applies the target state separately, after the transform.
//
// occurredAt is the executor's clock reading for the transition, passed in so
// transforms that stamp timestamps stay pure.
type Transform func(entity Entity, actor kernel.Actor, note string, occurredAt time.Time) (Entity, error)

// TransitionRule is one legal (kind, fromState, toState) state change plus
// its authorization and policy metadata. Rules are immutable once registered.
type TransitionRule struct {
	kind              Kind
	from              State
	to                State
	allowedRoles      []kernel.Role
	requiresAuditNote bool
	reversible        bool
	reversibleWindow  time.Duration
	guardPredicate    GuardPredicate
	transform         Transform

	guard kernel.ConstructorGuard
}

// RuleOption configures optional policy on a TransitionRule.
type RuleOption func(*TransitionRule)

// WithAuditNote marks the rule as requiring a non-empty audit note.
func WithAuditNote() RuleOption {
	return func(r *TransitionRule) {
		r.requiresAuditNote = true
	}
}

// WithReversal marks the rule as reversible within the given window.
func WithReversal(window time.Duration) RuleOption {
	return func(r *TransitionRule) {
		r.reversible = true
		r.reversibleWindow = window
	}
}

// WithGuardPredicate attaches a semantic guard evaluated after the role check.
func WithGuardPredicate(predicate GuardPredicate) RuleOption {
	return func(r *TransitionRule) {
		r.guardPredicate = predicate
	}
}

// WithTransform attaches a field-delta transform applied on execution.
func WithTransform(transform Transform) RuleOption {
	return func(r *TransitionRule) {
		r.transform = transform
	}
}

// NewTransitionRule creates a validated, immutable transition rule.
// At least one allowed role is required; a reversible rule must carry a
// positive window.
func NewTransitionRule(kind Kind, from, to State, allowedRoles []kernel.Role, opts ...RuleOption) (TransitionRule, error) {
	rule := TransitionRule{
		guard: kernel.NewConstructorGuard(),
	}

	for _, opt := range opts {
		opt(&rule)
	}

	if err := errors.Join(
		rule.setKind(kind),
		rule.setStates(from, to),
		rule.setAllowedRoles(allowedRoles),
		rule.validateReversal(),
	); err != nil {
		return TransitionRule{}, err
	}

	return rule, nil
}

// Kind returns the entity kind the rule applies to.
func (r TransitionRule) Kind() Kind {
	return r.kind
}

// From returns the source state.
func (r TransitionRule) From() State {
	return r.from
}

// To returns the target state.
func (r TransitionRule) To() State {
	return r.to
}

// AllowedRoles returns a copy of the roles permitted to fire the rule.
func (r TransitionRule) AllowedRoles() []kernel.Role {
	return slices.Clone(r.allowedRoles)
}

// AllowsRole reports whether the role may fire the rule.
func (r TransitionRule) AllowsRole(role kernel.Role) bool {
	return slices.Contains(r.allowedRoles, role)
}

// RequiresAuditNote reports whether executing the rule demands a note.
func (r TransitionRule) RequiresAuditNote() bool {
	return r.requiresAuditNote
}

// IsReversible reports whether the resulting event may be undone.
func (r TransitionRule) IsReversible() bool {
	return r.reversible
}

// ReversibleWindow returns the interval within which an undo is permitted.
// Zero for non-reversible rules.
func (r TransitionRule) ReversibleWindow() time.Duration {
	return r.reversibleWindow
}

// EvaluatePredicate runs the rule's guard predicate against the snapshot.
// Rules without a predicate accept unconditionally.
func (r TransitionRule) EvaluatePredicate(entity Entity, actor kernel.Actor, target State) bool {
	if r.guardPredicate == nil {
		return true
	}
	return r.guardPredicate(entity, actor, target)
}

// ApplyTransform runs the rule's transform against the snapshot and returns
// the updated copy. Rules without a transform return the snapshot unchanged.
func (r TransitionRule) ApplyTransform(entity Entity, actor kernel.Actor, note string, occurredAt time.Time) (Entity, error) {
	if r.transform == nil {
		return entity, nil
	}
	return r.transform(entity, actor, note, occurredAt)
}

// Validate ensures the rule was created through NewTransitionRule.
func (r TransitionRule) Validate() error {
	return r.guard.Validate(ErrTransitionRuleIsNotConstructed)
}

func (r *TransitionRule) setKind(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	r.kind = kind
	return nil
}

func (r *TransitionRule) setStates(from, to State) error {
	if err := errors.Join(from.Validate(), to.Validate()); err != nil {
		return err
	}
	r.from = from
	r.to = to
	return nil
}

func (r *TransitionRule) setAllowedRoles(roles []kernel.Role) error {
	if len(roles) == 0 {
		return errs.NewValueIsRequiredError("allowedRoles is required")
	}
	for _, role := range roles {
		if err := role.Validate(); err != nil {
			return err
		}
	}
	r.allowedRoles = slices.Clone(roles)
	return nil
}

func (r *TransitionRule) validateReversal() error {
	if r.reversible && r.reversibleWindow <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"reversibleWindow is invalid",
			fmt.Errorf("%s is not greater than 0", r.reversibleWindow),
		)
	}
	return nil
}
