package lifecycle

import "github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/kernel"

// TransitionGuard authorizes a proposed transition against a rule.
// The role-membership check runs first because it is cheap and structural;
// only when it passes is the rule's semantic predicate consulted. Both checks
// are pure and synchronous.
type TransitionGuard struct{}

// NewTransitionGuard creates a transition guard.
func NewTransitionGuard() TransitionGuard {
	return TransitionGuard{}
}

// Authorize checks that the actor's role is permitted by the rule and that
// the rule's guard predicate (if any) accepts the transition. Both rejections
// surface as ErrTransitionForbidden: a role-authorized but predicate-rejected
// request is forbidden, not unknown.
func (TransitionGuard) Authorize(rule TransitionRule, entity Entity, actor kernel.Actor, target State) error {
	if err := rule.Validate(); err != nil {
		return err
	}
	if err := actor.Validate(); err != nil {
		return err
	}

	if !rule.AllowsRole(actor.Role()) {
		return ErrTransitionForbidden
	}

	if !rule.EvaluatePredicate(entity, actor, target) {
		return ErrTransitionForbidden
	}

	return nil
}
