package lifecycle

import "errors"

// ruleKey identifies a rule by its (kind, fromState, toState) triple.
type ruleKey struct {
	kind Kind
	from State
	to   State
}

// Registry holds, per entity kind, the table of legal transitions.
// It is built once at process start by the composition root and is read-only
// thereafter, which is what makes lock-free concurrent lookups safe.
type Registry struct {
	byKey   map[ruleKey]TransitionRule
	byFrom  map[Kind]map[State][]State
	ordered map[Kind][]TransitionRule
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byKey:   make(map[ruleKey]TransitionRule),
		byFrom:  make(map[Kind]map[State][]State),
		ordered: make(map[Kind][]TransitionRule),
	}
}

// Register adds a kind's rule table. Registration is startup-only and fails
// with a ConfigError on an invalid rule, a rule registered under the wrong
// kind, or a duplicate (kind, fromState, toState) entry. A failed Register
// leaves no partial registration behind.
func (r *Registry) Register(kind Kind, rules []TransitionRule) error {
	if err := kind.Validate(); err != nil {
		return NewConfigError(kind, "", "", err)
	}

	staged := make(map[ruleKey]TransitionRule, len(rules))
	for _, rule := range rules {
		if err := rule.Validate(); err != nil {
			return NewConfigError(kind, rule.From(), rule.To(), err)
		}
		if rule.Kind() != kind {
			return NewConfigError(kind, rule.From(), rule.To(), errors.New("rule registered under a different kind"))
		}

		key := ruleKey{kind: kind, from: rule.From(), to: rule.To()}
		if _, dup := staged[key]; dup {
			return NewConfigError(kind, rule.From(), rule.To(), errors.New("duplicate transition rule"))
		}
		if _, dup := r.byKey[key]; dup {
			return NewConfigError(kind, rule.From(), rule.To(), errors.New("duplicate transition rule"))
		}
		staged[key] = rule
	}

	for key, rule := range staged {
		r.byKey[key] = rule
	}
	for _, rule := range rules {
		if r.byFrom[kind] == nil {
			r.byFrom[kind] = make(map[State][]State)
		}
		r.byFrom[kind][rule.From()] = append(r.byFrom[kind][rule.From()], rule.To())
		r.ordered[kind] = append(r.ordered[kind], rule)
	}

	return nil
}

// Rule returns the rule governing the (kind, from, to) transition.
// Absence of a rule means the transition is not allowed; there are no
// implicit defaults.
func (r *Registry) Rule(kind Kind, from, to State) (TransitionRule, error) {
	rule, ok := r.byKey[ruleKey{kind: kind, from: from, to: to}]
	if !ok {
		return TransitionRule{}, ErrTransitionNotAllowed
	}
	return rule, nil
}

// InverseRule returns the rule for the reverse (kind, to, from) transition,
// or ErrNoInverseRule when none is registered. Used by undo.
func (r *Registry) InverseRule(kind Kind, from, to State) (TransitionRule, error) {
	rule, ok := r.byKey[ruleKey{kind: kind, from: to, to: from}]
	if !ok {
		return TransitionRule{}, ErrNoInverseRule
	}
	return rule, nil
}

// AllowedTransitions returns the candidate target states reachable from the
// given state, in registration order. Intended for driving UI affordances.
func (r *Registry) AllowedTransitions(kind Kind, from State) []State {
	targets := r.byFrom[kind][from]
	out := make([]State, len(targets))
	copy(out, targets)
	return out
}

// Rules returns all rules registered for a kind, in registration order.
func (r *Registry) Rules(kind Kind) []TransitionRule {
	rules := r.ordered[kind]
	out := make([]TransitionRule, len(rules))
	copy(out, rules)
	return out
}
