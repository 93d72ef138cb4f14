package orderitem

import (
	"errors"
	"time"

	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/kernel"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/lifecycle"
)

// Kitchen lifecycle states of an order line.
//
//	pending ──> in_progress ──> ready ──> served (terminal)
//	   │             │            │
//	   └─────────────┴────────────┴──> cancelled (terminal)
//
// in_progress can be undone back to pending by the kitchen within
// ReversalWindow of picking the item up.
const (
	StatePending    lifecycle.State = "pending"
	StateInProgress lifecycle.State = "in_progress"
	StateReady      lifecycle.State = "ready"
	StateServed     lifecycle.State = "served"
	StateCancelled  lifecycle.State = "cancelled"
)

// ReversalWindow bounds how long after pickup the kitchen may push an item
// back to pending.
const ReversalWindow = 120 * time.Second

// Rules builds the order-item rule table registered with the lifecycle
// engine at process start.
func Rules() ([]lifecycle.TransitionRule, error) {
	kitchen := []kernel.Role{kernel.RoleKitchen}
	service := []kernel.Role{kernel.RoleWaiter, kernel.RoleManager}

	var rules []lifecycle.TransitionRule
	var errs []error

	add := func(rule lifecycle.TransitionRule, err error) {
		if err != nil {
			errs = append(errs, err)
			return
		}
		rules = append(rules, rule)
	}

	add(lifecycle.NewTransitionRule(
		lifecycle.KindOrderItem, StatePending, StateInProgress, kitchen,
		lifecycle.WithReversal(ReversalWindow),
		lifecycle.WithTransform(stampStartedAt),
	))
	add(lifecycle.NewTransitionRule(
		lifecycle.KindOrderItem, StatePending, StateCancelled, service,
		lifecycle.WithAuditNote(),
	))
	add(lifecycle.NewTransitionRule(
		lifecycle.KindOrderItem, StateInProgress, StateReady, kitchen,
		lifecycle.WithTransform(stampReadyAt),
	))
	add(lifecycle.NewTransitionRule(
		lifecycle.KindOrderItem, StateInProgress, StateCancelled, service,
		lifecycle.WithAuditNote(),
	))
	add(lifecycle.NewTransitionRule(
		lifecycle.KindOrderItem, StateInProgress, StatePending, kitchen,
		lifecycle.WithTransform(clearStartedAt),
	))
	add(lifecycle.NewTransitionRule(
		lifecycle.KindOrderItem, StateReady, StateServed, []kernel.Role{kernel.RoleWaiter},
		lifecycle.WithGuardPredicate(preparationFinished),
		lifecycle.WithTransform(stampServedAt),
	))
	add(lifecycle.NewTransitionRule(
		lifecycle.KindOrderItem, StateReady, StateCancelled, service,
		lifecycle.WithAuditNote(),
	))

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return rules, nil
}

// stampStartedAt records when the kitchen picked the item up.
func stampStartedAt(entity lifecycle.Entity, _ kernel.Actor, _ string, occurredAt time.Time) (lifecycle.Entity, error) {
	item, err := snapshot(entity)
	if err != nil {
		return nil, err
	}
	item.startedAt = &occurredAt
	return item, nil
}

// clearStartedAt is the inverse of stampStartedAt. The original pickup time
// is not recoverable once cleared; an undo restores the state, not the full
// pre-transition snapshot.
func clearStartedAt(entity lifecycle.Entity, _ kernel.Actor, _ string, _ time.Time) (lifecycle.Entity, error) {
	item, err := snapshot(entity)
	if err != nil {
		return nil, err
	}
	item.startedAt = nil
	return item, nil
}

func stampReadyAt(entity lifecycle.Entity, _ kernel.Actor, _ string, occurredAt time.Time) (lifecycle.Entity, error) {
	item, err := snapshot(entity)
	if err != nil {
		return nil, err
	}
	item.readyAt = &occurredAt
	return item, nil
}

func stampServedAt(entity lifecycle.Entity, _ kernel.Actor, _ string, occurredAt time.Time) (lifecycle.Entity, error) {
	item, err := snapshot(entity)
	if err != nil {
		return nil, err
	}
	item.servedAt = &occurredAt
	return item, nil
}

// preparationFinished only lets an item be served once the kitchen has
// actually marked it ready.
func preparationFinished(entity lifecycle.Entity, _ kernel.Actor, _ lifecycle.State) bool {
	item, ok := entity.(*OrderItem)
	return ok && item.readyAt != nil
}

// snapshot asserts the engine handed us an order item and returns a copy
// safe to modify.
func snapshot(entity lifecycle.Entity) (*OrderItem, error) {
	item, ok := entity.(*OrderItem)
	if !ok {
		return nil, ErrOrderItemIsNotConstructed
	}
	return item.clone(), nil
}
