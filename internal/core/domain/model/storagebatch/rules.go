package storagebatch

import (
	"errors"
	"time"

	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/kernel"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/lifecycle"
)

// Storage lifecycle states of a batch.
//
//	received ──> available <──> locked
//	                 │    \      /  │
//	                 │     consumed (terminal)
//	                 │      wasted  (terminal)
//	                 └──> expired   (terminal, system-triggered)
//
// Partial draws are self-transitions (available -> available,
// locked -> locked); the batch only moves to consumed when a draw exhausts
// the received amount and the caller targets that state.
const (
	StateReceived  lifecycle.State = "received"
	StateAvailable lifecycle.State = "available"
	StateLocked    lifecycle.State = "locked"
	StateConsumed  lifecycle.State = "consumed"
	StateWasted    lifecycle.State = "wasted"
	StateExpired   lifecycle.State = "expired"
)

// LockReversalWindow bounds how long a reservation may be undone.
const LockReversalWindow = 10 * time.Minute

// Rules builds the storage-batch rule table registered with the lifecycle
// engine at process start.
func Rules() ([]lifecycle.TransitionRule, error) {
	store := []kernel.Role{kernel.RoleStorekeeper}
	stock := []kernel.Role{kernel.RoleStorekeeper, kernel.RoleKitchen}
	writeOff := []kernel.Role{kernel.RoleStorekeeper, kernel.RoleManager}
	system := []kernel.Role{kernel.RoleSystem}

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
		lifecycle.KindStorageBatch, StateReceived, StateAvailable, store,
	))
	add(lifecycle.NewTransitionRule(
		lifecycle.KindStorageBatch, StateAvailable, StateLocked, stock,
		lifecycle.WithReversal(LockReversalWindow),
	))
	add(lifecycle.NewTransitionRule(
		lifecycle.KindStorageBatch, StateLocked, StateAvailable, stock,
	))
	add(lifecycle.NewTransitionRule(
		lifecycle.KindStorageBatch, StateAvailable, StateAvailable, stock,
		lifecycle.WithGuardPredicate(drawFitsRemaining),
		lifecycle.WithTransform(foldDraw),
	))
	add(lifecycle.NewTransitionRule(
		lifecycle.KindStorageBatch, StateLocked, StateLocked, stock,
		lifecycle.WithGuardPredicate(drawFitsRemaining),
		lifecycle.WithTransform(foldDraw),
	))
	add(lifecycle.NewTransitionRule(
		lifecycle.KindStorageBatch, StateAvailable, StateConsumed, stock,
		lifecycle.WithGuardPredicate(drawFitsRemaining),
		lifecycle.WithTransform(foldDraw),
	))
	add(lifecycle.NewTransitionRule(
		lifecycle.KindStorageBatch, StateLocked, StateConsumed, stock,
		lifecycle.WithGuardPredicate(drawFitsRemaining),
		lifecycle.WithTransform(foldDraw),
	))
	add(lifecycle.NewTransitionRule(
		lifecycle.KindStorageBatch, StateAvailable, StateWasted, writeOff,
		lifecycle.WithAuditNote(),
	))
	add(lifecycle.NewTransitionRule(
		lifecycle.KindStorageBatch, StateLocked, StateWasted, writeOff,
		lifecycle.WithAuditNote(),
	))
	add(lifecycle.NewTransitionRule(
		lifecycle.KindStorageBatch, StateAvailable, StateExpired, system,
	))

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return rules, nil
}

// drawFitsRemaining rejects draws that are absent or exceed the remaining
// amount. An oversized consume request is therefore forbidden and leaves no
// trace in the event log.
func drawFitsRemaining(entity lifecycle.Entity, _ kernel.Actor, _ lifecycle.State) bool {
	batch, ok := entity.(*StorageBatch)
	if !ok {
		return false
	}
	return batch.pendingDraw > 0 && batch.pendingDraw <= batch.Remaining()
}

// foldDraw moves the requested draw into the usage counter and clears the
// request from the snapshot.
func foldDraw(entity lifecycle.Entity, _ kernel.Actor, _ string, _ time.Time) (lifecycle.Entity, error) {
	batch, ok := entity.(*StorageBatch)
	if !ok {
		return nil, ErrStorageBatchIsNotConstructed
	}

	copied := batch.clone()
	copied.usedAmount += copied.pendingDraw
	copied.pendingDraw = 0
	return copied, nil
}
