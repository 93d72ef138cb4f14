package services

import (
	"context"
	"errors"

	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/kernel"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/lifecycle"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/ports"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/pkg/clock"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/pkg/errs"
)

// UndoManager reverses an earlier transition by appending a compensating
// event, never by editing or deleting the original record.
//
// The resulting entity state is the documented inverse target, not
// necessarily a bit-identical restoration of the pre-transition snapshot:
// forward transforms may be lossy, and the inverse transform cannot recover
// what was overwritten. Undo is idempotent under retry; a second call for the
// same event returns ErrAlreadyCompensated instead of appending a duplicate.
type UndoManager struct {
	registry *lifecycle.Registry
	executor *TransitionExecutor
	eventLog ports.EventLog
	clock    clock.Clock
}

// NewUndoManager creates an undo manager delegating execution to the given
// transition executor.
func NewUndoManager(registry *lifecycle.Registry, executor *TransitionExecutor, eventLog ports.EventLog, clk clock.Clock) *UndoManager {
	return &UndoManager{
		registry: registry,
		executor: executor,
		eventLog: eventLog,
		clock:    clk,
	}
}

// Undo reverses the transition recorded by the given event, moving the
// supplied snapshot back to the event's fromState.
//
// Rejections, in check order: ErrEventNotFound, ErrNotReversible,
// ErrUndoWindowExpired, ErrAlreadyCompensated, ErrNoInverseRule, then
// whatever the delegated execution rejects. An undo exactly at the window
// boundary is still allowed.
func (m *UndoManager) Undo(
	ctx context.Context,
	entity lifecycle.Entity,
	eventID kernel.UUID,
	actor kernel.Actor,
	reason string,
) (lifecycle.Entity, lifecycle.EventRecord, error) {
	original, err := m.eventLog.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, lifecycle.EventRecord{}, lifecycle.ErrEventNotFound
		}
		return nil, lifecycle.EventRecord{}, err
	}

	rule, err := m.registry.Rule(original.Kind(), original.FromState(), original.ToState())
	if err != nil {
		return nil, lifecycle.EventRecord{}, err
	}
	if !rule.IsReversible() {
		return nil, lifecycle.EventRecord{}, lifecycle.ErrNotReversible
	}

	if m.clock.Now().Sub(original.OccurredAt()) > rule.ReversibleWindow() {
		return nil, lifecycle.EventRecord{}, lifecycle.ErrUndoWindowExpired
	}

	if _, compensated, err := m.eventLog.FindCompensation(ctx, eventID); err != nil {
		return nil, lifecycle.EventRecord{}, err
	} else if compensated {
		return nil, lifecycle.EventRecord{}, lifecycle.ErrAlreadyCompensated
	}

	if _, err = m.registry.InverseRule(original.Kind(), original.FromState(), original.ToState()); err != nil {
		return nil, lifecycle.EventRecord{}, err
	}

	originalID := original.ID()
	return m.executor.execute(ctx, entity, original.FromState(), actor, reason, &originalID)
}
