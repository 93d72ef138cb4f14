package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/kernel"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/lifecycle"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/ports"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/pkg/clock"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/pkg/errs"
)

// TransitionExecutor is the domain service that runs a single state transition
// end to end: rule lookup, conflict detection, authorization, audit-note
// enforcement, transform application, and the event log append.
//
// The executor itself is stateless; the append is the only serialization
// point, and it either fully succeeds or the whole transition fails with
// nothing observable. The caller receives the updated snapshot and the
// sequenced event, and owns persisting the snapshot afterwards.
type TransitionExecutor struct {
	registry *lifecycle.Registry
	guard    lifecycle.TransitionGuard
	eventLog ports.EventLog
	clock    clock.Clock
}

// NewTransitionExecutor creates an executor over the given rule registry,
// event log, and clock.
func NewTransitionExecutor(registry *lifecycle.Registry, eventLog ports.EventLog, clk clock.Clock) *TransitionExecutor {
	return &TransitionExecutor{
		registry: registry,
		guard:    lifecycle.NewTransitionGuard(),
		eventLog: eventLog,
		clock:    clk,
	}
}

// Transition moves the entity snapshot to the target state under the
// registered rule table.
//
// Domain rejections (ErrTransitionNotAllowed, ErrTransitionForbidden,
// ErrAuditNoteRequired, ErrStateConflict) and infrastructure faults all leave
// the entity and the event log untouched. On success the returned snapshot
// carries the target state plus the rule's transform deltas, and the returned
// event carries its assigned global seq.
func (e *TransitionExecutor) Transition(
	ctx context.Context,
	entity lifecycle.Entity,
	target lifecycle.State,
	actor kernel.Actor,
	note string,
) (lifecycle.Entity, lifecycle.EventRecord, error) {
	return e.execute(ctx, entity, target, actor, note, nil)
}

func (e *TransitionExecutor) execute(
	ctx context.Context,
	entity lifecycle.Entity,
	target lifecycle.State,
	actor kernel.Actor,
	note string,
	compensates *kernel.UUID,
) (lifecycle.Entity, lifecycle.EventRecord, error) {
	kind := entity.EntityKind()
	from := entity.CurrentState()

	rule, err := e.registry.Rule(kind, from, target)
	if err != nil {
		return nil, lifecycle.EventRecord{}, err
	}

	if err = e.detectConflict(ctx, entity); err != nil {
		return nil, lifecycle.EventRecord{}, err
	}

	if err = e.guard.Authorize(rule, entity, actor, target); err != nil {
		return nil, lifecycle.EventRecord{}, err
	}

	if rule.RequiresAuditNote() && strings.TrimSpace(note) == "" {
		return nil, lifecycle.EventRecord{}, lifecycle.ErrAuditNoteRequired
	}

	occurredAt := e.clock.Now()

	transformed, err := rule.ApplyTransform(entity, actor, note, occurredAt)
	if err != nil {
		return nil, lifecycle.EventRecord{}, err
	}
	updated := transformed.WithState(target)

	record, err := e.newRecord(kind, entity.EntityID(), from, target, actor, occurredAt, note, compensates)
	if err != nil {
		return nil, lifecycle.EventRecord{}, err
	}

	appended, err := e.eventLog.Append(ctx, record)
	if err != nil {
		return nil, lifecycle.EventRecord{}, err
	}

	return updated, appended, nil
}

// detectConflict compares the snapshot's current state against the state
// implied by the entity's latest event. An entity with no recorded
// transitions is conflict-free by definition.
func (e *TransitionExecutor) detectConflict(ctx context.Context, entity lifecycle.Entity) error {
	latest, err := e.eventLog.LatestByEntity(ctx, entity.EntityKind(), entity.EntityID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil
		}
		return err
	}

	if latest.ToState() != entity.CurrentState() {
		return lifecycle.ErrStateConflict
	}
	return nil
}

func (e *TransitionExecutor) newRecord(
	kind lifecycle.Kind,
	entityID kernel.UUID,
	from, to lifecycle.State,
	actor kernel.Actor,
	occurredAt time.Time,
	note string,
	compensates *kernel.UUID,
) (lifecycle.EventRecord, error) {
	if compensates != nil {
		return lifecycle.NewCompensatingEventRecord(kind, entityID, from, to, actor, occurredAt, note, *compensates)
	}
	return lifecycle.NewEventRecord(kind, entityID, from, to, actor, occurredAt, note)
}
