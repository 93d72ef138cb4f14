package lifecycle

import (
	"errors"
	"fmt"
	"time"

	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/kernel"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/pkg/errs"
)

var (
	// ErrEventRecordIsNotConstructed is returned when an EventRecord was not
	// created through one of the factory functions.
	ErrEventRecordIsNotConstructed = errors.New(
		"EventRecord must be created via NewEventRecord, NewCompensatingEventRecord, or RestoreEventRecord",
	)

	// ErrSeqAlreadyStamped is returned when a sequence number is assigned to
	// a record that already carries one. Events are write-once.
	ErrSeqAlreadyStamped = errors.New("event record already carries a sequence number")
)

// EventRecord is the immutable audit record of one executed transition.
//
// Records are globally and totally ordered by seq, which is assigned exactly
// once by the event log's serialization point on append: seq = previous max + 1,
// no gaps, no duplicates. The ordering is global rather than per-entity so
// cross-entity causality is preserved.
//
// A compensating record carries a back-reference to the event it reverses;
// the reference always points to an earlier record, and at most one
// compensating record may reference a given original.
type EventRecord struct {
	id             kernel.UUID
	seq            int64
	kind           Kind
	entityID       kernel.UUID
	fromState      State
	toState        State
	actorID        kernel.UUID
	actorRole      kernel.Role
	occurredAt     time.Time
	note           string
	compensates    *kernel.UUID
	isCompensating bool

	guard kernel.ConstructorGuard
}

// NewEventRecord creates the audit record for a forward transition.
// The record is unsequenced until the event log stamps it on append.
func NewEventRecord(
	kind Kind,
	entityID kernel.UUID,
	from, to State,
	actor kernel.Actor,
	occurredAt time.Time,
	note string,
) (EventRecord, error) {
	return newEventRecord(kind, entityID, from, to, actor, occurredAt, note, nil)
}

// NewCompensatingEventRecord creates the audit record for an undo, linked
// back to the original event it reverses.
func NewCompensatingEventRecord(
	kind Kind,
	entityID kernel.UUID,
	from, to State,
	actor kernel.Actor,
	occurredAt time.Time,
	note string,
	compensates kernel.UUID,
) (EventRecord, error) {
	if err := compensates.Validate(); err != nil {
		return EventRecord{}, err
	}
	return newEventRecord(kind, entityID, from, to, actor, occurredAt, note, &compensates)
}

func newEventRecord(
	kind Kind,
	entityID kernel.UUID,
	from, to State,
	actor kernel.Actor,
	occurredAt time.Time,
	note string,
	compensates *kernel.UUID,
) (EventRecord, error) {
	if err := errors.Join(
		kind.Validate(),
		entityID.Validate(),
		from.Validate(),
		to.Validate(),
		actor.Validate(),
		validateOccurredAt(occurredAt),
	); err != nil {
		return EventRecord{}, err
	}

	return EventRecord{
		id:             kernel.NewUUID(),
		kind:           kind,
		entityID:       entityID,
		fromState:      from,
		toState:        to,
		actorID:        actor.ID(),
		actorRole:      actor.Role(),
		occurredAt:     occurredAt,
		note:           note,
		compensates:    compensates,
		isCompensating: compensates != nil,
		guard:          kernel.NewConstructorGuard(),
	}, nil
}

// RestoreEventRecord reconstructs a sequenced record from persistent storage.
// A reloaded record is field-for-field identical to the one appended,
// including its position in the global order.
func RestoreEventRecord(
	id kernel.UUID,
	seq int64,
	kind Kind,
	entityID kernel.UUID,
	from, to State,
	actorID kernel.UUID,
	actorRole kernel.Role,
	occurredAt time.Time,
	note string,
	compensates *kernel.UUID,
	isCompensating bool,
) (EventRecord, error) {
	if err := errors.Join(
		id.Validate(),
		validateSeq(seq),
		kind.Validate(),
		entityID.Validate(),
		from.Validate(),
		to.Validate(),
		actorID.Validate(),
		actorRole.Validate(),
		validateOccurredAt(occurredAt),
		validateCompensation(id, compensates, isCompensating),
	); err != nil {
		return EventRecord{}, err
	}

	return EventRecord{
		id:             id,
		seq:            seq,
		kind:           kind,
		entityID:       entityID,
		fromState:      from,
		toState:        to,
		actorID:        actorID,
		actorRole:      actorRole,
		occurredAt:     occurredAt,
		note:           note,
		compensates:    compensates,
		isCompensating: isCompensating,
		guard:          kernel.NewConstructorGuard(),
	}, nil
}

// StampSeq returns a copy of the record carrying its assigned position in the
// global order. A record can be stamped exactly once; the event log calls
// this under its serialization point during append.
func (e EventRecord) StampSeq(seq int64) (EventRecord, error) {
	if err := e.Validate(); err != nil {
		return EventRecord{}, err
	}
	if e.seq != 0 {
		return EventRecord{}, ErrSeqAlreadyStamped
	}
	if err := validateSeq(seq); err != nil {
		return EventRecord{}, err
	}

	stamped := e
	stamped.seq = seq
	return stamped, nil
}

// ID returns the record's unique identifier.
func (e EventRecord) ID() kernel.UUID {
	return e.id
}

// Seq returns the record's position in the global order.
// Zero means the record has not been appended yet.
func (e EventRecord) Seq() int64 {
	return e.seq
}

// Kind returns the entity kind of the transitioned entity.
func (e EventRecord) Kind() Kind {
	return e.kind
}

// EntityID returns the identifier of the transitioned entity.
func (e EventRecord) EntityID() kernel.UUID {
	return e.entityID
}

// FromState returns the state the entity left.
func (e EventRecord) FromState() State {
	return e.fromState
}

// ToState returns the state the entity entered.
func (e EventRecord) ToState() State {
	return e.toState
}

// ActorID returns the identity of the actor who executed the transition.
func (e EventRecord) ActorID() kernel.UUID {
	return e.actorID
}

// ActorRole returns the role the actor acted in.
func (e EventRecord) ActorRole() kernel.Role {
	return e.actorRole
}

// OccurredAt returns the engine clock reading at execution time.
func (e EventRecord) OccurredAt() time.Time {
	return e.occurredAt
}

// Note returns the audit note, empty when none was required or given.
func (e EventRecord) Note() string {
	return e.note
}

// CompensatesEventID returns the identifier of the event this record
// reverses, or nil for forward transitions.
func (e EventRecord) CompensatesEventID() *kernel.UUID {
	if e.compensates == nil {
		return nil
	}
	id := *e.compensates
	return &id
}

// IsCompensating reports whether the record reverses an earlier event.
func (e EventRecord) IsCompensating() bool {
	return e.isCompensating
}

// Validate ensures the record was created through a factory function.
func (e EventRecord) Validate() error {
	return e.guard.Validate(ErrEventRecordIsNotConstructed)
}

func validateSeq(seq int64) error {
	if seq <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("seq is invalid", fmt.Errorf("%d is not greater than 0", seq))
	}
	return nil
}

func validateOccurredAt(occurredAt time.Time) error {
	if occurredAt.IsZero() {
		return errs.NewValueIsRequiredError("occurredAt is required")
	}
	return nil
}

func validateCompensation(id kernel.UUID, compensates *kernel.UUID, isCompensating bool) error {
	if isCompensating != (compensates != nil) {
		return errs.NewValueIsInvalidError("compensation flag does not match back-reference")
	}
	if compensates != nil {
		if err := compensates.Validate(); err != nil {
			return err
		}
		if compensates.IsEqual(id) {
			return errs.NewValueIsInvalidError("event cannot compensate itself")
		}
	}
	return nil
}
