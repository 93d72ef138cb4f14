// Package eventlogrepo provides the GORM-backed implementation of the
// append-only transition log. The table carries no update or delete path at
// any layer; the bigserial seq column is the global serialization point.
package eventlogrepo

import (
	"time"

	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/kernel"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/lifecycle"

	"github.com/google/uuid"
)

// EventDTO represents the database structure for persisting transition events.
// Seq is assigned by the database on insert; the unique index on
// CompensatesEventID is what enforces at-most-one compensation per original
// event under concurrent undo attempts.
type EventDTO struct {
	Seq                int64      `gorm:"primaryKey;autoIncrement"`
	ID                 uuid.UUID  `gorm:"type:uuid;uniqueIndex"`
	Kind               string     `gorm:"index:idx_lifecycle_events_entity;index:idx_lifecycle_events_kind_time"`
	EntityID           uuid.UUID  `gorm:"type:uuid;index:idx_lifecycle_events_entity"`
	FromState          string
	ToState            string
	ActorID            uuid.UUID `gorm:"type:uuid"`
	ActorRole          string
	OccurredAt         time.Time  `gorm:"index:idx_lifecycle_events_kind_time"`
	Note               string
	CompensatesEventID *uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	IsCompensating     bool
}

// TableName specifies the database table name for transition events.
func (EventDTO) TableName() string {
	return "lifecycle_events"
}

// fromDomain converts an unsequenced record to its database representation.
// Seq is left zero so the database assigns the next value on insert.
func fromDomain(record lifecycle.EventRecord) EventDTO {
	var compensates *uuid.UUID
	if id := record.CompensatesEventID(); id != nil {
		raw := id.Bytes()
		compensates = &raw
	}

	return EventDTO{
		ID:                 record.ID().Bytes(),
		Kind:               string(record.Kind()),
		EntityID:           record.EntityID().Bytes(),
		FromState:          string(record.FromState()),
		ToState:            string(record.ToState()),
		ActorID:            record.ActorID().Bytes(),
		ActorRole:          string(record.ActorRole()),
		OccurredAt:         record.OccurredAt(),
		Note:               record.Note(),
		CompensatesEventID: compensates,
		IsCompensating:     record.IsCompensating(),
	}
}

// toDomain converts a database DTO back to a sequenced record.
func toDomain(dto EventDTO) (lifecycle.EventRecord, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return lifecycle.EventRecord{}, err
	}

	entityID, err := kernel.UUIDFromBytes(dto.EntityID[:])
	if err != nil {
		return lifecycle.EventRecord{}, err
	}

	actorID, err := kernel.UUIDFromBytes(dto.ActorID[:])
	if err != nil {
		return lifecycle.EventRecord{}, err
	}

	var compensates *kernel.UUID
	if dto.CompensatesEventID != nil {
		cID, compErr := kernel.UUIDFromBytes((*dto.CompensatesEventID)[:])
		if compErr != nil {
			return lifecycle.EventRecord{}, compErr
		}

		compensates = &cID
	}

	return lifecycle.RestoreEventRecord(
		id,
		dto.Seq,
		lifecycle.Kind(dto.Kind),
		entityID,
		lifecycle.State(dto.FromState),
		lifecycle.State(dto.ToState),
		actorID,
		kernel.Role(dto.ActorRole),
		dto.OccurredAt,
		dto.Note,
		compensates,
		dto.IsCompensating,
	)
}
