// Package ports defines repository interfaces for the lifecycle domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"
	"iter"
	"time"

	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/kernel"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/lifecycle"
)

// EventLog defines the persistence contract for the append-only transition log.
// Records are write-once: the log never updates or deletes an appended record.
type EventLog interface {
	// Append assigns the next global sequence number to the record and persists it.
	// The returned record carries the assigned seq. Appends from concurrent callers
	// are atomic; seq values form a gapless ascending series across all entities.
	// Fails only on storage faults, never as a domain rejection.
	Append(ctx context.Context, record lifecycle.EventRecord) (lifecycle.EventRecord, error)

	// GetByID retrieves a single record by its event identifier.
	GetByID(ctx context.Context, id kernel.UUID) (lifecycle.EventRecord, error)

	// LatestByEntity retrieves the most recent record for the given entity,
	// or an ObjectNotFound error if the entity has no recorded transitions.
	LatestByEntity(ctx context.Context, kind lifecycle.Kind, entityID kernel.UUID) (lifecycle.EventRecord, error)

	// FindCompensation looks up the compensating record that references the
	// given original event, if one exists.
	FindCompensation(ctx context.Context, eventID kernel.UUID) (lifecycle.EventRecord, bool, error)

	// QueryByEntity yields all records for the given entity in ascending seq
	// order. The sequence is lazy and restartable: each range over it re-reads
	// from storage.
	QueryByEntity(ctx context.Context, entityID kernel.UUID) iter.Seq2[lifecycle.EventRecord, error]

	// QueryByKindAndRange yields all records for the given kind whose occurredAt
	// falls within [from, to], in ascending seq order.
	QueryByKindAndRange(ctx context.Context, kind lifecycle.Kind, from, to time.Time) iter.Seq2[lifecycle.EventRecord, error]
}
