// Package inmem provides in-memory adapters for the outbound ports.
// The event log here backs unit tests and single-process deployments;
// the postgres adapters are the production implementations.
package inmem

import (
	"context"
	"iter"
	"sync"
	"time"

	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/kernel"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/lifecycle"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/ports"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/pkg/errs"
)

var _ ports.EventLog = &EventLog{}

// EventLog is an append-only, in-memory transition log. The mutex is the
// serialization point that keeps seq assignment atomic under concurrent
// appends from different entities.
type EventLog struct {
	mu      sync.RWMutex
	records []lifecycle.EventRecord
}

// NewEventLog creates an empty in-memory event log.
func NewEventLog() *EventLog {
	return &EventLog{}
}

// Append stamps the record with seq = previous max + 1 and stores it.
func (l *EventLog) Append(_ context.Context, record lifecycle.EventRecord) (lifecycle.EventRecord, error) {
	if err := record.Validate(); err != nil {
		return lifecycle.EventRecord{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	stamped, err := record.StampSeq(int64(len(l.records)) + 1)
	if err != nil {
		return lifecycle.EventRecord{}, lifecycle.NewInfrastructureError("append", err)
	}

	l.records = append(l.records, stamped)
	return stamped, nil
}

// GetByID retrieves a single record by its event identifier.
func (l *EventLog) GetByID(_ context.Context, id kernel.UUID) (lifecycle.EventRecord, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, record := range l.records {
		if record.ID().IsEqual(id) {
			return record, nil
		}
	}
	return lifecycle.EventRecord{}, errs.NewObjectNotFoundError("eventID", id)
}

// LatestByEntity retrieves the most recent record for the given entity.
func (l *EventLog) LatestByEntity(_ context.Context, kind lifecycle.Kind, entityID kernel.UUID) (lifecycle.EventRecord, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for i := len(l.records) - 1; i >= 0; i-- {
		record := l.records[i]
		if record.Kind() == kind && record.EntityID().IsEqual(entityID) {
			return record, nil
		}
	}
	return lifecycle.EventRecord{}, errs.NewObjectNotFoundError("entityID", entityID)
}

// FindCompensation looks up the compensating record referencing the given event.
func (l *EventLog) FindCompensation(_ context.Context, eventID kernel.UUID) (lifecycle.EventRecord, bool, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, record := range l.records {
		compensates := record.CompensatesEventID()
		if compensates != nil && compensates.IsEqual(eventID) {
			return record, true, nil
		}
	}
	return lifecycle.EventRecord{}, false, nil
}

// QueryByEntity yields the entity's records in ascending seq order.
func (l *EventLog) QueryByEntity(_ context.Context, entityID kernel.UUID) iter.Seq2[lifecycle.EventRecord, error] {
	return func(yield func(lifecycle.EventRecord, error) bool) {
		for _, record := range l.snapshot() {
			if !record.EntityID().IsEqual(entityID) {
				continue
			}
			if !yield(record, nil) {
				return
			}
		}
	}
}

// QueryByKindAndRange yields the kind's records within [from, to] in ascending seq order.
func (l *EventLog) QueryByKindAndRange(_ context.Context, kind lifecycle.Kind, from, to time.Time) iter.Seq2[lifecycle.EventRecord, error] {
	return func(yield func(lifecycle.EventRecord, error) bool) {
		for _, record := range l.snapshot() {
			if record.Kind() != kind {
				continue
			}
			occurredAt := record.OccurredAt()
			if occurredAt.Before(from) || occurredAt.After(to) {
				continue
			}
			if !yield(record, nil) {
				return
			}
		}
	}
}

// Len returns the number of appended records, which equals the current max seq.
func (l *EventLog) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.records)
}

func (l *EventLog) snapshot() []lifecycle.EventRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()

	records := make([]lifecycle.EventRecord, len(l.records))
	copy(records, l.records)
	return records
}
