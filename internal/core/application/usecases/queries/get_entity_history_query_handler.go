package queries

import (
	"context"
	"time"

	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/kernel"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/lifecycle"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetEntityHistoryQueryHandler reads an entity's transition records straight
// from the event log table. Seq order is the order the transitions actually
// happened in, so no further sorting is needed.
//
// Example:
//
//	handler := NewGetEntityHistoryQueryHandler(db)
//	query, _ := NewGetEntityHistoryQuery(batchID)
//
//	history, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get history: %v", err)
//	    return err
//	}
type GetEntityHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetEntityHistoryQueryHandler creates a handler for entity history queries.
// Requires a GORM database connection for query execution.
func NewGetEntityHistoryQueryHandler(db *gorm.DB) GetEntityHistoryQueryHandler {
	return GetEntityHistoryQueryHandler{db: db}
}

// Handle executes the query and returns the entity's transitions in ascending
// seq order. An entity with no recorded transitions yields an empty slice.
func (h GetEntityHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetEntityHistoryQuery,
) ([]GetEntityHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	events := make([]GetEntityHistoryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT 
			seq, 
			id, 
			kind, 
			from_state, 
			to_state, 
			actor_id, 
			actor_role, 
			occurred_at, 
			note, 
			compensates_event_id, 
			is_compensating 
		FROM lifecycle_events
		WHERE entity_id = ?
		ORDER BY seq
	`, query.EntityID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		event, scanErr := scanHistoryRow(rows.Scan)
		if scanErr != nil {
			return nil, scanErr
		}
		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

func scanHistoryRow(scan func(dest ...any) error) (GetEntityHistoryQueryResponse, error) {
	var (
		event          GetEntityHistoryQueryResponse
		id             uuid.UUID
		kind           string
		fromState      string
		toState        string
		actorID        uuid.UUID
		actorRole      string
		occurredAt     time.Time
		compensatesID  uuid.NullUUID
		isCompensating bool
	)

	err := scan(
		&event.Seq,
		&id,
		&kind,
		&fromState,
		&toState,
		&actorID,
		&actorRole,
		&occurredAt,
		&event.Note,
		&compensatesID,
		&isCompensating,
	)
	if err != nil {
		return GetEntityHistoryQueryResponse{}, err
	}

	eventID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetEntityHistoryQueryResponse{}, err
	}

	actor, err := kernel.UUIDFromBytes(actorID[:])
	if err != nil {
		return GetEntityHistoryQueryResponse{}, err
	}

	event.EventID = eventID
	event.Kind = lifecycle.Kind(kind)
	event.FromState = lifecycle.State(fromState)
	event.ToState = lifecycle.State(toState)
	event.ActorID = actor
	event.ActorRole = kernel.Role(actorRole)
	event.OccurredAt = occurredAt
	event.IsCompensating = isCompensating

	if compensatesID.Valid {
		compensates, compErr := kernel.UUIDFromBytes(compensatesID.UUID[:])
		if compErr != nil {
			return GetEntityHistoryQueryResponse{}, compErr
		}
		event.CompensatesEventID = &compensates
	}

	return event, nil
}
