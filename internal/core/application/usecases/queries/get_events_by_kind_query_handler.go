package queries

import (
	"context"
	"time"

	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/kernel"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/lifecycle"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetEventsByKindQueryHandler reads transitions of one kind within a time
// range from the event log table.
//
// Example:
//
//	handler := NewGetEventsByKindQueryHandler(db)
//	query, _ := NewGetEventsByKindQuery(lifecycle.KindStorageBatch, shiftStart, shiftEnd)
//
//	events, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get events: %v", err)
//	    return err
//	}
type GetEventsByKindQueryHandler struct {
	db *gorm.DB
}

// NewGetEventsByKindQueryHandler creates a handler for kind-scoped event queries.
// Requires a GORM database connection for query execution.
func NewGetEventsByKindQueryHandler(db *gorm.DB) GetEventsByKindQueryHandler {
	return GetEventsByKindQueryHandler{db: db}
}

// Handle executes the query and returns matching transitions in ascending
// seq order. Both range bounds are inclusive.
func (h GetEventsByKindQueryHandler) Handle(
	ctx context.Context,
	query GetEventsByKindQuery,
) ([]GetEventsByKindQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	events := make([]GetEventsByKindQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT 
			seq, 
			id, 
			entity_id, 
			from_state, 
			to_state, 
			actor_id, 
			actor_role, 
			occurred_at, 
			note, 
			compensates_event_id, 
			is_compensating 
		FROM lifecycle_events
		WHERE kind = ? AND occurred_at >= ? AND occurred_at <= ?
		ORDER BY seq
	`, query.Kind().String(), query.From(), query.To()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			event          GetEventsByKindQueryResponse
			id             uuid.UUID
			entityID       uuid.UUID
			fromState      string
			toState        string
			actorID        uuid.UUID
			actorRole      string
			occurredAt     time.Time
			compensatesID  uuid.NullUUID
			isCompensating bool
		)

		err = rows.Scan(
			&event.Seq,
			&id,
			&entityID,
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
			return nil, err
		}

		eventID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		entity, entityErr := kernel.UUIDFromBytes(entityID[:])
		if entityErr != nil {
			return nil, entityErr
		}

		actor, actorErr := kernel.UUIDFromBytes(actorID[:])
		if actorErr != nil {
			return nil, actorErr
		}

		event.EventID = eventID
		event.EntityID = entity
		event.FromState = lifecycle.State(fromState)
		event.ToState = lifecycle.State(toState)
		event.ActorID = actor
		event.ActorRole = kernel.Role(actorRole)
		event.OccurredAt = occurredAt
		event.IsCompensating = isCompensating

		if compensatesID.Valid {
			compensates, compErr := kernel.UUIDFromBytes(compensatesID.UUID[:])
			if compErr != nil {
				return nil, compErr
			}
			event.CompensatesEventID = &compensates
		}

		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
