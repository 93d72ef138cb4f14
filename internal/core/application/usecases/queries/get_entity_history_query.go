package queries

import (
	"errors"
	"time"

	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/kernel"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/lifecycle"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/pkg/guard"
)

var (
	ErrGetEntityHistoryQueryIsNotConstructed = errors.New(
		"GetEntityHistoryQuery must be created via NewGetEntityHistoryQuery constructor",
	)
)

// GetEntityHistoryQuery retrieves the full transition history of a single
// entity, compensating events included, in the order the transitions were
// serialized.
//
// Example:
//
//	query, err := NewGetEntityHistoryQuery(itemID)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetEntityHistoryQueryHandler(db)
//
//	history, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get history: %w", err)
//	}
//
//	for _, event := range history {
//	    fmt.Printf("%d: %s -> %s by %s\n",
//	        event.Seq, event.FromState, event.ToState, event.ActorRole)
//	}
type GetEntityHistoryQuery struct { //nolint:recvcheck //using for validation
	entityID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetEntityHistoryQuery creates a query for the given entity's history.
// Validates the entity identifier.
func NewGetEntityHistoryQuery(entityID kernel.UUID) (GetEntityHistoryQuery, error) {
	historyQuery := GetEntityHistoryQuery{guard: guard.NewConstructorGuard()}

	if err := historyQuery.setEntityID(entityID); err != nil {
		return GetEntityHistoryQuery{}, err
	}

	return historyQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetEntityHistoryQueryIsNotConstructed if validation fails.
func (q GetEntityHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetEntityHistoryQueryIsNotConstructed)
}

// EntityID returns the identifier of the entity whose history is requested.
func (q GetEntityHistoryQuery) EntityID() kernel.UUID {
	return q.entityID
}

func (q *GetEntityHistoryQuery) setEntityID(entityID kernel.UUID) error {
	if err := entityID.Validate(); err != nil {
		return err
	}

	q.entityID = entityID
	return nil
}

// GetEntityHistoryQueryResponse represents one recorded transition of the entity.
type GetEntityHistoryQueryResponse struct {
	EventID            kernel.UUID
	Seq                int64
	Kind               lifecycle.Kind
	FromState          lifecycle.State
	ToState            lifecycle.State
	ActorID            kernel.UUID
	ActorRole          kernel.Role
	OccurredAt         time.Time
	Note               string
	CompensatesEventID *kernel.UUID
	IsCompensating     bool
}
