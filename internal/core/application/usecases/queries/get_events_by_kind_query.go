package queries

import (
	"errors"
	"time"

	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/kernel"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/lifecycle"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/pkg/errs"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/pkg/guard"
)

var (
	ErrGetEventsByKindQueryIsNotConstructed = errors.New(
		"GetEventsByKindQuery must be created via NewGetEventsByKindQuery constructor",
	)

	ErrTimeRangeIsInvalid = errors.New("from must not be after to")
)

// GetEventsByKindQuery retrieves all transitions of one entity kind that
// occurred within a closed time range. Used for shift reports and audits.
//
// Example:
//
//	shiftStart := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
//	shiftEnd := shiftStart.Add(8 * time.Hour)
//
//	query, err := NewGetEventsByKindQuery(lifecycle.KindOrderItem, shiftStart, shiftEnd)
//	if err != nil {
//	    return err
//	}
//
//	events, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get shift events: %w", err)
//	}
type GetEventsByKindQuery struct { //nolint:recvcheck //using for validation
	kind lifecycle.Kind
	from time.Time
	to   time.Time

	guard guard.ConstructorGuard
}

// NewGetEventsByKindQuery creates a query for transitions of the given kind
// within [from, to]. Both bounds are inclusive.
func NewGetEventsByKindQuery(kind lifecycle.Kind, from, to time.Time) (GetEventsByKindQuery, error) {
	kindQuery := GetEventsByKindQuery{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		kindQuery.setKind(kind),
		kindQuery.setRange(from, to),
	); err != nil {
		return GetEventsByKindQuery{}, err
	}

	return kindQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetEventsByKindQueryIsNotConstructed if validation fails.
func (q GetEventsByKindQuery) Validate() error {
	return q.guard.Validate(ErrGetEventsByKindQueryIsNotConstructed)
}

// Kind returns the entity kind whose transitions are requested.
func (q GetEventsByKindQuery) Kind() lifecycle.Kind {
	return q.kind
}

// From returns the inclusive lower bound of the time range.
func (q GetEventsByKindQuery) From() time.Time {
	return q.from
}

// To returns the inclusive upper bound of the time range.
func (q GetEventsByKindQuery) To() time.Time {
	return q.to
}

func (q *GetEventsByKindQuery) setKind(kind lifecycle.Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	q.kind = kind
	return nil
}

func (q *GetEventsByKindQuery) setRange(from, to time.Time) error {
	if from.IsZero() || to.IsZero() {
		return errs.NewValueIsRequiredError("from/to")
	}
	if from.After(to) {
		return errs.NewValueIsInvalidErrorWithCause("from/to", ErrTimeRangeIsInvalid)
	}

	q.from = from
	q.to = to
	return nil
}

// GetEventsByKindQueryResponse represents one transition within the requested range.
type GetEventsByKindQueryResponse struct {
	EventID            kernel.UUID
	Seq                int64
	EntityID           kernel.UUID
	FromState          lifecycle.State
	ToState            lifecycle.State
	ActorID            kernel.UUID
	ActorRole          kernel.Role
	OccurredAt         time.Time
	Note               string
	CompensatesEventID *kernel.UUID
	IsCompensating     bool
}
