package queries

import (
	"errors"
	"time"

	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/kernel"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/lifecycle"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/pkg/guard"
)

var (
	ErrGetAllowedTransitionsQueryIsNotConstructed = errors.New(
		"GetAllowedTransitionsQuery must be created via NewGetAllowedTransitionsQuery constructor",
	)
)

// GetAllowedTransitionsQuery asks which transitions the rule table permits
// from a given state of a given kind. Answered from the in-memory registry,
// no database access involved. UIs use it to render action affordances.
//
// Example:
//
//	query, err := NewGetAllowedTransitionsQuery(lifecycle.KindOrderItem, orderitem.StateQueued)
//	if err != nil {
//	    return err
//	}
//
//	transitions, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//
//	for _, t := range transitions {
//	    fmt.Printf("-> %s (roles: %v)\n", t.To, t.AllowedRoles)
//	}
type GetAllowedTransitionsQuery struct { //nolint:recvcheck //using for validation
	kind lifecycle.Kind
	from lifecycle.State

	guard guard.ConstructorGuard
}

// NewGetAllowedTransitionsQuery creates a query for transitions leaving the
// given state. Validates the kind and the state.
func NewGetAllowedTransitionsQuery(kind lifecycle.Kind, from lifecycle.State) (GetAllowedTransitionsQuery, error) {
	transitionsQuery := GetAllowedTransitionsQuery{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		transitionsQuery.setKind(kind),
		transitionsQuery.setFrom(from),
	); err != nil {
		return GetAllowedTransitionsQuery{}, err
	}

	return transitionsQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllowedTransitionsQueryIsNotConstructed if validation fails.
func (q GetAllowedTransitionsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllowedTransitionsQueryIsNotConstructed)
}

// Kind returns the entity kind whose transitions are requested.
func (q GetAllowedTransitionsQuery) Kind() lifecycle.Kind {
	return q.kind
}

// From returns the state the transitions leave from.
func (q GetAllowedTransitionsQuery) From() lifecycle.State {
	return q.from
}

func (q *GetAllowedTransitionsQuery) setKind(kind lifecycle.Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	q.kind = kind
	return nil
}

func (q *GetAllowedTransitionsQuery) setFrom(from lifecycle.State) error {
	if err := from.Validate(); err != nil {
		return err
	}

	q.from = from
	return nil
}

// GetAllowedTransitionsQueryResponse describes one permitted transition.
// A terminal state yields no responses at all.
type GetAllowedTransitionsQueryResponse struct {
	To                lifecycle.State
	AllowedRoles      []kernel.Role
	RequiresAuditNote bool
	IsReversible      bool
	ReversibleWindow  time.Duration
}
