package queries

import (
	"context"

	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/lifecycle"
)

// GetAllowedTransitionsQueryHandler answers affordance queries from the
// transition rule registry.
type GetAllowedTransitionsQueryHandler struct {
	registry *lifecycle.Registry
}

// NewGetAllowedTransitionsQueryHandler creates a handler backed by the given registry.
func NewGetAllowedTransitionsQueryHandler(registry *lifecycle.Registry) GetAllowedTransitionsQueryHandler {
	return GetAllowedTransitionsQueryHandler{registry: registry}
}

// Handle returns the transitions the rule table permits from the query's
// state, with the role and audit requirements a caller needs to render
// actions. An unknown or terminal state yields an empty slice.
func (h GetAllowedTransitionsQueryHandler) Handle(
	_ context.Context,
	query GetAllowedTransitionsQuery,
) ([]GetAllowedTransitionsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	transitions := make([]GetAllowedTransitionsQueryResponse, 0)

	for _, rule := range h.registry.Rules(query.Kind()) {
		if rule.From() != query.From() {
			continue
		}

		transitions = append(transitions, GetAllowedTransitionsQueryResponse{
			To:                rule.To(),
			AllowedRoles:      rule.AllowedRoles(),
			RequiresAuditNote: rule.RequiresAuditNote(),
			IsReversible:      rule.IsReversible(),
			ReversibleWindow:  rule.ReversibleWindow(),
		})
	}

	return transitions, nil
}
