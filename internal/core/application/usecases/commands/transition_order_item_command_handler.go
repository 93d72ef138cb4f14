package commands

import (
	"context"

	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/lifecycle"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/orderitem"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/services"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/pkg/clock"
)

// TransitionOrderItemCommandHandler executes a state change on an order line.
// The snapshot update and the appended audit event share one transaction: a
// rejected transition rolls back with nothing recorded.
//
// Example:
//
//	handler := NewTransitionOrderItemCommandHandler(registry, clk, uowFactory)
//	event, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, lifecycle.ErrTransitionNotAllowed):
//	    // no such transition in the rule table
//	case errors.Is(err, lifecycle.ErrAuditNoteRequired):
//	    // ask the user for a reason
//	case err != nil:
//	    // infrastructure or conflict
//	default:
//	    log.Printf("recorded transition seq=%d", event.Seq())
//	}
type TransitionOrderItemCommandHandler struct {
	registry   *lifecycle.Registry
	clock      clock.Clock
	uowFactory OrderItemUoWFactory
}

// NewTransitionOrderItemCommandHandler creates a handler for order line transitions.
func NewTransitionOrderItemCommandHandler(
	registry *lifecycle.Registry,
	clk clock.Clock,
	uowFactory OrderItemUoWFactory,
) TransitionOrderItemCommandHandler {
	return TransitionOrderItemCommandHandler{
		registry:   registry,
		clock:      clk,
		uowFactory: uowFactory,
	}
}

// Handle processes the transition command and returns the sequenced audit event.
// Loads the current snapshot, runs the transition through the lifecycle engine,
// and persists the updated snapshot together with the appended event.
func (h *TransitionOrderItemCommandHandler) Handle(
	ctx context.Context,
	cmd TransitionOrderItemCommand,
) (lifecycle.EventRecord, error) {
	if err := cmd.Validate(); err != nil {
		return lifecycle.EventRecord{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return lifecycle.EventRecord{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	itemRepo := uow.OrderItemRepository()

	item, err := itemRepo.Get(ctx, cmd.ItemID())
	if err != nil {
		return lifecycle.EventRecord{}, err
	}

	executor := services.NewTransitionExecutor(h.registry, uow.EventLog(), h.clock)

	updated, event, err := executor.Transition(ctx, item, cmd.Target(), cmd.Actor(), cmd.Note())
	if err != nil {
		return lifecycle.EventRecord{}, err
	}

	if err = itemRepo.Update(ctx, updated.(*orderitem.OrderItem)); err != nil {
		return lifecycle.EventRecord{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return lifecycle.EventRecord{}, err
	}

	return event, nil
}
