package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/lifecycle"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/orderitem"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/storagebatch"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/services"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/pkg/clock"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/pkg/errs"
)

// UndoTransitionCommandHandler reverses an earlier transition by appending a
// compensating event and persisting the reverted snapshot, all in one
// transaction. The original event is never edited.
type UndoTransitionCommandHandler struct {
	registry   *lifecycle.Registry
	clock      clock.Clock
	uowFactory UoWFactory
}

// NewUndoTransitionCommandHandler creates a handler for undo requests.
// Requires the cross-kind UoWFactory because the affected entity kind is only
// known once the original event is loaded.
func NewUndoTransitionCommandHandler(
	registry *lifecycle.Registry,
	clk clock.Clock,
	uowFactory UoWFactory,
) UndoTransitionCommandHandler {
	return UndoTransitionCommandHandler{
		registry:   registry,
		clock:      clk,
		uowFactory: uowFactory,
	}
}

// Handle processes the undo command and returns the sequenced compensating event.
func (h *UndoTransitionCommandHandler) Handle(
	ctx context.Context,
	cmd UndoTransitionCommand,
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

	eventLog := uow.EventLog()

	original, err := eventLog.GetByID(ctx, cmd.EventID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return lifecycle.EventRecord{}, lifecycle.ErrEventNotFound
		}
		return lifecycle.EventRecord{}, err
	}

	executor := services.NewTransitionExecutor(h.registry, eventLog, h.clock)
	undoManager := services.NewUndoManager(h.registry, executor, eventLog, h.clock)

	compensating, err := h.undoByKind(ctx, uow, undoManager, original, cmd)
	if err != nil {
		return lifecycle.EventRecord{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return lifecycle.EventRecord{}, err
	}

	return compensating, nil
}

// undoByKind loads the right snapshot for the original event's kind, runs the
// undo, and persists the reverted snapshot through the matching repository.
func (h *UndoTransitionCommandHandler) undoByKind(
	ctx context.Context,
	uow UoW,
	undoManager *services.UndoManager,
	original lifecycle.EventRecord,
	cmd UndoTransitionCommand,
) (lifecycle.EventRecord, error) {
	switch original.Kind() {
	case lifecycle.KindOrderItem:
		itemRepo := uow.OrderItemRepository()

		item, err := itemRepo.Get(ctx, original.EntityID())
		if err != nil {
			return lifecycle.EventRecord{}, err
		}

		reverted, compensating, err := undoManager.Undo(ctx, item, cmd.EventID(), cmd.Actor(), cmd.Reason())
		if err != nil {
			return lifecycle.EventRecord{}, err
		}

		if err = itemRepo.Update(ctx, reverted.(*orderitem.OrderItem)); err != nil {
			return lifecycle.EventRecord{}, err
		}
		return compensating, nil

	case lifecycle.KindStorageBatch:
		batchRepo := uow.StorageBatchRepository()

		batch, err := batchRepo.Get(ctx, original.EntityID())
		if err != nil {
			return lifecycle.EventRecord{}, err
		}

		reverted, compensating, err := undoManager.Undo(ctx, batch, cmd.EventID(), cmd.Actor(), cmd.Reason())
		if err != nil {
			return lifecycle.EventRecord{}, err
		}

		if err = batchRepo.Update(ctx, reverted.(*storagebatch.StorageBatch)); err != nil {
			return lifecycle.EventRecord{}, err
		}
		return compensating, nil

	default:
		return lifecycle.EventRecord{}, errs.NewValueIsInvalidErrorWithCause(
			"kind", fmt.Errorf("no repository for kind %q", original.Kind()),
		)
	}
}
