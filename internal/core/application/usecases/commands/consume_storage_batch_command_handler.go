package commands

import (
	"context"

	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/lifecycle"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/storagebatch"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/services"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/pkg/clock"
)

// ConsumeStorageBatchCommandHandler executes a draw against a storage batch.
//
// The handler picks the target state: consumed when the draw exhausts the
// batch, otherwise the batch's current state (a self-transition recording the
// partial draw). The rule table's guard still decides whether the draw fits;
// an oversized draw comes back as ErrTransitionForbidden with nothing
// recorded.
type ConsumeStorageBatchCommandHandler struct {
	registry   *lifecycle.Registry
	clock      clock.Clock
	uowFactory StorageBatchUoWFactory
}

// NewConsumeStorageBatchCommandHandler creates a handler for batch draws.
func NewConsumeStorageBatchCommandHandler(
	registry *lifecycle.Registry,
	clk clock.Clock,
	uowFactory StorageBatchUoWFactory,
) ConsumeStorageBatchCommandHandler {
	return ConsumeStorageBatchCommandHandler{
		registry:   registry,
		clock:      clk,
		uowFactory: uowFactory,
	}
}

// Handle processes the draw command and returns the sequenced audit event.
func (h *ConsumeStorageBatchCommandHandler) Handle(
	ctx context.Context,
	cmd ConsumeStorageBatchCommand,
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

	batchRepo := uow.StorageBatchRepository()

	batch, err := batchRepo.Get(ctx, cmd.BatchID())
	if err != nil {
		return lifecycle.EventRecord{}, err
	}

	drawn, err := batch.WithPendingDraw(cmd.Amount())
	if err != nil {
		return lifecycle.EventRecord{}, err
	}

	target := batch.CurrentState()
	if cmd.Amount() == batch.Remaining() {
		target = storagebatch.StateConsumed
	}

	executor := services.NewTransitionExecutor(h.registry, uow.EventLog(), h.clock)

	updated, event, err := executor.Transition(ctx, drawn, target, cmd.Actor(), "")
	if err != nil {
		return lifecycle.EventRecord{}, err
	}

	if err = batchRepo.Update(ctx, updated.(*storagebatch.StorageBatch)); err != nil {
		return lifecycle.EventRecord{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return lifecycle.EventRecord{}, err
	}

	return event, nil
}
