package commands

import (
	"context"

	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/lifecycle"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/storagebatch"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/services"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/pkg/clock"
)

// TransitionStorageBatchCommandHandler executes a state change on a storage
// batch. The snapshot update and the appended audit event share one
// transaction.
type TransitionStorageBatchCommandHandler struct {
	registry   *lifecycle.Registry
	clock      clock.Clock
	uowFactory StorageBatchUoWFactory
}

// NewTransitionStorageBatchCommandHandler creates a handler for batch transitions.
func NewTransitionStorageBatchCommandHandler(
	registry *lifecycle.Registry,
	clk clock.Clock,
	uowFactory StorageBatchUoWFactory,
) TransitionStorageBatchCommandHandler {
	return TransitionStorageBatchCommandHandler{
		registry:   registry,
		clock:      clk,
		uowFactory: uowFactory,
	}
}

// Handle processes the transition command and returns the sequenced audit event.
func (h *TransitionStorageBatchCommandHandler) Handle(
	ctx context.Context,
	cmd TransitionStorageBatchCommand,
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

	executor := services.NewTransitionExecutor(h.registry, uow.EventLog(), h.clock)

	updated, event, err := executor.Transition(ctx, batch, cmd.Target(), cmd.Actor(), cmd.Note())
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
