package commands

import (
	"context"

	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/kernel"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/lifecycle"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/storagebatch"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/services"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/pkg/clock"
)

// ExpireStorageBatchesCommandHandler sweeps overdue available batches into
// the expired state, acting as the system actor. Each expiry is a regular
// transition through the engine, so each produces its own audit event.
type ExpireStorageBatchesCommandHandler struct {
	registry   *lifecycle.Registry
	clock      clock.Clock
	uowFactory StorageBatchUoWFactory
}

// NewExpireStorageBatchesCommandHandler creates a handler for the expiry sweep.
func NewExpireStorageBatchesCommandHandler(
	registry *lifecycle.Registry,
	clk clock.Clock,
	uowFactory StorageBatchUoWFactory,
) ExpireStorageBatchesCommandHandler {
	return ExpireStorageBatchesCommandHandler{
		registry:   registry,
		clock:      clk,
		uowFactory: uowFactory,
	}
}

// Handle processes the expiry sweep and returns how many batches were expired.
// Selects available batches whose bestBefore precedes the current clock
// reading and transitions each to expired under the system actor.
func (h *ExpireStorageBatchesCommandHandler) Handle(ctx context.Context, cmd ExpireStorageBatchesCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	batchRepo := uow.StorageBatchRepository()

	overdue, err := batchRepo.GetAllOverdueAvailable(ctx, h.clock.Now())
	if err != nil {
		return 0, err
	}

	systemActor := kernel.NewSystemActor()
	executor := services.NewTransitionExecutor(h.registry, uow.EventLog(), h.clock)

	expired := 0
	for _, batch := range overdue {
		updated, _, err := executor.Transition(ctx, batch, storagebatch.StateExpired, systemActor, "")
		if err != nil {
			return 0, err
		}

		if err = batchRepo.Update(ctx, updated.(*storagebatch.StorageBatch)); err != nil {
			return 0, err
		}
		expired++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return expired, nil
}
