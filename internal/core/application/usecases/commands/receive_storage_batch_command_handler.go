package commands

import (
	"context"

	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/storagebatch"
)

// ReceiveStorageBatchCommandHandler handles the business logic for batch receipt.
// New batches start in the received state with no lifecycle events recorded yet.
type ReceiveStorageBatchCommandHandler struct {
	uowFactory StorageBatchUoWFactory
}

// NewReceiveStorageBatchCommandHandler creates a handler for batch receipt.
// Requires a StorageBatchUoWFactory for transactional persistence.
func NewReceiveStorageBatchCommandHandler(uowFactory StorageBatchUoWFactory) ReceiveStorageBatchCommandHandler {
	return ReceiveStorageBatchCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the batch receipt command.
// Uses a transaction to ensure the batch is properly persisted or rolled back on error.
func (h *ReceiveStorageBatchCommandHandler) Handle(ctx context.Context, cmd ReceiveStorageBatchCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	batch, err := storagebatch.NewStorageBatch(
		cmd.BatchID(), cmd.Ingredient(), cmd.GrossIn(), cmd.ReceivedAt(), cmd.BestBefore(),
	)
	if err != nil {
		return err
	}

	if err = uow.StorageBatchRepository().Add(ctx, batch); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
