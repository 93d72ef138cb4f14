package commands

import (
	"context"

	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/orderitem"
)

// CreateOrderItemCommandHandler handles the business logic for order line creation.
// New items start in the pending state with no lifecycle events recorded yet.
type CreateOrderItemCommandHandler struct {
	uowFactory OrderItemUoWFactory
}

// NewCreateOrderItemCommandHandler creates a handler for order item creation.
// Requires an OrderItemUoWFactory for transactional persistence.
func NewCreateOrderItemCommandHandler(uowFactory OrderItemUoWFactory) CreateOrderItemCommandHandler {
	return CreateOrderItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order item creation command.
// Uses a transaction to ensure the item is properly persisted or rolled back on error.
func (h *CreateOrderItemCommandHandler) Handle(ctx context.Context, cmd CreateOrderItemCommand) error {
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

	item, err := orderitem.NewOrderItem(cmd.ItemID(), cmd.OrderID(), cmd.Dish(), cmd.Quantity())
	if err != nil {
		return err
	}

	if err = uow.OrderItemRepository().Add(ctx, item); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
