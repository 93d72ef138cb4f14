package ports

import (
	"context"

	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/kernel"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/orderitem"
)

// OrderItemRepository defines the persistence contract for order item snapshots.
type OrderItemRepository interface {
	// Add persists a new order item snapshot to storage.
	// The item must be valid and not already exist in the repository.
	Add(ctx context.Context, item *orderitem.OrderItem) error

	// Update persists changes to an existing order item snapshot.
	// The item must exist in the repository and be valid.
	Update(ctx context.Context, item *orderitem.OrderItem) error

	// Get retrieves an order item snapshot by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*orderitem.OrderItem, error)
}
