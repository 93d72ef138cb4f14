// Package orderitemrepo provides data transfer objects and mapping functions
// for order item persistence. Only the latest snapshot lives here; the full
// transition history belongs to the event log.
package orderitemrepo

import (
	"time"

	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/kernel"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/lifecycle"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/orderitem"

	"github.com/google/uuid"
)

// OrderItemDTO represents the database structure for persisting order item snapshots.
type OrderItemDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	Dish      string
	Quantity  int
	State     string `gorm:"index"`
	StartedAt *time.Time
	ReadyAt   *time.Time
	ServedAt  *time.Time
}

// TableName specifies the database table name for order item snapshots.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order item snapshot to its database representation.
func fromDomain(item *orderitem.OrderItem) OrderItemDTO {
	return OrderItemDTO{
		ID:        item.ID().Bytes(),
		OrderID:   item.OrderID().Bytes(),
		Dish:      item.Dish(),
		Quantity:  item.Quantity(),
		State:     string(item.CurrentState()),
		StartedAt: item.StartedAt(),
		ReadyAt:   item.ReadyAt(),
		ServedAt:  item.ServedAt(),
	}
}

// toDomain converts a database DTO back to an order item snapshot.
func toDomain(dto OrderItemDTO) (*orderitem.OrderItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return orderitem.RestoreOrderItem(
		id,
		orderID,
		dto.Dish,
		dto.Quantity,
		lifecycle.State(dto.State),
		dto.StartedAt,
		dto.ReadyAt,
		dto.ServedAt,
	)
}
