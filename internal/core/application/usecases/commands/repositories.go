// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderItemRepoFactory provides access to the order item repository within a transaction.
	OrderItemRepoFactory interface {
		OrderItemRepository() ports.OrderItemRepository
	}

	// StorageBatchRepoFactory provides access to the storage batch repository within a transaction.
	StorageBatchRepoFactory interface {
		StorageBatchRepository() ports.StorageBatchRepository
	}

	// EventLogFactory provides access to the event log within a transaction.
	// Every transition command appends through this log, so the snapshot update
	// and its audit event commit or roll back together.
	EventLogFactory interface {
		EventLog() ports.EventLog
	}

	// OrderItemUoW manages transactions for order-item operations.
	OrderItemUoW interface {
		TxManager
		OrderItemRepoFactory
		EventLogFactory
	}

	// OrderItemUoWFactory creates new order-item unit of work instances.
	OrderItemUoWFactory interface {
		Create() OrderItemUoW
	}

	// StorageBatchUoW manages transactions for storage-batch operations.
	StorageBatchUoW interface {
		TxManager
		StorageBatchRepoFactory
		EventLogFactory
	}

	// StorageBatchUoWFactory creates new storage-batch unit of work instances.
	StorageBatchUoWFactory interface {
		Create() StorageBatchUoW
	}

	// UoW manages transactions across both entity kinds.
	// Used by undo, which only learns the affected kind from the original event.
	UoW interface {
		TxManager
		OrderItemRepoFactory
		StorageBatchRepoFactory
		EventLogFactory
	}

	// UoWFactory creates new unit of work instances for cross-kind operations.
	UoWFactory interface {
		Create() UoW
	}
)
