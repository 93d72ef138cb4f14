// Package storagebatchrepo provides data transfer objects and mapping
// functions for storage batch persistence.
package storagebatchrepo

import (
	"time"

	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/kernel"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/lifecycle"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/storagebatch"

	"github.com/google/uuid"
)

// StorageBatchDTO represents the database structure for persisting storage
// batch snapshots. Pending draws are request-scoped and never persisted.
type StorageBatchDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Ingredient string    `gorm:"index"`
	GrossIn    int
	UsedAmount int
	State      string    `gorm:"index:idx_storage_batches_state_best_before"`
	ReceivedAt time.Time
	BestBefore time.Time `gorm:"index:idx_storage_batches_state_best_before"`
}

// TableName specifies the database table name for storage batch snapshots.
func (StorageBatchDTO) TableName() string {
	return "storage_batches"
}

// fromDomain converts a storage batch snapshot to its database representation.
func fromDomain(batch *storagebatch.StorageBatch) StorageBatchDTO {
	return StorageBatchDTO{
		ID:         batch.ID().Bytes(),
		Ingredient: batch.Ingredient(),
		GrossIn:    batch.GrossIn(),
		UsedAmount: batch.UsedAmount(),
		State:      string(batch.CurrentState()),
		ReceivedAt: batch.ReceivedAt(),
		BestBefore: batch.BestBefore(),
	}
}

// toDomain converts a database DTO back to a storage batch snapshot.
func toDomain(dto StorageBatchDTO) (*storagebatch.StorageBatch, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return storagebatch.RestoreStorageBatch(
		id,
		dto.Ingredient,
		dto.GrossIn,
		dto.UsedAmount,
		lifecycle.State(dto.State),
		dto.ReceivedAt,
		dto.BestBefore,
	)
}
