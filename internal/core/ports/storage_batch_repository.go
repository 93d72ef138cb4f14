package ports

import (
	"context"
	"time"

	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/kernel"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/storagebatch"
)

// StorageBatchRepository defines the persistence contract for storage batch snapshots.
type StorageBatchRepository interface {
	// Add persists a new storage batch snapshot to storage.
	// The batch must be valid and not already exist in the repository.
	Add(ctx context.Context, batch *storagebatch.StorageBatch) error

	// Update persists changes to an existing storage batch snapshot.
	// The batch must exist in the repository and be valid.
	Update(ctx context.Context, batch *storagebatch.StorageBatch) error

	// Get retrieves a storage batch snapshot by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*storagebatch.StorageBatch, error)

	// GetAllOverdueAvailable retrieves all batches in the available state whose
	// bestBefore precedes the given instant. Used by the expiry job to select
	// candidates for the system-driven expiry transition.
	GetAllOverdueAvailable(ctx context.Context, now time.Time) ([]*storagebatch.StorageBatch, error)
}
