package storagebatchrepo

import (
	"context"
	"errors"
	"time"

	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/kernel"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/storagebatch"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormStorageBatchRepository implements StorageBatchRepository using GORM.
type GormStorageBatchRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormStorageBatchRepository creates a new GORM storage batch repository.
func NewGormStorageBatchRepository(db *gorm.DB, tracker aggregateTracker) *GormStorageBatchRepository {
	return &GormStorageBatchRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new storage batch snapshot to the database.
func (r *GormStorageBatchRepository) Add(ctx context.Context, batch *storagebatch.StorageBatch) error {
	if err := batch.Validate(); err != nil {
		return err
	}

	dto := fromDomain(batch)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(batch.ID(), batch)
	return nil
}

// Update saves an existing storage batch snapshot to the database.
func (r *GormStorageBatchRepository) Update(ctx context.Context, batch *storagebatch.StorageBatch) error {
	if err := batch.Validate(); err != nil {
		return err
	}

	dto := fromDomain(batch)
	result := r.db.WithContext(ctx).Model(&StorageBatchDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(batch.ID(), batch)
	return nil
}

// Get retrieves a storage batch snapshot by ID.
func (r *GormStorageBatchRepository) Get(ctx context.Context, id kernel.UUID) (*storagebatch.StorageBatch, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto StorageBatchDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("storageBatch", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllOverdueAvailable retrieves all available batches whose bestBefore
// precedes the given instant, ordered by ID for deterministic sweeps.
func (r *GormStorageBatchRepository) GetAllOverdueAvailable(ctx context.Context, now time.Time) ([]*storagebatch.StorageBatch, error) {
	var dtos []StorageBatchDTO
	err := r.db.WithContext(ctx).
		Where("state = ? AND best_before < ?", string(storagebatch.StateAvailable), now).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	batches := make([]*storagebatch.StorageBatch, 0, len(dtos))
	for _, dto := range dtos {
		batch, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		batches = append(batches, batch)
	}

	return batches, nil
}
