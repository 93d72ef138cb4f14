package orderitemrepo

import (
	"context"
	"errors"

	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/kernel"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/orderitem"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderItemRepository implements OrderItemRepository using GORM.
type GormOrderItemRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderItemRepository creates a new GORM order item repository.
func NewGormOrderItemRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderItemRepository {
	return &GormOrderItemRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order item snapshot to the database.
func (r *GormOrderItemRepository) Add(ctx context.Context, item *orderitem.OrderItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(item.ID(), item)
	return nil
}

// Update saves an existing order item snapshot to the database.
func (r *GormOrderItemRepository) Update(ctx context.Context, item *orderitem.OrderItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	// Select("*") forces zero values through, so an undo that cleared a
	// timestamp writes NULL instead of being skipped.
	dto := fromDomain(item)
	result := r.db.WithContext(ctx).Model(&OrderItemDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(item.ID(), item)
	return nil
}

// Get retrieves an order item snapshot by ID.
func (r *GormOrderItemRepository) Get(ctx context.Context, id kernel.UUID) (*orderitem.OrderItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderItem", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
