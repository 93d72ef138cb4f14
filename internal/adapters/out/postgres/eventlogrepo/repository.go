package eventlogrepo

import (
	"context"
	"errors"
	"iter"
	"time"

	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/kernel"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/lifecycle"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormEventLog implements the EventLog port using GORM.
// The repository only ever inserts and selects; there is deliberately no
// update or delete method on this type.
type GormEventLog struct {
	db *gorm.DB
}

// NewGormEventLog creates a new GORM event log over the given connection,
// which may be a transaction.
func NewGormEventLog(db *gorm.DB) *GormEventLog {
	return &GormEventLog{db: db}
}

// Append inserts the record and returns it stamped with the database-assigned seq.
func (r *GormEventLog) Append(ctx context.Context, record lifecycle.EventRecord) (lifecycle.EventRecord, error) {
	if err := record.Validate(); err != nil {
		return lifecycle.EventRecord{}, err
	}
	if record.Seq() != 0 {
		return lifecycle.EventRecord{}, lifecycle.NewInfrastructureError("append", lifecycle.ErrSeqAlreadyStamped)
	}

	dto := fromDomain(record)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return lifecycle.EventRecord{}, lifecycle.NewInfrastructureError("append", err)
	}

	stamped, err := record.StampSeq(dto.Seq)
	if err != nil {
		return lifecycle.EventRecord{}, lifecycle.NewInfrastructureError("append", err)
	}

	return stamped, nil
}

// GetByID retrieves a single record by its event identifier.
func (r *GormEventLog) GetByID(ctx context.Context, id kernel.UUID) (lifecycle.EventRecord, error) {
	if err := id.Validate(); err != nil {
		return lifecycle.EventRecord{}, err
	}

	var dto EventDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return lifecycle.EventRecord{}, errs.NewObjectNotFoundError("event", id.String())
		}
		return lifecycle.EventRecord{}, lifecycle.NewInfrastructureError("getByID", err)
	}

	return toDomain(dto)
}

// LatestByEntity retrieves the most recent record for the given entity.
func (r *GormEventLog) LatestByEntity(ctx context.Context, kind lifecycle.Kind, entityID kernel.UUID) (lifecycle.EventRecord, error) {
	if err := entityID.Validate(); err != nil {
		return lifecycle.EventRecord{}, err
	}

	var dto EventDTO
	err := r.db.WithContext(ctx).
		Where("kind = ? AND entity_id = ?", string(kind), entityID.Bytes()).
		Order("seq DESC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return lifecycle.EventRecord{}, errs.NewObjectNotFoundError("entity", entityID.String())
		}
		return lifecycle.EventRecord{}, lifecycle.NewInfrastructureError("latestByEntity", err)
	}

	return toDomain(dto)
}

// FindCompensation looks up the compensating record referencing the given event.
func (r *GormEventLog) FindCompensation(ctx context.Context, eventID kernel.UUID) (lifecycle.EventRecord, bool, error) {
	if err := eventID.Validate(); err != nil {
		return lifecycle.EventRecord{}, false, err
	}

	var dto EventDTO
	err := r.db.WithContext(ctx).First(&dto, "compensates_event_id = ?", eventID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return lifecycle.EventRecord{}, false, nil
		}
		return lifecycle.EventRecord{}, false, lifecycle.NewInfrastructureError("findCompensation", err)
	}

	record, err := toDomain(dto)
	if err != nil {
		return lifecycle.EventRecord{}, false, err
	}

	return record, true, nil
}

// QueryByEntity yields the entity's records in ascending seq order.
// Each range over the returned sequence re-runs the query.
func (r *GormEventLog) QueryByEntity(ctx context.Context, entityID kernel.UUID) iter.Seq2[lifecycle.EventRecord, error] {
	return r.query(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("entity_id = ?", entityID.Bytes())
	})
}

// QueryByKindAndRange yields the kind's records within [from, to] in ascending seq order.
func (r *GormEventLog) QueryByKindAndRange(ctx context.Context, kind lifecycle.Kind, from, to time.Time) iter.Seq2[lifecycle.EventRecord, error] {
	return r.query(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("kind = ? AND occurred_at >= ? AND occurred_at <= ?", string(kind), from, to)
	})
}

func (r *GormEventLog) query(ctx context.Context, filter func(*gorm.DB) *gorm.DB) iter.Seq2[lifecycle.EventRecord, error] {
	return func(yield func(lifecycle.EventRecord, error) bool) {
		rows, err := filter(r.db.WithContext(ctx).Model(&EventDTO{})).Order("seq ASC").Rows()
		if err != nil {
			yield(lifecycle.EventRecord{}, lifecycle.NewInfrastructureError("query", err))
			return
		}
		defer rows.Close()

		for rows.Next() {
			var dto EventDTO
			if err = r.db.ScanRows(rows, &dto); err != nil {
				yield(lifecycle.EventRecord{}, lifecycle.NewInfrastructureError("query", err))
				return
			}

			record, err := toDomain(dto)
			if !yield(record, err) {
				return
			}
		}

		if err = rows.Err(); err != nil {
			yield(lifecycle.EventRecord{}, lifecycle.NewInfrastructureError("query", err))
		}
	}
}
