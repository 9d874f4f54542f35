package eventlogrepo

import (
	"context"

	"drones/internal/core/domain/model/eventlog"

	"gorm.io/gorm"
)

// GormEventLogRepository implements ports.EventLogRepository using GORM.
type GormEventLogRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(key string, aggregate any)
}

func NewGormEventLogRepository(db *gorm.DB, tracker aggregateTracker) *GormEventLogRepository {
	return &GormEventLogRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormEventLogRepository) Append(ctx context.Context, entry *eventlog.EventLog) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(entry.ID().String(), entry)
	return nil
}

func (r *GormEventLogRepository) FindAll(ctx context.Context) ([]*eventlog.EventLog, error) {
	return r.find(r.db.WithContext(ctx))
}

func (r *GormEventLogRepository) FindByDrone(ctx context.Context, number string) ([]*eventlog.EventLog, error) {
	return r.find(r.db.WithContext(ctx).Where("drone_number = ?", number))
}

func (r *GormEventLogRepository) find(db *gorm.DB) ([]*eventlog.EventLog, error) {
	var dtos []EventLogDTO
	if err := db.Order("seq").Find(&dtos).Error; err != nil {
		return nil, err
	}

	entries := make([]*eventlog.EventLog, 0, len(dtos))
	for _, dto := range dtos {
		entry, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
