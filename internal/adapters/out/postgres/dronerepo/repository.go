package dronerepo

import (
	"context"
	"errors"

	"drones/internal/core/domain/model/drone"
	"drones/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormDroneRepository implements ports.DroneRepository using GORM.
type GormDroneRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(key string, aggregate any)
}

func NewGormDroneRepository(db *gorm.DB, tracker aggregateTracker) *GormDroneRepository {
	return &GormDroneRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a new drone. The primary key on number turns a duplicate into
// errs.ErrObjectAlreadyExists.
func (r *GormDroneRepository) Add(ctx context.Context, aggregate *drone.Drone) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return errs.NewObjectAlreadyExistsErrorWithCause("drone", dto.Number, err)
		}
		return err
	}

	r.tracker.TrackAggregate(dto.Number, aggregate)
	return nil
}

// Update writes the mutable columns of an existing drone.
func (r *GormDroneRepository) Update(ctx context.Context, aggregate *drone.Drone) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&DroneDTO{}).
		Where("number = ?", dto.Number).
		Updates(map[string]any{
			"state":            dto.State,
			"battery_capacity": dto.BatteryCapacity,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("drone", dto.Number)
	}

	r.tracker.TrackAggregate(dto.Number, aggregate)
	return nil
}

func (r *GormDroneRepository) Get(ctx context.Context, number string) (*drone.Drone, error) {
	return r.get(r.db.WithContext(ctx), number)
}

// GetForUpdate reads the drone with SELECT ... FOR UPDATE. The row lock lasts
// until the surrounding transaction ends.
func (r *GormDroneRepository) GetForUpdate(ctx context.Context, number string) (*drone.Drone, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), number)
}

func (r *GormDroneRepository) Exists(ctx context.Context, number string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&DroneDTO{}).Where("number = ?", number).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormDroneRepository) ListByState(ctx context.Context, state drone.State) ([]*drone.Drone, error) {
	var dtos []DroneDTO
	if err := r.db.WithContext(ctx).
		Where("state = ?", state.String()).
		Order("number").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}

func (r *GormDroneRepository) ListAll(ctx context.Context) ([]*drone.Drone, error) {
	var dtos []DroneDTO
	if err := r.db.WithContext(ctx).Order("number").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}

func (r *GormDroneRepository) get(db *gorm.DB, number string) (*drone.Drone, error) {
	var dto DroneDTO
	if err := db.Where("number = ?", number).First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("drone", number)
		}
		return nil, err
	}

	return toDomain(dto)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
