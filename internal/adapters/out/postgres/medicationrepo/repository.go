package medicationrepo

import (
	"context"
	"errors"

	"drones/internal/core/domain/model/medication"
	"drones/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// GormMedicationRepository implements ports.MedicationRepository using GORM.
type GormMedicationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(key string, aggregate any)
}

func NewGormMedicationRepository(db *gorm.DB, tracker aggregateTracker) *GormMedicationRepository {
	return &GormMedicationRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormMedicationRepository) Add(ctx context.Context, aggregate *medication.Medication) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return errs.NewObjectAlreadyExistsErrorWithCause("medication", dto.Code, err)
		}
		return err
	}

	r.tracker.TrackAggregate(dto.Code, aggregate)
	return nil
}

func (r *GormMedicationRepository) Exists(ctx context.Context, code string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&MedicationDTO{}).Where("code = ?", code).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
