package memory

import (
	"context"

	"drones/internal/core/domain/model/medication"
	"drones/internal/pkg/errs"
)

type medicationRepository struct {
	uow *UnitOfWork
}

func (r *medicationRepository) Add(ctx context.Context, aggregate *medication.Medication) error {
	if err := r.uow.checkWritable(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	rec := fromMedication(aggregate)
	exists, err := r.Exists(ctx, rec.code)
	if err != nil {
		return err
	}
	if exists {
		return errs.NewObjectAlreadyExistsError("medication", rec.code)
	}

	tx := r.uow.tx
	if tx == nil {
		return r.uow.store.apply(&transaction{newMedications: map[string]medicationRecord{rec.code: rec}})
	}

	tx.newMedications[rec.code] = rec
	return nil
}

func (r *medicationRepository) Exists(_ context.Context, code string) (bool, error) {
	if tx := r.uow.tx; tx != nil && tx.view != nil {
		_, ok := tx.view.medications[code]
		return ok, nil
	}
	if tx := r.uow.tx; tx != nil {
		if _, ok := tx.newMedications[code]; ok {
			return true, nil
		}
	}
	return r.uow.store.hasMedication(code), nil
}
