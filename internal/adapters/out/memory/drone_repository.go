package memory

import (
	"context"

	"drones/internal/core/domain/model/drone"
	"drones/internal/pkg/errs"
)

type droneRepository struct {
	uow *UnitOfWork
}

func (r *droneRepository) Add(_ context.Context, aggregate *drone.Drone) error {
	if err := r.uow.checkWritable(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	rec := fromDrone(aggregate)
	if _, ok := r.lookup(rec.number); ok {
		return errs.NewObjectAlreadyExistsError("drone", rec.number)
	}

	tx := r.uow.tx
	if tx == nil {
		return r.uow.store.apply(&transaction{newDrones: map[string]droneRecord{rec.number: rec}})
	}

	tx.newDrones[rec.number] = rec
	return nil
}

func (r *droneRepository) Update(_ context.Context, aggregate *drone.Drone) error {
	if err := r.uow.checkWritable(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	rec := fromDrone(aggregate)
	if _, ok := r.lookup(rec.number); !ok {
		return errs.NewObjectNotFoundError("drone", rec.number)
	}

	tx := r.uow.tx
	if tx == nil {
		return r.uow.store.apply(&transaction{updatedDrones: map[string]droneRecord{rec.number: rec}})
	}

	if _, added := tx.newDrones[rec.number]; added {
		tx.newDrones[rec.number] = rec
		return nil
	}
	tx.updatedDrones[rec.number] = rec
	return nil
}

func (r *droneRepository) Get(_ context.Context, number string) (*drone.Drone, error) {
	rec, ok := r.lookup(number)
	if !ok {
		return nil, errs.NewObjectNotFoundError("drone", number)
	}
	return rec.toDomain()
}

func (r *droneRepository) GetForUpdate(ctx context.Context, number string) (*drone.Drone, error) {
	if err := r.uow.checkWritable(); err != nil {
		return nil, err
	}

	tx := r.uow.tx
	if tx != nil {
		if _, held := tx.locked[number]; !held {
			if err := r.uow.store.lockDrone(ctx, number); err != nil {
				return nil, err
			}
			tx.locked[number] = struct{}{}
		}
	}

	return r.Get(ctx, number)
}

func (r *droneRepository) Exists(_ context.Context, number string) (bool, error) {
	_, ok := r.lookup(number)
	return ok, nil
}

func (r *droneRepository) ListByState(_ context.Context, state drone.State) ([]*drone.Drone, error) {
	return sortedDrones(r.snapshot(), func(rec droneRecord) bool {
		return rec.state == state
	})
}

func (r *droneRepository) ListAll(_ context.Context) ([]*drone.Drone, error) {
	return sortedDrones(r.snapshot(), func(droneRecord) bool {
		return true
	})
}

// lookup sees the transaction's own writes before the committed state.
func (r *droneRepository) lookup(number string) (droneRecord, bool) {
	if tx := r.uow.tx; tx != nil && tx.view != nil {
		rec, ok := tx.view.drones[number]
		return rec, ok
	}
	if tx := r.uow.tx; tx != nil {
		if rec, ok := tx.updatedDrones[number]; ok {
			return rec, true
		}
		if rec, ok := tx.newDrones[number]; ok {
			return rec, true
		}
	}
	return r.uow.store.drone(number)
}

func (r *droneRepository) snapshot() map[string]droneRecord {
	if tx := r.uow.tx; tx != nil && tx.view != nil {
		return tx.view.drones
	}
	records := r.uow.store.allDrones()
	if tx := r.uow.tx; tx != nil {
		for number, rec := range tx.newDrones {
			records[number] = rec
		}
		for number, rec := range tx.updatedDrones {
			records[number] = rec
		}
	}
	return records
}
