package memory

import (
	"context"
	"errors"

	"drones/internal/core/ports"
	"drones/internal/pkg/errs"
)

var (
	ErrNoTransaction       = errors.New("no active transaction")
	ErrReadOnlyTransaction = errors.New("write in a read-only transaction")
)

type UnitOfWorkFactory struct {
	store *Store
}

func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork stages writes between Begin and Commit. Outside a transaction
// repositories read and write the Store directly.
type UnitOfWork struct {
	store *Store
	tx    *transaction
}

type transaction struct {
	newDrones      map[string]droneRecord
	updatedDrones  map[string]droneRecord
	newMedications map[string]medicationRecord
	events         []eventRecord
	locked         map[string]struct{}

	// view is set for read-only transactions; reads are served from it.
	view *storeView
}

func (uow *UnitOfWork) Begin(_ context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = newTransaction()
	return nil
}

// BeginReadOnly copies the committed state once; reads in the transaction do
// not observe later commits.
func (uow *UnitOfWork) BeginReadOnly(_ context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = newTransaction()
	uow.tx.view = uow.store.view()
	return nil
}

func newTransaction() *transaction {
	return &transaction{
		newDrones:      make(map[string]droneRecord),
		updatedDrones:  make(map[string]droneRecord),
		newMedications: make(map[string]medicationRecord),
		locked:         make(map[string]struct{}),
	}
}

func (uow *UnitOfWork) checkWritable() error {
	if uow.tx != nil && uow.tx.view != nil {
		return ErrReadOnlyTransaction
	}
	return nil
}

// Commit applies every staged write or none of them. A drone or medication
// added concurrently by another unit of work fails the commit with
// errs.ErrObjectAlreadyExists.
func (uow *UnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return ErrNoTransaction
	}
	defer uow.finish()

	return uow.store.apply(uow.tx)
}

func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return ErrNoTransaction
	}
	uow.finish()
	return nil
}

func (uow *UnitOfWork) DroneRepository() ports.DroneRepository {
	return &droneRepository{uow: uow}
}

func (uow *UnitOfWork) MedicationRepository() ports.MedicationRepository {
	return &medicationRepository{uow: uow}
}

func (uow *UnitOfWork) EventLogRepository() ports.EventLogRepository {
	return &eventLogRepository{uow: uow}
}

func (uow *UnitOfWork) finish() {
	for number := range uow.tx.locked {
		uow.store.unlockDrone(number)
	}
	uow.tx = nil
}

func (s *Store) apply(tx *transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for number := range tx.newDrones {
		if _, ok := s.drones[number]; ok {
			return errs.NewObjectAlreadyExistsError("drone", number)
		}
	}
	for code := range tx.newMedications {
		if _, ok := s.medications[code]; ok {
			return errs.NewObjectAlreadyExistsError("medication", code)
		}
	}
	for number := range tx.updatedDrones {
		if _, ok := s.drones[number]; !ok {
			if _, added := tx.newDrones[number]; !added {
				return errs.NewObjectNotFoundError("drone", number)
			}
		}
	}

	for number, rec := range tx.newDrones {
		s.drones[number] = rec
	}
	for number, rec := range tx.updatedDrones {
		s.drones[number] = rec
	}
	for code, rec := range tx.newMedications {
		s.medications[code] = rec
	}
	s.events = append(s.events, tx.events...)

	return nil
}
