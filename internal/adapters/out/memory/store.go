// Package memory provides an in-process implementation of the fleet ports.
//
// A Store holds committed data. Units of work created by a UnitOfWorkFactory
// stage their writes and apply them to the Store atomically on Commit, so a
// rolled back unit of work leaves no trace. GetForUpdate takes a per-drone lock
// that is held until Commit or Rollback, which gives the same serialization of
// concurrent loads as SELECT ... FOR UPDATE does in PostgreSQL.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"drones/internal/core/domain/model/drone"
	"drones/internal/core/domain/model/eventlog"
	"drones/internal/core/domain/model/kernel"
	"drones/internal/core/domain/model/medication"
)

type droneRecord struct {
	number          string
	modelType       drone.ModelType
	state           drone.State
	batteryCapacity int
}

type medicationRecord struct {
	code   string
	name   string
	weight int
}

type eventRecord struct {
	id              kernel.UUID
	droneNumber     string
	state           drone.State
	medicationCode  *string
	batteryCapacity int
	timestamp       time.Time
}

// Store is the committed state shared by all units of work.
type Store struct {
	mu          sync.RWMutex
	drones      map[string]droneRecord
	medications map[string]medicationRecord
	events      []eventRecord

	locksMu sync.Mutex
	locks   map[string]*droneLock
}

// droneLock is dropped from Store.locks once no unit of work holds or waits on it.
type droneLock struct {
	ch   chan struct{}
	refs int
}

func NewStore() *Store {
	return &Store{
		drones:      make(map[string]droneRecord),
		medications: make(map[string]medicationRecord),
		events:      make([]eventRecord, 0),
		locks:       make(map[string]*droneLock),
	}
}

// lockDrone blocks until the drone lock is free or ctx is done.
func (s *Store) lockDrone(ctx context.Context, number string) error {
	s.locksMu.Lock()
	lock, ok := s.locks[number]
	if !ok {
		lock = &droneLock{ch: make(chan struct{}, 1)}
		s.locks[number] = lock
	}
	lock.refs++
	s.locksMu.Unlock()

	select {
	case lock.ch <- struct{}{}:
		return nil
	case <-ctx.Done():
		s.releaseLock(number, lock)
		return ctx.Err()
	}
}

func (s *Store) unlockDrone(number string) {
	s.locksMu.Lock()
	lock, ok := s.locks[number]
	s.locksMu.Unlock()
	if !ok {
		return
	}

	<-lock.ch
	s.releaseLock(number, lock)
}

func (s *Store) releaseLock(number string, lock *droneLock) {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()

	lock.refs--
	if lock.refs == 0 {
		delete(s.locks, number)
	}
}

// storeView is a consistent copy of the committed state.
type storeView struct {
	drones      map[string]droneRecord
	medications map[string]medicationRecord
	events      []eventRecord
}

func (s *Store) view() *storeView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v := &storeView{
		drones:      make(map[string]droneRecord, len(s.drones)),
		medications: make(map[string]medicationRecord, len(s.medications)),
		events:      make([]eventRecord, len(s.events)),
	}
	for k, rec := range s.drones {
		v.drones[k] = rec
	}
	for k, rec := range s.medications {
		v.medications[k] = rec
	}
	copy(v.events, s.events)
	return v
}

func (s *Store) drone(number string) (droneRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.drones[number]
	return rec, ok
}

func (s *Store) hasMedication(code string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.medications[code]
	return ok
}

func (s *Store) allDrones() map[string]droneRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(map[string]droneRecord, len(s.drones))
	for k, v := range s.drones {
		result[k] = v
	}
	return result
}

func (s *Store) allEvents() []eventRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]eventRecord, len(s.events))
	copy(result, s.events)
	return result
}

func fromDrone(d *drone.Drone) droneRecord {
	return droneRecord{
		number:          d.Number(),
		modelType:       d.ModelType(),
		state:           d.State(),
		batteryCapacity: d.BatteryCapacity(),
	}
}

func (r droneRecord) toDomain() (*drone.Drone, error) {
	return drone.RestoreDrone(r.number, r.modelType, r.state, r.batteryCapacity)
}

func fromMedication(m *medication.Medication) medicationRecord {
	return medicationRecord{code: m.Code(), name: m.Name(), weight: m.Weight()}
}

func fromEventLog(e *eventlog.EventLog) eventRecord {
	rec := eventRecord{
		id:              e.ID(),
		droneNumber:     e.DroneNumber(),
		state:           e.State(),
		batteryCapacity: e.BatteryCapacity(),
		timestamp:       e.Timestamp(),
	}
	if code, ok := e.MedicationCode(); ok {
		rec.medicationCode = &code
	}
	return rec
}

func (r eventRecord) toDomain() (*eventlog.EventLog, error) {
	return eventlog.RestoreEventLog(r.id, r.droneNumber, r.state, r.medicationCode, r.batteryCapacity, r.timestamp)
}

func sortedDrones(records map[string]droneRecord, keep func(droneRecord) bool) ([]*drone.Drone, error) {
	numbers := make([]string, 0, len(records))
	for number, rec := range records {
		if keep(rec) {
			numbers = append(numbers, number)
		}
	}
	sort.Strings(numbers)

	result := make([]*drone.Drone, 0, len(numbers))
	for _, number := range numbers {
		d, err := records[number].toDomain()
		if err != nil {
			return nil, err
		}
		result = append(result, d)
	}
	return result, nil
}
