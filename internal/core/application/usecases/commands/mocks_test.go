package commands_test

import (
	"context"

	"drones/internal/core/application/usecases/commands"
	"drones/internal/core/domain/model/drone"
	"drones/internal/core/domain/model/eventlog"
	"drones/internal/core/domain/model/medication"
	"drones/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockDroneRepository struct{ mock.Mock }

func (m *MockDroneRepository) Add(ctx context.Context, d *drone.Drone) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDroneRepository) Update(ctx context.Context, d *drone.Drone) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDroneRepository) Get(ctx context.Context, number string) (*drone.Drone, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*drone.Drone), args.Error(1)
}

func (m *MockDroneRepository) GetForUpdate(ctx context.Context, number string) (*drone.Drone, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*drone.Drone), args.Error(1)
}

func (m *MockDroneRepository) Exists(ctx context.Context, number string) (bool, error) {
	args := m.Called(ctx, number)
	return args.Bool(0), args.Error(1)
}

func (m *MockDroneRepository) ListByState(ctx context.Context, state drone.State) ([]*drone.Drone, error) {
	args := m.Called(ctx, state)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*drone.Drone), args.Error(1)
}

func (m *MockDroneRepository) ListAll(ctx context.Context) ([]*drone.Drone, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*drone.Drone), args.Error(1)
}

type MockMedicationRepository struct{ mock.Mock }

func (m *MockMedicationRepository) Add(ctx context.Context, med *medication.Medication) error {
	args := m.Called(ctx, med)
	return args.Error(0)
}

func (m *MockMedicationRepository) Exists(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

type MockEventLogRepository struct{ mock.Mock }

func (m *MockEventLogRepository) Append(ctx context.Context, entry *eventlog.EventLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockEventLogRepository) FindAll(ctx context.Context) ([]*eventlog.EventLog, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*eventlog.EventLog), args.Error(1)
}

func (m *MockEventLogRepository) FindByDrone(ctx context.Context, number string) ([]*eventlog.EventLog, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*eventlog.EventLog), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) BeginReadOnly(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) DroneRepository() ports.DroneRepository {
	args := m.Called()
	return args.Get(0).(ports.DroneRepository)
}

func (m *MockUoW) MedicationRepository() ports.MedicationRepository {
	args := m.Called()
	return args.Get(0).(ports.MedicationRepository)
}

func (m *MockUoW) EventLogRepository() ports.EventLogRepository {
	args := m.Called()
	return args.Get(0).(ports.EventLogRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockDroneUoWFactory struct{ mock.Mock }

func (m *MockDroneUoWFactory) Create() commands.DroneUoW {
	args := m.Called()
	return args.Get(0).(commands.DroneUoW)
}

type MockMedicationUoWFactory struct{ mock.Mock }

func (m *MockMedicationUoWFactory) Create() commands.MedicationUoW {
	args := m.Called()
	return args.Get(0).(commands.MedicationUoW)
}
