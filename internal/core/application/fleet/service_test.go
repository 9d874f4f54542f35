package fleet_test

import (
	"io"
	"log/slog"
	"sync"
	"testing"

	"drones/cmd"
	"drones/internal/adapters/out/memory"
	"drones/internal/core/application/fleet"
	"drones/internal/core/application/usecases/queries"
	"drones/internal/core/domain/model/drone"
	"drones/internal/core/domain/model/medication"
	"drones/internal/seed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type FleetServiceTestSuite struct {
	suite.Suite
	factory *memory.UnitOfWorkFactory
	service *fleet.Service
	logger  *slog.Logger
}

func (s *FleetServiceTestSuite) SetupTest() {
	s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	s.factory = memory.NewUnitOfWorkFactory(memory.NewStore())

	root := cmd.NewCompositionRoot(cmd.Config{Storage: cmd.StorageMemory}, s.factory, s.logger)
	s.service = root.CreateFleetService()

	s.Require().NoError(seed.Apply(s.T().Context(), s.factory, seed.Default(), s.logger))
}

func (s *FleetServiceTestSuite) seedAllIdle() {
	data := seed.Default()
	for i := range data.Drones {
		data.Drones[i].State = drone.Idle
	}

	s.factory = memory.NewUnitOfWorkFactory(memory.NewStore())
	root := cmd.NewCompositionRoot(cmd.Config{Storage: cmd.StorageMemory}, s.factory, s.logger)
	s.service = root.CreateFleetService()
	s.Require().NoError(seed.Apply(s.T().Context(), s.factory, data, s.logger))
}

func (s *FleetServiceTestSuite) TestRegisterDrone_DuplicateNumberFails() {
	ctx := s.T().Context()

	registered, err := s.service.RegisterDrone(ctx, "Drone-4", drone.Cruiserweight)
	s.Require().NoError(err)
	s.Equal(drone.Idle, registered.State)
	s.Equal(100, registered.BatteryCapacity)

	_, err = s.service.RegisterDrone(ctx, "Drone-4", drone.Lightweight)
	s.Require().ErrorIs(err, drone.ErrDroneAlreadyExists)

	stored, err := s.factory.Create().DroneRepository().Get(ctx, "Drone-4")
	s.Require().NoError(err)
	s.Equal(drone.Cruiserweight, stored.ModelType())
}

func (s *FleetServiceTestSuite) TestRegisterDrone_SeededNumberFails() {
	_, err := s.service.RegisterDrone(s.T().Context(), "Drone-2", drone.Lightweight)

	s.Require().ErrorIs(err, drone.ErrDroneAlreadyExists)
}

func (s *FleetServiceTestSuite) TestLoadDrone_IdleDrone() {
	ctx := s.T().Context()

	s.Require().NoError(s.service.LoadDrone(ctx, "Drone-1", "MED_1"))

	items, err := s.service.CheckMedicationItems(ctx, "Drone-1")
	s.Require().NoError(err)
	s.Equal([]string{"MED_1"}, items)

	events, err := s.service.GetDroneEvents(ctx, "Drone-1")
	s.Require().NoError(err)
	s.Require().Len(events, 1)
	s.Equal(drone.Loading, events[0].State)
	s.Require().NotNil(events[0].MedicationCode)
	s.Equal("MED_1", *events[0].MedicationCode)

	available, err := s.service.CheckAvailableDrones(ctx)
	s.Require().NoError(err)
	s.NotContains(available, "Drone-1")
}

func (s *FleetServiceTestSuite) TestLoadDrone_BusyDroneFails() {
	ctx := s.T().Context()

	err := s.service.LoadDrone(ctx, "Drone-3", "MED_1")
	s.Require().ErrorIs(err, drone.ErrIllegalDroneState)

	items, err := s.service.CheckMedicationItems(ctx, "Drone-3")
	s.Require().NoError(err)
	s.Empty(items)

	events, err := s.service.GetDroneEvents(ctx, "Drone-3")
	s.Require().NoError(err)
	s.Empty(events)
}

func (s *FleetServiceTestSuite) TestLoadDrone_UnknownDroneFails() {
	err := s.service.LoadDrone(s.T().Context(), "Drone-9", "MED_1")

	s.Require().ErrorIs(err, drone.ErrDroneNotFound)
}

func (s *FleetServiceTestSuite) TestLoadDrone_UnknownMedicationLeavesDroneIdle() {
	ctx := s.T().Context()

	err := s.service.LoadDrone(ctx, "Drone-1", "MED_404")
	s.Require().ErrorIs(err, medication.ErrMedicationNotFound)

	available, err := s.service.CheckAvailableDrones(ctx)
	s.Require().NoError(err)
	s.Equal([]string{"Drone-1"}, available)

	events, err := s.service.GetDroneEvents(ctx, "Drone-1")
	s.Require().NoError(err)
	s.Empty(events)
}

func (s *FleetServiceTestSuite) TestLoadDrone_SecondLoadFails() {
	ctx := s.T().Context()

	s.Require().NoError(s.service.LoadDrone(ctx, "Drone-1", "MED_1"))
	s.Require().ErrorIs(s.service.LoadDrone(ctx, "Drone-1", "MED_2"), drone.ErrIllegalDroneState)

	items, err := s.service.CheckMedicationItems(ctx, "Drone-1")
	s.Require().NoError(err)
	s.Equal([]string{"MED_1"}, items)
}

func (s *FleetServiceTestSuite) TestCheckDroneLoadedItemAmounts_IncludesZeros() {
	s.seedAllIdle()
	ctx := s.T().Context()

	s.Require().NoError(s.service.LoadDrone(ctx, "Drone-1", "MED_1"))
	s.Require().NoError(s.service.LoadDrone(ctx, "Drone-2", "MED_2"))

	amounts, err := s.service.CheckDroneLoadedItemAmounts(ctx)
	s.Require().NoError(err)
	s.Equal([]queries.DroneLoadedItemAmount{
		{Number: "Drone-1", Amount: 1},
		{Number: "Drone-2", Amount: 1},
		{Number: "Drone-3", Amount: 0},
	}, amounts)

	available, err := s.service.CheckAvailableDrones(ctx)
	s.Require().NoError(err)
	s.Equal([]string{"Drone-3"}, available)
}

func (s *FleetServiceTestSuite) TestCheckBatteryCapacity() {
	ctx := s.T().Context()

	capacity, err := s.service.CheckBatteryCapacity(ctx, "Drone-3")
	s.Require().NoError(err)
	s.Equal(55, capacity)

	_, err = s.service.CheckBatteryCapacity(ctx, "Drone-9")
	s.Require().ErrorIs(err, drone.ErrDroneNotFound)
}

func (s *FleetServiceTestSuite) TestCheckMedicationItems_UnknownDrone() {
	_, err := s.service.CheckMedicationItems(s.T().Context(), "Drone-9")

	s.Require().ErrorIs(err, drone.ErrDroneNotFound)
}

func (s *FleetServiceTestSuite) TestAuditBatteryLevels_DoesNotCountAsLoads() {
	ctx := s.T().Context()

	s.Require().NoError(s.service.LoadDrone(ctx, "Drone-1", "MED_1"))

	audited, err := s.service.AuditBatteryLevels(ctx)
	s.Require().NoError(err)
	s.Equal(3, audited)

	events, err := s.service.GetDroneEvents(ctx, "Drone-1")
	s.Require().NoError(err)
	s.Require().Len(events, 2)
	s.Nil(events[1].MedicationCode)

	amounts, err := s.service.CheckDroneLoadedItemAmounts(ctx)
	s.Require().NoError(err)
	s.Equal(int64(1), amounts[0].Amount)
	s.Equal(int64(0), amounts[1].Amount)
}

func (s *FleetServiceTestSuite) TestRegisterMedication() {
	ctx := s.T().Context()

	s.Require().NoError(s.service.RegisterMedication(ctx, "MED_3", "Insulin", 10))
	s.Require().ErrorIs(s.service.RegisterMedication(ctx, "MED_3", "Insulin", 10), medication.ErrMedicationAlreadyExists)

	s.Require().NoError(s.service.LoadDrone(ctx, "Drone-1", "MED_3"))
}

func TestFleetServiceSuite(t *testing.T) {
	suite.Run(t, new(FleetServiceTestSuite))
}

func TestLoadDrone_ConcurrentLoadsOfOneDrone(t *testing.T) {
	ctx := t.Context()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	factory := memory.NewUnitOfWorkFactory(memory.NewStore())
	root := cmd.NewCompositionRoot(cmd.Config{Storage: cmd.StorageMemory}, factory, logger)
	service := root.CreateFleetService()
	require.NoError(t, seed.Apply(ctx, factory, seed.Default(), logger))

	const attempts = 16
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		ok      int
		illegal int
	)

	for range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := service.LoadDrone(ctx, "Drone-1", "MED_1")

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				ok++
			case assert.ErrorIs(t, err, drone.ErrIllegalDroneState):
				illegal++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, ok)
	assert.Equal(t, attempts-1, illegal)

	events, err := service.GetDroneEvents(ctx, "Drone-1")
	require.NoError(t, err)
	assert.Len(t, events, 1)
}
