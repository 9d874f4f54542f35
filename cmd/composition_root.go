package cmd

import (
	"log/slog"

	"drones/internal/core/application/fleet"
	"drones/internal/core/application/usecases/commands"
	"drones/internal/core/application/usecases/queries"
	"drones/internal/core/ports"
)

type CompositionRoot struct {
	config     Config
	uowFactory ports.UnitOfWorkFactory
	logger     *slog.Logger
}

// NewCompositionRoot wires the use cases on top of uowFactory, which is either
// the GORM or the in-memory adapter.
func NewCompositionRoot(config Config, uowFactory ports.UnitOfWorkFactory, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		uowFactory: uowFactory,
		logger:     logger,
	}
}

func (c *CompositionRoot) Config() Config {
	return c.config
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) CreateRegisterDroneCommandHandler() commands.RegisterDroneCommandHandler {
	var f commands.DroneUoWFactory = FuncDroneUoWFactory(func() commands.DroneUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterDroneCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterMedicationCommandHandler() commands.RegisterMedicationCommandHandler {
	var f commands.MedicationUoWFactory = FuncMedicationUoWFactory(func() commands.MedicationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterMedicationCommandHandler(f)
}

func (c *CompositionRoot) CreateLoadDroneCommandHandler() commands.LoadDroneCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewLoadDroneCommandHandler(f)
}

func (c *CompositionRoot) CreateAuditBatteryLevelsCommandHandler() commands.AuditBatteryLevelsCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAuditBatteryLevelsCommandHandler(f)
}

func (c *CompositionRoot) CreateCheckMedicationItemsQueryHandler() queries.CheckMedicationItemsQueryHandler {
	return queries.NewCheckMedicationItemsQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateCheckAvailableDronesQueryHandler() queries.CheckAvailableDronesQueryHandler {
	return queries.NewCheckAvailableDronesQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateCheckBatteryCapacityQueryHandler() queries.CheckBatteryCapacityQueryHandler {
	return queries.NewCheckBatteryCapacityQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateCheckDroneLoadedItemAmountsQueryHandler() queries.CheckDroneLoadedItemAmountsQueryHandler {
	return queries.NewCheckDroneLoadedItemAmountsQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateGetDroneEventsQueryHandler() queries.GetDroneEventsQueryHandler {
	return queries.NewGetDroneEventsQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateFleetService() *fleet.Service {
	return fleet.NewService(fleet.Handlers{
		RegisterDrone:               c.CreateRegisterDroneCommandHandler(),
		LoadDrone:                   c.CreateLoadDroneCommandHandler(),
		RegisterMedication:          c.CreateRegisterMedicationCommandHandler(),
		AuditBatteryLevels:          c.CreateAuditBatteryLevelsCommandHandler(),
		CheckMedicationItems:        c.CreateCheckMedicationItemsQueryHandler(),
		CheckAvailableDrones:        c.CreateCheckAvailableDronesQueryHandler(),
		CheckBatteryCapacity:        c.CreateCheckBatteryCapacityQueryHandler(),
		CheckDroneLoadedItemAmounts: c.CreateCheckDroneLoadedItemAmountsQueryHandler(),
		GetDroneEvents:              c.CreateGetDroneEventsQueryHandler(),
	}, c.logger)
}

type FuncDroneUoWFactory func() commands.DroneUoW

func (f FuncDroneUoWFactory) Create() commands.DroneUoW {
	return f()
}

type FuncMedicationUoWFactory func() commands.MedicationUoW

func (f FuncMedicationUoWFactory) Create() commands.MedicationUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
