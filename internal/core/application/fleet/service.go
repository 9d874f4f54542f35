// Package fleet exposes the Drone Fleet Service: the single entry point the
// transports call. It builds commands and queries from plain arguments, runs
// them through their handlers and logs the outcome.
package fleet

import (
	"context"
	"log/slog"

	"drones/internal/core/application/usecases/commands"
	"drones/internal/core/application/usecases/queries"
	"drones/internal/core/domain/model/drone"
)

// Handlers groups the use case handlers the service delegates to.
type Handlers struct {
	RegisterDrone               commands.RegisterDroneCommandHandler
	LoadDrone                   commands.LoadDroneCommandHandler
	RegisterMedication          commands.RegisterMedicationCommandHandler
	AuditBatteryLevels          commands.AuditBatteryLevelsCommandHandler
	CheckMedicationItems        queries.CheckMedicationItemsQueryHandler
	CheckAvailableDrones        queries.CheckAvailableDronesQueryHandler
	CheckBatteryCapacity        queries.CheckBatteryCapacityQueryHandler
	CheckDroneLoadedItemAmounts queries.CheckDroneLoadedItemAmountsQueryHandler
	GetDroneEvents              queries.GetDroneEventsQueryHandler
}

type Service struct {
	handlers Handlers
	logger   *slog.Logger
}

func NewService(handlers Handlers, logger *slog.Logger) *Service {
	return &Service{
		handlers: handlers,
		logger:   logger.With("component", "fleet_service"),
	}
}

// RegisterDrone adds an IDLE drone with a full battery.
// Fails with drone.ErrDroneAlreadyExists when the number is taken.
func (s *Service) RegisterDrone(
	ctx context.Context,
	number string,
	modelType drone.ModelType,
) (commands.RegisteredDrone, error) {
	cmd, err := commands.NewRegisterDroneCommand(number, modelType)
	if err != nil {
		return commands.RegisteredDrone{}, err
	}

	registered, err := s.handlers.RegisterDrone.Handle(ctx, cmd)
	if err != nil {
		s.logger.WarnContext(ctx, "Drone registration rejected", "number", cmd.Number(), "error", err)
		return commands.RegisteredDrone{}, err
	}

	s.logger.InfoContext(ctx, "Drone registered",
		"number", registered.Number,
		"model", registered.ModelType.String(),
	)
	return registered, nil
}

// LoadDrone loads one medication item onto an IDLE drone and moves it to
// LOADING. See commands.LoadDroneCommandHandler for the failure order.
func (s *Service) LoadDrone(ctx context.Context, droneNumber, medicationCode string) error {
	cmd, err := commands.NewLoadDroneCommand(droneNumber, medicationCode)
	if err != nil {
		return err
	}

	if err = s.handlers.LoadDrone.Handle(ctx, cmd); err != nil {
		s.logger.WarnContext(ctx, "Drone load rejected",
			"number", cmd.DroneNumber(),
			"medication", cmd.MedicationCode(),
			"error", err,
		)
		return err
	}

	s.logger.InfoContext(ctx, "Drone loaded",
		"number", cmd.DroneNumber(),
		"medication", cmd.MedicationCode(),
		"state", drone.Loading.String(),
	)
	return nil
}

func (s *Service) RegisterMedication(ctx context.Context, code, name string, weight int) error {
	cmd := commands.NewRegisterMedicationCommand(code, name, weight)

	if err := s.handlers.RegisterMedication.Handle(ctx, cmd); err != nil {
		s.logger.WarnContext(ctx, "Medication registration rejected", "code", code, "error", err)
		return err
	}

	s.logger.InfoContext(ctx, "Medication registered", "code", code)
	return nil
}

// AuditBatteryLevels appends a battery audit entry for every drone and
// returns how many drones were audited.
func (s *Service) AuditBatteryLevels(ctx context.Context) (int, error) {
	audited, err := s.handlers.AuditBatteryLevels.Handle(ctx, commands.NewAuditBatteryLevelsCommand())
	if err != nil {
		s.logger.WarnContext(ctx, "Battery audit failed", "error", err)
		return 0, err
	}

	s.logger.DebugContext(ctx, "Battery audit recorded", "drones", audited)
	return audited, nil
}

func (s *Service) CheckMedicationItems(ctx context.Context, droneNumber string) ([]string, error) {
	query, err := queries.NewCheckMedicationItemsQuery(droneNumber)
	if err != nil {
		return nil, err
	}
	return s.handlers.CheckMedicationItems.Handle(ctx, query)
}

func (s *Service) CheckAvailableDrones(ctx context.Context) ([]string, error) {
	return s.handlers.CheckAvailableDrones.Handle(ctx, queries.NewCheckAvailableDronesQuery())
}

func (s *Service) CheckBatteryCapacity(ctx context.Context, droneNumber string) (int, error) {
	query, err := queries.NewCheckBatteryCapacityQuery(droneNumber)
	if err != nil {
		return 0, err
	}
	return s.handlers.CheckBatteryCapacity.Handle(ctx, query)
}

func (s *Service) CheckDroneLoadedItemAmounts(ctx context.Context) ([]queries.DroneLoadedItemAmount, error) {
	return s.handlers.CheckDroneLoadedItemAmounts.Handle(ctx, queries.NewCheckDroneLoadedItemAmountsQuery())
}

func (s *Service) GetDroneEvents(ctx context.Context, droneNumber string) ([]queries.DroneEvent, error) {
	query, err := queries.NewGetDroneEventsQuery(droneNumber)
	if err != nil {
		return nil, err
	}
	return s.handlers.GetDroneEvents.Handle(ctx, query)
}
