// Package seed bootstraps a fleet and a medication catalog for local runs and
// scenario tests.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"drones/internal/core/domain/model/drone"
	"drones/internal/core/domain/model/medication"
	"drones/internal/core/ports"
)

type Drone struct {
	Number          string
	ModelType       drone.ModelType
	State           drone.State
	BatteryCapacity int
}

type Medication struct {
	Code   string
	Name   string
	Weight int
}

type Data struct {
	Drones      []Drone
	Medications []Medication
}

// Default is the bootstrap data set: one IDLE drone, two busy ones and two
// catalog items.
func Default() Data {
	return Data{
		Drones: []Drone{
			{Number: "Drone-1", ModelType: drone.Lightweight, State: drone.Idle, BatteryCapacity: 100},
			{Number: "Drone-2", ModelType: drone.Middleweight, State: drone.Loaded, BatteryCapacity: 80},
			{Number: "Drone-3", ModelType: drone.Heavyweight, State: drone.Delivering, BatteryCapacity: 55},
		},
		Medications: []Medication{
			{Code: "MED_1", Name: "Paracetamol", Weight: 50},
			{Code: "MED_2", Name: "Ibuprofen-400", Weight: 120},
		},
	}
}

// Apply writes data in one transaction. Records that already exist are kept
// as they are, so Apply can be run repeatedly.
func Apply(ctx context.Context, uowFactory ports.UnitOfWorkFactory, data Data, logger *slog.Logger) error {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	droneRepo := uow.DroneRepository()
	medicationRepo := uow.MedicationRepository()

	added := 0
	for _, d := range data.Drones {
		aggregate, err := drone.RestoreDrone(d.Number, d.ModelType, d.State, d.BatteryCapacity)
		if err != nil {
			return fmt.Errorf("seed drone %s: %w", d.Number, err)
		}

		exists, err := droneRepo.Exists(ctx, aggregate.Number())
		if err != nil {
			return err
		}
		if exists {
			continue
		}

		if err = droneRepo.Add(ctx, aggregate); err != nil {
			return fmt.Errorf("seed drone %s: %w", d.Number, err)
		}
		added++
	}

	for _, m := range data.Medications {
		aggregate, err := medication.NewMedication(m.Code, m.Name, m.Weight)
		if err != nil {
			return fmt.Errorf("seed medication %s: %w", m.Code, err)
		}

		exists, err := medicationRepo.Exists(ctx, aggregate.Code())
		if err != nil {
			return err
		}
		if exists {
			continue
		}

		if err = medicationRepo.Add(ctx, aggregate); err != nil {
			return fmt.Errorf("seed medication %s: %w", m.Code, err)
		}
		added++
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	logger.InfoContext(ctx, "Seed data applied", "records_added", added)
	return nil
}
