// Package commands contains the fleet operations that modify state.
// Every handler follows the same pattern: validate the command, open a unit of
// work, check preconditions, mutate, commit. Any failure rolls the unit of work
// back, so a rejected command leaves no trace.
package commands

import (
	"context"

	"drones/internal/core/ports"
)

// Unit of Work interfaces scoped to what each handler touches.
type (
	// TxManager handles the transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	DroneRepoFactory interface {
		DroneRepository() ports.DroneRepository
	}

	MedicationRepoFactory interface {
		MedicationRepository() ports.MedicationRepository
	}

	EventLogRepoFactory interface {
		EventLogRepository() ports.EventLogRepository
	}

	// DroneUoW is used by commands that only touch drones.
	DroneUoW interface {
		TxManager
		DroneRepoFactory
	}

	DroneUoWFactory interface {
		Create() DroneUoW
	}

	// MedicationUoW is used by commands that only touch the catalog.
	MedicationUoW interface {
		TxManager
		MedicationRepoFactory
	}

	MedicationUoWFactory interface {
		Create() MedicationUoW
	}

	// UoW spans drones, medications and the event log. Loading a drone needs
	// all three in one transaction.
	//
	// Example:
	//   uow := factory.Create()
	//   if err := uow.Begin(ctx); err != nil {
	//       return err
	//   }
	//   defer func() { _ = uow.Rollback(ctx) }()
	//
	//   d, err := uow.DroneRepository().GetForUpdate(ctx, number)
	//   ...
	//   return uow.Commit(ctx)
	UoW interface {
		TxManager
		DroneRepoFactory
		MedicationRepoFactory
		EventLogRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
