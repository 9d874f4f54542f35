package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"drones/internal/core/domain/model/medication"
	"drones/internal/core/domain/services"
	"drones/internal/pkg/errs"
)

// LoadDroneCommandHandler performs the IDLE -> LOADING transition.
//
// The checks run in a fixed order and the first failure wins:
//  1. drone.ErrDroneNotFound
//  2. drone.ErrIllegalDroneState
//  3. medication.ErrMedicationNotFound
//
// The drone row stays locked from the first read until commit, so two loads of
// the same drone are serialized and the second one sees LOADING.
type LoadDroneCommandHandler struct {
	uowFactory UoWFactory
	loader     services.Loader
	now        func() time.Time
}

func NewLoadDroneCommandHandler(uowFactory UoWFactory) LoadDroneCommandHandler {
	return LoadDroneCommandHandler{
		uowFactory: uowFactory,
		loader:     services.NewLoader(),
		now:        time.Now,
	}
}

func (h LoadDroneCommandHandler) Handle(ctx context.Context, cmd LoadDroneCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	droneRepo := uow.DroneRepository()
	medicationRepo := uow.MedicationRepository()
	eventLogRepo := uow.EventLogRepository()

	aggregate, err := droneRepo.GetForUpdate(ctx, cmd.DroneNumber())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return droneNotFound(cmd.DroneNumber())
		}
		return err
	}

	if err = aggregate.ValidateLoad(); err != nil {
		return err
	}

	exists, err := medicationRepo.Exists(ctx, cmd.MedicationCode())
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: %s", medication.ErrMedicationNotFound, cmd.MedicationCode())
	}

	entry, err := h.loader.Load(aggregate, cmd.MedicationCode(), h.now().UTC())
	if err != nil {
		return err
	}

	if err = droneRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = eventLogRepo.Append(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
