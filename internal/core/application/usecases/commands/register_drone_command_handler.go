package commands

import (
	"context"
	"errors"
	"fmt"

	"drones/internal/core/domain/model/drone"
	"drones/internal/pkg/errs"
)

// RegisteredDrone is the persisted representation returned by registration.
type RegisteredDrone struct {
	Number          string
	ModelType       drone.ModelType
	State           drone.State
	BatteryCapacity int
}

// RegisterDroneCommandHandler creates drones.
// A number already in the fleet fails with drone.ErrDroneAlreadyExists and the
// stored drone is left as it was.
type RegisterDroneCommandHandler struct {
	uowFactory DroneUoWFactory
}

func NewRegisterDroneCommandHandler(uowFactory DroneUoWFactory) RegisterDroneCommandHandler {
	return RegisterDroneCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle checks the number up front and relies on the repository's uniqueness
// check to catch a concurrent registration of the same number.
func (h RegisterDroneCommandHandler) Handle(ctx context.Context, cmd RegisterDroneCommand) (RegisteredDrone, error) {
	if err := cmd.Validate(); err != nil {
		return RegisteredDrone{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return RegisteredDrone{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	droneRepo := uow.DroneRepository()

	exists, err := droneRepo.Exists(ctx, cmd.Number())
	if err != nil {
		return RegisteredDrone{}, err
	}
	if exists {
		return RegisteredDrone{}, droneAlreadyExists(cmd.Number())
	}

	aggregate, err := drone.NewDrone(cmd.Number(), cmd.ModelType())
	if err != nil {
		return RegisteredDrone{}, err
	}

	if err = droneRepo.Add(ctx, aggregate); err != nil {
		if errors.Is(err, errs.ErrObjectAlreadyExists) {
			return RegisteredDrone{}, droneAlreadyExists(cmd.Number())
		}
		return RegisteredDrone{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		if errors.Is(err, errs.ErrObjectAlreadyExists) {
			return RegisteredDrone{}, droneAlreadyExists(cmd.Number())
		}
		return RegisteredDrone{}, err
	}

	return RegisteredDrone{
		Number:          aggregate.Number(),
		ModelType:       aggregate.ModelType(),
		State:           aggregate.State(),
		BatteryCapacity: aggregate.BatteryCapacity(),
	}, nil
}

func droneAlreadyExists(number string) error {
	return fmt.Errorf("%w: %s", drone.ErrDroneAlreadyExists, number)
}

func droneNotFound(number string) error {
	return fmt.Errorf("%w: %s", drone.ErrDroneNotFound, number)
}
