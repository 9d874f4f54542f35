package commands

import (
	"errors"
	"strings"

	"drones/internal/core/domain/model/drone"
	"drones/internal/pkg/errs"
	"drones/internal/pkg/guard"
)

var ErrRegisterDroneCommandIsNotConstructed = errors.New(
	"RegisterDroneCommand must be created via NewRegisterDroneCommand constructor",
)

// RegisterDroneCommand adds a new drone to the fleet.
//
// Example:
//
//	cmd, err := NewRegisterDroneCommand("Drone-4", drone.Cruiserweight)
//	if err != nil {
//	    return fmt.Errorf("invalid drone: %w", err)
//	}
//	registered, err := handler.Handle(ctx, cmd)
type RegisterDroneCommand struct {
	number    string
	modelType drone.ModelType

	guard guard.ConstructorGuard
}

func NewRegisterDroneCommand(number string, modelType drone.ModelType) (RegisterDroneCommand, error) {
	command := RegisterDroneCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setNumber(number),
		command.setModelType(modelType),
	); err != nil {
		return RegisterDroneCommand{}, err
	}

	return command, nil
}

func (c RegisterDroneCommand) Validate() error {
	return c.guard.Validate(ErrRegisterDroneCommandIsNotConstructed)
}

func (c RegisterDroneCommand) Number() string {
	return c.number
}

func (c RegisterDroneCommand) ModelType() drone.ModelType {
	return c.modelType
}

func (c *RegisterDroneCommand) setNumber(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return errs.NewValueIsRequiredError("number")
	}
	c.number = number
	return nil
}

func (c *RegisterDroneCommand) setModelType(modelType drone.ModelType) error {
	if err := modelType.Validate(); err != nil {
		return err
	}
	c.modelType = modelType
	return nil
}
