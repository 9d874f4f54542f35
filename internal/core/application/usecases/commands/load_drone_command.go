package commands

import (
	"errors"
	"strings"

	"drones/internal/pkg/errs"
	"drones/internal/pkg/guard"
)

var ErrLoadDroneCommandIsNotConstructed = errors.New(
	"LoadDroneCommand must be created via NewLoadDroneCommand constructor",
)

// LoadDroneCommand requests one medication item to be loaded onto a drone.
//
// Example:
//
//	cmd, err := NewLoadDroneCommand("Drone-1", "MED_1")
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type LoadDroneCommand struct {
	droneNumber    string
	medicationCode string

	guard guard.ConstructorGuard
}

func NewLoadDroneCommand(droneNumber, medicationCode string) (LoadDroneCommand, error) {
	command := LoadDroneCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDroneNumber(droneNumber),
		command.setMedicationCode(medicationCode),
	); err != nil {
		return LoadDroneCommand{}, err
	}

	return command, nil
}

func (c LoadDroneCommand) Validate() error {
	return c.guard.Validate(ErrLoadDroneCommandIsNotConstructed)
}

func (c LoadDroneCommand) DroneNumber() string {
	return c.droneNumber
}

func (c LoadDroneCommand) MedicationCode() string {
	return c.medicationCode
}

func (c *LoadDroneCommand) setDroneNumber(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return errs.NewValueIsRequiredError("drone number")
	}
	c.droneNumber = number
	return nil
}

func (c *LoadDroneCommand) setMedicationCode(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return errs.NewValueIsRequiredError("medication code")
	}
	c.medicationCode = code
	return nil
}
