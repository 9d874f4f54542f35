package commands

import (
	"errors"

	"drones/internal/pkg/guard"
)

var ErrRegisterMedicationCommandIsNotConstructed = errors.New(
	"RegisterMedicationCommand must be created via NewRegisterMedicationCommand constructor",
)

// RegisterMedicationCommand adds an item to the medication catalog.
// Field rules are enforced by medication.NewMedication inside the handler.
type RegisterMedicationCommand struct {
	code   string
	name   string
	weight int

	guard guard.ConstructorGuard
}

func NewRegisterMedicationCommand(code, name string, weight int) RegisterMedicationCommand {
	return RegisterMedicationCommand{
		code:   code,
		name:   name,
		weight: weight,
		guard:  guard.NewConstructorGuard(),
	}
}

func (c RegisterMedicationCommand) Validate() error {
	return c.guard.Validate(ErrRegisterMedicationCommandIsNotConstructed)
}

func (c RegisterMedicationCommand) Code() string {
	return c.code
}

func (c RegisterMedicationCommand) Name() string {
	return c.name
}

func (c RegisterMedicationCommand) Weight() int {
	return c.weight
}
