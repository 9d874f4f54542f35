package queries

import (
	"errors"

	"drones/internal/pkg/guard"
)

var ErrCheckMedicationItemsQueryIsNotConstructed = errors.New(
	"CheckMedicationItemsQuery must be created via NewCheckMedicationItemsQuery constructor",
)

// CheckMedicationItemsQuery lists the medication codes loaded onto a drone.
//
// Example:
//
//	query, err := NewCheckMedicationItemsQuery("Drone-1")
//	if err != nil {
//	    return err
//	}
//	items, err := handler.Handle(ctx, query) // [MED_1]
type CheckMedicationItemsQuery struct {
	droneNumber string

	guard guard.ConstructorGuard
}

// NewCheckMedicationItemsQuery trims the number and rejects a blank one with
// errs.ErrValueIsRequired.
func NewCheckMedicationItemsQuery(droneNumber string) (CheckMedicationItemsQuery, error) {
	number, err := validDroneNumber(droneNumber)
	if err != nil {
		return CheckMedicationItemsQuery{}, err
	}
	return CheckMedicationItemsQuery{droneNumber: number, guard: guard.NewConstructorGuard()}, nil
}

// Validate returns ErrCheckMedicationItemsQueryIsNotConstructed for a zero value.
func (q CheckMedicationItemsQuery) Validate() error {
	return q.guard.Validate(ErrCheckMedicationItemsQueryIsNotConstructed)
}

// DroneNumber is the trimmed drone number.
func (q CheckMedicationItemsQuery) DroneNumber() string {
	return q.droneNumber
}
