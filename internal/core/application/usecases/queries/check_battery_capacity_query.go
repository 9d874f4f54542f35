package queries

import (
	"errors"

	"drones/internal/pkg/guard"
)

var ErrCheckBatteryCapacityQueryIsNotConstructed = errors.New(
	"CheckBatteryCapacityQuery must be created via NewCheckBatteryCapacityQuery constructor",
)

// CheckBatteryCapacityQuery reads the battery level of one drone.
//
// Example:
//
//	query, err := NewCheckBatteryCapacityQuery("Drone-3")
//	if err != nil {
//	    return err
//	}
//	capacity, err := handler.Handle(ctx, query) // 55
type CheckBatteryCapacityQuery struct {
	droneNumber string

	guard guard.ConstructorGuard
}

// NewCheckBatteryCapacityQuery trims the number and rejects a blank one with
// errs.ErrValueIsRequired.
func NewCheckBatteryCapacityQuery(droneNumber string) (CheckBatteryCapacityQuery, error) {
	number, err := validDroneNumber(droneNumber)
	if err != nil {
		return CheckBatteryCapacityQuery{}, err
	}
	return CheckBatteryCapacityQuery{droneNumber: number, guard: guard.NewConstructorGuard()}, nil
}

// Validate returns ErrCheckBatteryCapacityQueryIsNotConstructed for a zero value.
func (q CheckBatteryCapacityQuery) Validate() error {
	return q.guard.Validate(ErrCheckBatteryCapacityQueryIsNotConstructed)
}

// DroneNumber is the trimmed drone number.
func (q CheckBatteryCapacityQuery) DroneNumber() string {
	return q.droneNumber
}
