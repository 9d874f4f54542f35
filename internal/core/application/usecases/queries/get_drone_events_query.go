package queries

import (
	"errors"
	"time"

	"drones/internal/core/domain/model/drone"
	"drones/internal/core/domain/model/kernel"
	"drones/internal/pkg/guard"
)

var ErrGetDroneEventsQueryIsNotConstructed = errors.New(
	"GetDroneEventsQuery must be created via NewGetDroneEventsQuery constructor",
)

// GetDroneEventsQuery returns the audit trail of one drone: its load entries
// and battery audit entries, in the order they were appended.
//
// Example:
//
//	query, err := NewGetDroneEventsQuery("Drone-1")
//	if err != nil {
//	    return err
//	}
//	events, err := handler.Handle(ctx, query)
//	for _, e := range events {
//	    fmt.Println(e.Timestamp, e.State, e.BatteryCapacity)
//	}
type GetDroneEventsQuery struct {
	droneNumber string

	guard guard.ConstructorGuard
}

// NewGetDroneEventsQuery trims the number and rejects a blank one with
// errs.ErrValueIsRequired.
func NewGetDroneEventsQuery(droneNumber string) (GetDroneEventsQuery, error) {
	number, err := validDroneNumber(droneNumber)
	if err != nil {
		return GetDroneEventsQuery{}, err
	}
	return GetDroneEventsQuery{droneNumber: number, guard: guard.NewConstructorGuard()}, nil
}

// Validate returns ErrGetDroneEventsQueryIsNotConstructed for a zero value.
func (q GetDroneEventsQuery) Validate() error {
	return q.guard.Validate(ErrGetDroneEventsQueryIsNotConstructed)
}

// DroneNumber is the trimmed drone number.
func (q GetDroneEventsQuery) DroneNumber() string {
	return q.droneNumber
}

// DroneEvent is the read model of an event log entry.
// MedicationCode is nil for battery audit entries.
type DroneEvent struct {
	ID              kernel.UUID
	DroneNumber     string
	State           drone.State
	MedicationCode  *string
	BatteryCapacity int
	Timestamp       time.Time
}
