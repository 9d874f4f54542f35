// Package eventlog provides the append-only audit entry written for every
// load and battery audit of a drone.
//
// Entries that carry a medication code record a load; entries without one are
// state-only records (battery audits). The set of loaded items of a drone is
// derived by replaying its entries, never stored on the drone itself.
package eventlog

import (
	"errors"
	"strings"
	"time"

	"drones/internal/core/domain/model/drone"
	"drones/internal/core/domain/model/kernel"
	"drones/internal/pkg/errs"
)

var ErrEventLogIsNotConstructed = errors.New("EventLog must be created via its constructors")

// EventLog is an immutable audit entry.
type EventLog struct {
	id              kernel.UUID
	droneNumber     string
	state           drone.State
	medicationCode  *string
	batteryCapacity int
	timestamp       time.Time

	isConstructed bool
}

// NewLoadingEntry records that medicationCode was loaded onto d.
// d must already be in its post-load state.
func NewLoadingEntry(d *drone.Drone, medicationCode string, at time.Time) (*EventLog, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	code := strings.TrimSpace(medicationCode)
	if code == "" {
		return nil, errs.NewValueIsRequiredError("medication code")
	}
	return RestoreEventLog(kernel.NewUUID(), d.Number(), d.State(), &code, d.BatteryCapacity(), at)
}

// NewAuditEntry records the current state and battery level of d without a medication.
func NewAuditEntry(d *drone.Drone, at time.Time) (*EventLog, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return RestoreEventLog(kernel.NewUUID(), d.Number(), d.State(), nil, d.BatteryCapacity(), at)
}

// RestoreEventLog rebuilds an entry from persisted values.
func RestoreEventLog(
	id kernel.UUID,
	droneNumber string,
	state drone.State,
	medicationCode *string,
	batteryCapacity int,
	timestamp time.Time,
) (*EventLog, error) {
	var validationErrs []error
	validationErrs = append(validationErrs, id.Validate(), state.Validate())
	if strings.TrimSpace(droneNumber) == "" {
		validationErrs = append(validationErrs, errs.NewValueIsRequiredError("drone number"))
	}
	if batteryCapacity < 0 || batteryCapacity > 100 {
		validationErrs = append(validationErrs, errs.NewValueIsOutOfRangeError("battery capacity", batteryCapacity, 0, 100))
	}
	if timestamp.IsZero() {
		validationErrs = append(validationErrs, errs.NewValueIsRequiredError("timestamp"))
	}
	if err := errors.Join(validationErrs...); err != nil {
		return nil, err
	}

	var code *string
	if medicationCode != nil {
		c := *medicationCode
		code = &c
	}

	return &EventLog{
		id:              id,
		droneNumber:     droneNumber,
		state:           state,
		medicationCode:  code,
		batteryCapacity: batteryCapacity,
		timestamp:       timestamp.UTC(),
		isConstructed:   true,
	}, nil
}

func (e *EventLog) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEventLogIsNotConstructed
	}
	return nil
}

func (e *EventLog) ID() kernel.UUID {
	return e.id
}

func (e *EventLog) DroneNumber() string {
	return e.droneNumber
}

func (e *EventLog) State() drone.State {
	return e.state
}

// MedicationCode returns the loaded medication, or false for state-only entries.
func (e *EventLog) MedicationCode() (string, bool) {
	if e.medicationCode == nil {
		return "", false
	}
	return *e.medicationCode, true
}

func (e *EventLog) HasMedication() bool {
	return e.medicationCode != nil
}

func (e *EventLog) BatteryCapacity() int {
	return e.batteryCapacity
}

func (e *EventLog) Timestamp() time.Time {
	return e.timestamp
}
