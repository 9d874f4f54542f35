package drone

import (
	"errors"
	"strings"

	"drones/internal/pkg/errs"
)

const (
	// DefaultBatteryCapacity is the battery level of a freshly registered drone.
	DefaultBatteryCapacity = 100
	// MaxNumberLength bounds the length of a drone number.
	MaxNumberLength = 100
)

var ErrDroneIsNotConstructed = errors.New("Drone must be created via NewDrone or RestoreDrone constructor")

// Drone is the aggregate root of the fleet. Its state is the only field
// changed after registration, and only through Load.
type Drone struct {
	number          string
	modelType       ModelType
	state           State
	batteryCapacity int

	isConstructed bool
}

// NewDrone registers a drone: IDLE, with DefaultBatteryCapacity.
func NewDrone(number string, modelType ModelType) (*Drone, error) {
	d := &Drone{
		state:           Idle,
		batteryCapacity: DefaultBatteryCapacity,
		isConstructed:   true,
	}

	if err := errors.Join(
		d.setNumber(number),
		d.setModelType(modelType),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDrone rebuilds a drone from persisted values.
func RestoreDrone(number string, modelType ModelType, state State, batteryCapacity int) (*Drone, error) {
	d := &Drone{isConstructed: true}

	if err := errors.Join(
		d.setNumber(number),
		d.setModelType(modelType),
		d.setState(state),
		d.setBatteryCapacity(batteryCapacity),
	); err != nil {
		return nil, err
	}

	return d, nil
}

func (d *Drone) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDroneIsNotConstructed
	}
	return nil
}

func (d *Drone) Number() string {
	return d.number
}

func (d *Drone) ModelType() ModelType {
	return d.modelType
}

func (d *Drone) State() State {
	return d.state
}

func (d *Drone) BatteryCapacity() int {
	return d.batteryCapacity
}

func (d *Drone) IsAvailable() bool {
	return d.state.IsAvailable()
}

// ValidateLoad reports whether Load would succeed, leaving the drone untouched.
func (d *Drone) ValidateLoad() error {
	return d.state.ValidateLoad()
}

// Load moves the drone from IDLE to LOADING. On error the drone is unchanged.
func (d *Drone) Load() error {
	newState, err := d.state.Load()
	if err != nil {
		return err
	}

	d.state = newState
	return nil
}

func (d *Drone) setNumber(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return errs.NewValueIsRequiredError("number")
	}
	if len(number) > MaxNumberLength {
		return errs.NewValueIsOutOfRangeError("number length", len(number), 1, MaxNumberLength)
	}
	d.number = number
	return nil
}

func (d *Drone) setModelType(modelType ModelType) error {
	if err := modelType.Validate(); err != nil {
		return err
	}
	d.modelType = modelType
	return nil
}

func (d *Drone) setState(state State) error {
	if err := state.Validate(); err != nil {
		return err
	}
	d.state = state
	return nil
}

func (d *Drone) setBatteryCapacity(capacity int) error {
	if capacity < 0 || capacity > 100 {
		return errs.NewValueIsOutOfRangeError("battery capacity", capacity, 0, 100)
	}
	d.batteryCapacity = capacity
	return nil
}
