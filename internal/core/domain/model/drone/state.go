package drone

import (
	"fmt"
	"strings"

	"drones/internal/pkg/errs"
)

// State is the operational state of a drone.
//
// State transitions:
//
//	IDLE ──Load──> LOADING
//
// LOADED, DELIVERING, DELIVERED and RETURNING complete the fleet lifecycle and
// can be stored and reported, but no transition leads into or out of them yet.
type State int

const (
	// UnknownState catches uninitialized State values.
	UnknownState State = iota
	Idle
	Loading
	Loaded
	Delivering
	Delivered
	Returning
)

func getStateStrings() map[State]string {
	return map[State]string{
		UnknownState: "UNKNOWN",
		Idle:         "IDLE",
		Loading:      "LOADING",
		Loaded:       "LOADED",
		Delivering:   "DELIVERING",
		Delivered:    "DELIVERED",
		Returning:    "RETURNING",
	}
}

// ParseState converts a state name (case-insensitive) into a State.
func ParseState(s string) (State, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for state, str := range getStateStrings() {
		if state != UnknownState && str == name {
			return state, nil
		}
	}
	return UnknownState, errs.NewValueIsInvalidErrorWithCause("state", fmt.Errorf("%q is not a valid state", s))
}

// Validate reports whether s is one of the lifecycle states.
func (s State) Validate() error {
	if s <= UnknownState || s > Returning {
		return errs.NewValueIsInvalidErrorWithCause("state", fmt.Errorf("%d is not a valid state", s))
	}
	return nil
}

func (s State) String() string {
	if str, ok := getStateStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsAvailable reports whether a drone in this state can take a new load.
func (s State) IsAvailable() bool {
	return s == Idle
}

// ValidateLoad checks that a drone in s can be loaded, without transitioning.
// Only IDLE can be loaded; every other state yields ErrIllegalDroneState.
func (s State) ValidateLoad() error {
	if s != Idle {
		return fmt.Errorf("%w: %s is not a valid state to load", ErrIllegalDroneState, s)
	}
	return nil
}

// Load returns the state reached by loading a drone currently in s.
func (s State) Load() (State, error) {
	if err := s.ValidateLoad(); err != nil {
		return UnknownState, err
	}
	return Loading, nil
}
