// Package drone provides the Drone aggregate of the fleet: its identity, model,
// battery level and operational state.
//
// The package includes:
//   - Drone: the aggregate root guarding state transitions
//   - State: the lifecycle state machine (only IDLE -> LOADING is a transition here)
//   - ModelType: the fixed enumeration of drone models
//
// Key business rules:
//   - A drone number is non-empty, at most 100 characters and never changes
//   - A newly registered drone is IDLE with a full battery
//   - Only an IDLE drone can be loaded; loading moves it to LOADING
package drone
