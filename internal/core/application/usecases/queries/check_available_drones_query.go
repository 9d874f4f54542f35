package queries

import (
	"errors"

	"drones/internal/pkg/guard"
)

var ErrCheckAvailableDronesQueryIsNotConstructed = errors.New(
	"CheckAvailableDronesQuery must be created via NewCheckAvailableDronesQuery constructor",
)

// CheckAvailableDronesQuery lists the drones that can accept a load.
// A drone is available while it is IDLE.
//
// Example:
//
//	query := NewCheckAvailableDronesQuery()
//	numbers, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list available drones: %w", err)
//	}
type CheckAvailableDronesQuery struct {
	guard guard.ConstructorGuard
}

// NewCheckAvailableDronesQuery creates the parameterless availability query.
func NewCheckAvailableDronesQuery() CheckAvailableDronesQuery {
	return CheckAvailableDronesQuery{guard: guard.NewConstructorGuard()}
}

// Validate returns ErrCheckAvailableDronesQueryIsNotConstructed for a zero value.
func (q CheckAvailableDronesQuery) Validate() error {
	return q.guard.Validate(ErrCheckAvailableDronesQueryIsNotConstructed)
}
