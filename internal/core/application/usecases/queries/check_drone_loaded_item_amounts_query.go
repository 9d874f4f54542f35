package queries

import (
	"errors"

	"drones/internal/pkg/guard"
)

var ErrCheckDroneLoadedItemAmountsQueryIsNotConstructed = errors.New(
	"CheckDroneLoadedItemAmountsQuery must be created via NewCheckDroneLoadedItemAmountsQuery constructor",
)

// CheckDroneLoadedItemAmountsQuery counts loaded items for the whole fleet.
//
// Example:
//
//	amounts, err := handler.Handle(ctx, NewCheckDroneLoadedItemAmountsQuery())
//	if err != nil {
//	    return err
//	}
//	for _, a := range amounts {
//	    fmt.Printf("%s: %d\n", a.Number, a.Amount)
//	}
type CheckDroneLoadedItemAmountsQuery struct {
	guard guard.ConstructorGuard
}

// NewCheckDroneLoadedItemAmountsQuery creates the parameterless fleet report query.
func NewCheckDroneLoadedItemAmountsQuery() CheckDroneLoadedItemAmountsQuery {
	return CheckDroneLoadedItemAmountsQuery{guard: guard.NewConstructorGuard()}
}

// Validate returns ErrCheckDroneLoadedItemAmountsQueryIsNotConstructed for a zero value.
func (q CheckDroneLoadedItemAmountsQuery) Validate() error {
	return q.guard.Validate(ErrCheckDroneLoadedItemAmountsQueryIsNotConstructed)
}

// DroneLoadedItemAmount is one row of the fleet report. Amount is 0 for a
// drone that never received a load.
type DroneLoadedItemAmount struct {
	Number string
	Amount int64
}
