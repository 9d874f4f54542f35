package queries

import (
	"context"
	"errors"

	"drones/internal/core/ports"
	"drones/internal/pkg/errs"
)

// CheckBatteryCapacityQueryHandler looks up a drone's battery capacity.
//
// Example:
//
//	handler := NewCheckBatteryCapacityQueryHandler(uowFactory)
//	query, _ := NewCheckBatteryCapacityQuery("Drone-9")
//
//	_, err := handler.Handle(ctx, query)
//	if errors.Is(err, drone.ErrDroneNotFound) {
//	    // unknown drone
//	}
type CheckBatteryCapacityQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewCheckBatteryCapacityQueryHandler creates the handler over uowFactory.
func NewCheckBatteryCapacityQueryHandler(uowFactory ports.UnitOfWorkFactory) CheckBatteryCapacityQueryHandler {
	return CheckBatteryCapacityQueryHandler{uowFactory: uowFactory}
}

// Handle returns the battery level in percent, 0 to 100.
// A missing drone yields drone.ErrDroneNotFound; other repository errors are
// returned unchanged.
func (h CheckBatteryCapacityQueryHandler) Handle(ctx context.Context, query CheckBatteryCapacityQuery) (int, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	d, err := h.uowFactory.Create().DroneRepository().Get(ctx, query.DroneNumber())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return 0, droneNotFound(query.DroneNumber())
		}
		return 0, err
	}

	return d.BatteryCapacity(), nil
}
