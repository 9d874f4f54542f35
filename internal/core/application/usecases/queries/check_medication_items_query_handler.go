package queries

import (
	"context"

	"drones/internal/core/domain/services"
	"drones/internal/core/ports"
)

// CheckMedicationItemsQueryHandler replays the drone's event log.
// The result is in log order and is an empty slice for a drone that was never
// loaded. Unknown drones fail with drone.ErrDroneNotFound.
type CheckMedicationItemsQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewCheckMedicationItemsQueryHandler creates the handler over uowFactory.
func NewCheckMedicationItemsQueryHandler(uowFactory ports.UnitOfWorkFactory) CheckMedicationItemsQueryHandler {
	return CheckMedicationItemsQueryHandler{uowFactory: uowFactory}
}

// Handle checks that the drone exists, then returns the codes of its load
// entries. Battery audit entries carry no code and are skipped.
func (h CheckMedicationItemsQueryHandler) Handle(ctx context.Context, query CheckMedicationItemsQuery) ([]string, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()

	exists, err := uow.DroneRepository().Exists(ctx, query.DroneNumber())
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, droneNotFound(query.DroneNumber())
	}

	entries, err := uow.EventLogRepository().FindByDrone(ctx, query.DroneNumber())
	if err != nil {
		return nil, err
	}

	return services.NewLoadLedger(entries).ItemsOf(query.DroneNumber()), nil
}
