package queries

import (
	"context"

	"drones/internal/core/domain/services"
	"drones/internal/core/ports"
)

// CheckDroneLoadedItemAmountsQueryHandler joins the fleet with the event log.
// Every registered drone appears exactly once, ascending by number, with 0 when
// nothing was loaded onto it.
//
// Example:
//
//	handler := NewCheckDroneLoadedItemAmountsQueryHandler(uowFactory)
//
//	amounts, err := handler.Handle(ctx, NewCheckDroneLoadedItemAmountsQuery())
//	// [{Drone-1 1} {Drone-2 1} {Drone-3 0}]
type CheckDroneLoadedItemAmountsQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewCheckDroneLoadedItemAmountsQueryHandler creates the handler over uowFactory.
func NewCheckDroneLoadedItemAmountsQueryHandler(
	uowFactory ports.UnitOfWorkFactory,
) CheckDroneLoadedItemAmountsQueryHandler {
	return CheckDroneLoadedItemAmountsQueryHandler{uowFactory: uowFactory}
}

// Handle reads the fleet and the event log inside one read-only unit of work,
// so both come from the same committed snapshot, and replays the log through
// services.LoadLedger.
func (h CheckDroneLoadedItemAmountsQueryHandler) Handle(
	ctx context.Context,
	query CheckDroneLoadedItemAmountsQuery,
) ([]DroneLoadedItemAmount, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.BeginReadOnly(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	drones, err := uow.DroneRepository().ListAll(ctx)
	if err != nil {
		return nil, err
	}

	entries, err := uow.EventLogRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	amounts := services.NewLoadLedger(entries).Amounts(drones)

	result := make([]DroneLoadedItemAmount, 0, len(amounts))
	for _, a := range amounts {
		result = append(result, DroneLoadedItemAmount{Number: a.Number, Amount: a.Amount})
	}

	return result, nil
}
