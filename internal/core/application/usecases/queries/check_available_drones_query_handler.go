package queries

import (
	"context"

	"drones/internal/core/domain/model/drone"
	"drones/internal/core/ports"
)

// CheckAvailableDronesQueryHandler returns the numbers of IDLE drones,
// ascending. An empty fleet yields an empty slice.
//
// Example:
//
//	handler := NewCheckAvailableDronesQueryHandler(uowFactory)
//
//	numbers, err := handler.Handle(ctx, NewCheckAvailableDronesQuery())
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d drones ready for loading\n", len(numbers))
type CheckAvailableDronesQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewCheckAvailableDronesQueryHandler creates the handler. Reads go through
// repositories of a unit of work that is never begun.
func NewCheckAvailableDronesQueryHandler(uowFactory ports.UnitOfWorkFactory) CheckAvailableDronesQueryHandler {
	return CheckAvailableDronesQueryHandler{uowFactory: uowFactory}
}

// Handle lists IDLE drones through DroneRepository.ListByState, which returns
// them ordered by number.
func (h CheckAvailableDronesQueryHandler) Handle(ctx context.Context, query CheckAvailableDronesQuery) ([]string, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	drones, err := h.uowFactory.Create().DroneRepository().ListByState(ctx, drone.Idle)
	if err != nil {
		return nil, err
	}

	numbers := make([]string, 0, len(drones))
	for _, d := range drones {
		numbers = append(numbers, d.Number())
	}

	return numbers, nil
}
