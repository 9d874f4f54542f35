package queries

import (
	"context"

	"drones/internal/core/ports"
)

// GetDroneEventsQueryHandler maps event log entries of one drone to
// DroneEvent read models.
//
// Example:
//
//	handler := NewGetDroneEventsQueryHandler(uowFactory)
//	query, _ := NewGetDroneEventsQuery("Drone-1")
//
//	events, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d events recorded\n", len(events))
type GetDroneEventsQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewGetDroneEventsQueryHandler creates the handler over uowFactory.
func NewGetDroneEventsQueryHandler(uowFactory ports.UnitOfWorkFactory) GetDroneEventsQueryHandler {
	return GetDroneEventsQueryHandler{uowFactory: uowFactory}
}

// Handle returns the events in append order. An unknown drone yields
// drone.ErrDroneNotFound; a known drone without history yields an empty slice.
func (h GetDroneEventsQueryHandler) Handle(ctx context.Context, query GetDroneEventsQuery) ([]DroneEvent, error) {
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

	events := make([]DroneEvent, 0, len(entries))
	for _, e := range entries {
		event := DroneEvent{
			ID:              e.ID(),
			DroneNumber:     e.DroneNumber(),
			State:           e.State(),
			BatteryCapacity: e.BatteryCapacity(),
			Timestamp:       e.Timestamp(),
		}
		if code, ok := e.MedicationCode(); ok {
			event.MedicationCode = &code
		}
		events = append(events, event)
	}

	return events, nil
}
