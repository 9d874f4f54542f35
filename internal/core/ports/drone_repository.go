// Package ports defines the persistence contracts the fleet core consumes.
// Adapters under internal/adapters/out implement them.
package ports

import (
	"context"

	"drones/internal/core/domain/model/drone"
)

// DroneRepository persists drone aggregates keyed by number.
type DroneRepository interface {
	// Add persists a new drone. A drone with the same number makes Add fail
	// with errs.ErrObjectAlreadyExists.
	Add(ctx context.Context, aggregate *drone.Drone) error

	// Update persists the mutable fields of an existing drone.
	Update(ctx context.Context, aggregate *drone.Drone) error

	// Get returns the drone or errs.ErrObjectNotFound.
	Get(ctx context.Context, number string) (*drone.Drone, error)

	// GetForUpdate is Get plus a lock on the drone held until the unit of work
	// ends. Concurrent callers for the same number are serialized; callers for
	// other numbers are not affected.
	GetForUpdate(ctx context.Context, number string) (*drone.Drone, error)

	Exists(ctx context.Context, number string) (bool, error)

	// ListByState returns the drones in state, ascending by number.
	ListByState(ctx context.Context, state drone.State) ([]*drone.Drone, error)

	// ListAll returns the whole fleet, ascending by number.
	ListAll(ctx context.Context) ([]*drone.Drone, error)
}
