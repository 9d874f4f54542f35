package ports

import (
	"context"

	"drones/internal/core/domain/model/eventlog"
)

// EventLogRepository is the append-only store of drone events.
// Both finders return entries in append order.
type EventLogRepository interface {
	Append(ctx context.Context, entry *eventlog.EventLog) error

	FindAll(ctx context.Context) ([]*eventlog.EventLog, error)

	FindByDrone(ctx context.Context, number string) ([]*eventlog.EventLog, error)
}
