package memory

import (
	"context"

	"drones/internal/core/domain/model/eventlog"
)

type eventLogRepository struct {
	uow *UnitOfWork
}

func (r *eventLogRepository) Append(_ context.Context, entry *eventlog.EventLog) error {
	if err := r.uow.checkWritable(); err != nil {
		return err
	}
	if err := entry.Validate(); err != nil {
		return err
	}

	rec := fromEventLog(entry)

	tx := r.uow.tx
	if tx == nil {
		return r.uow.store.apply(&transaction{events: []eventRecord{rec}})
	}

	tx.events = append(tx.events, rec)
	return nil
}

func (r *eventLogRepository) FindAll(_ context.Context) ([]*eventlog.EventLog, error) {
	return r.find(func(eventRecord) bool {
		return true
	})
}

func (r *eventLogRepository) FindByDrone(_ context.Context, number string) ([]*eventlog.EventLog, error) {
	return r.find(func(rec eventRecord) bool {
		return rec.droneNumber == number
	})
}

func (r *eventLogRepository) find(keep func(eventRecord) bool) ([]*eventlog.EventLog, error) {
	var records []eventRecord
	switch tx := r.uow.tx; {
	case tx != nil && tx.view != nil:
		records = tx.view.events
	case tx != nil:
		records = append(r.uow.store.allEvents(), tx.events...)
	default:
		records = r.uow.store.allEvents()
	}

	result := make([]*eventlog.EventLog, 0, len(records))
	for _, rec := range records {
		if !keep(rec) {
			continue
		}
		entry, err := rec.toDomain()
		if err != nil {
			return nil, err
		}
		result = append(result, entry)
	}
	return result, nil
}
