package commands

import (
	"context"
	"time"

	"drones/internal/core/domain/model/eventlog"
)

// AuditBatteryLevelsCommandHandler appends one state-only event log entry per
// drone. Audit entries carry no medication, so they never show up as loaded
// items.
type AuditBatteryLevelsCommandHandler struct {
	uowFactory UoWFactory
	now        func() time.Time
}

func NewAuditBatteryLevelsCommandHandler(uowFactory UoWFactory) AuditBatteryLevelsCommandHandler {
	return AuditBatteryLevelsCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle returns the number of drones audited.
func (h AuditBatteryLevelsCommandHandler) Handle(ctx context.Context, cmd AuditBatteryLevelsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	drones, err := uow.DroneRepository().ListAll(ctx)
	if err != nil {
		return 0, err
	}

	eventLogRepo := uow.EventLogRepository()
	at := h.now().UTC()

	for _, d := range drones {
		entry, entryErr := eventlog.NewAuditEntry(d, at)
		if entryErr != nil {
			return 0, entryErr
		}

		if err = eventLogRepo.Append(ctx, entry); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(drones), nil
}
