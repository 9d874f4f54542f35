package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	batteryAuditJob *BatteryAuditJob
}

func NewJobManager(
	auditHandler batteryAuditHandler,
	auditSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		batteryAuditJob: NewBatteryAuditJob(auditHandler, auditSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.batteryAuditJob.Start(); err != nil {
		return fmt.Errorf("failed to start battery audit job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.batteryAuditJob.Stop()
}
