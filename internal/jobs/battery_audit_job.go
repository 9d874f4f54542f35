package jobs

import (
	"context"
	"log/slog"

	"drones/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

type batteryAuditHandler interface {
	Handle(ctx context.Context, cmd commands.AuditBatteryLevelsCommand) (int, error)
}

// BatteryAuditJob periodically appends a battery audit entry for every drone.
type BatteryAuditJob struct {
	handler  batteryAuditHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewBatteryAuditJob(handler batteryAuditHandler, schedule string, logger *slog.Logger) *BatteryAuditJob {
	return &BatteryAuditJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "battery_audit_job"),
	}
}

// Start registers the job with its schedule. An invalid schedule is returned
// as an error and nothing is started.
func (j *BatteryAuditJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.Run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Battery audit job started", "schedule", j.schedule)
	return nil
}

// Run performs a single audit.
func (j *BatteryAuditJob) Run() {
	ctx := context.Background()

	audited, err := j.handler.Handle(ctx, commands.NewAuditBatteryLevelsCommand())
	if err != nil {
		j.logger.ErrorContext(ctx, "Battery audit job failed", "error", err)
		return
	}

	j.logger.DebugContext(ctx, "Battery audit job finished", "drones", audited)
}

// Stop waits for a running audit to finish.
func (j *BatteryAuditJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Battery audit job stopped")
}
