// Package jobs provides scheduled background tasks for the drone fleet.
//
// Jobs are built on github.com/robfig/cron/v3 with a seconds-aware parser, so
// schedules accept both six-field expressions and descriptors such as
// "@every 1m".
//
// # Available Jobs
//
// 1. BatteryAuditJob - records the state and battery level of every drone in the event log
//
// # Usage
//
//	jobManager := jobs.NewJobManager(auditHandler, "@every 1m", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// A run that fails is logged and retried at the next tick.
package jobs
