package commands

import (
	"errors"

	"drones/internal/pkg/guard"
)

var ErrAuditBatteryLevelsCommandIsNotConstructed = errors.New(
	"AuditBatteryLevelsCommand must be created via NewAuditBatteryLevelsCommand constructor",
)

// AuditBatteryLevelsCommand records the battery level of every drone.
// It is parameterless and is normally issued by the battery audit job.
type AuditBatteryLevelsCommand struct {
	guard guard.ConstructorGuard
}

func NewAuditBatteryLevelsCommand() AuditBatteryLevelsCommand {
	return AuditBatteryLevelsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

func (c AuditBatteryLevelsCommand) Validate() error {
	return c.guard.Validate(ErrAuditBatteryLevelsCommandIsNotConstructed)
}
