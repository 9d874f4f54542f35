// Package eventlogrepo persists the append-only drone event log with GORM.
package eventlogrepo

import (
	"time"

	"drones/internal/core/domain/model/drone"
	"drones/internal/core/domain/model/eventlog"
	"drones/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// EventLogDTO is the row of the event_logs table. Seq is assigned by the
// database and defines append order; timestamps may collide.
type EventLogDTO struct {
	Seq             int64     `gorm:"autoIncrement;uniqueIndex"`
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	DroneNumber     string    `gorm:"type:varchar(100);not null;index"`
	State           string    `gorm:"type:varchar(32);not null"`
	MedicationCode  *string   `gorm:"type:varchar(64)"`
	BatteryCapacity int       `gorm:"type:smallint;not null"`
	Timestamp       time.Time `gorm:"not null"`
}

func (EventLogDTO) TableName() string {
	return "event_logs"
}

func fromDomain(entry *eventlog.EventLog) EventLogDTO {
	dto := EventLogDTO{
		ID:              entry.ID().Bytes(),
		DroneNumber:     entry.DroneNumber(),
		State:           entry.State().String(),
		BatteryCapacity: entry.BatteryCapacity(),
		Timestamp:       entry.Timestamp(),
	}
	if code, ok := entry.MedicationCode(); ok {
		dto.MedicationCode = &code
	}
	return dto
}

func toDomain(dto EventLogDTO) (*eventlog.EventLog, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	state, err := drone.ParseState(dto.State)
	if err != nil {
		return nil, err
	}

	return eventlog.RestoreEventLog(id, dto.DroneNumber, state, dto.MedicationCode, dto.BatteryCapacity, dto.Timestamp)
}
