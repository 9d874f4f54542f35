package postgres

import (
	"drones/internal/adapters/out/postgres/dronerepo"
	"drones/internal/adapters/out/postgres/eventlogrepo"
	"drones/internal/adapters/out/postgres/medicationrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the drones, medications and event_logs tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&dronerepo.DroneDTO{},
		&medicationrepo.MedicationDTO{},
		&eventlogrepo.EventLogDTO{},
	)
}
