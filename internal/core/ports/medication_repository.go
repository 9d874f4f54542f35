package ports

import (
	"context"

	"drones/internal/core/domain/model/medication"
)

// MedicationRepository persists the medication catalog keyed by code.
type MedicationRepository interface {
	// Add fails with errs.ErrObjectAlreadyExists for a known code.
	Add(ctx context.Context, aggregate *medication.Medication) error

	Exists(ctx context.Context, code string) (bool, error)
}
