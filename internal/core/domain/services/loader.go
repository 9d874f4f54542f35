package services

import (
	"strings"
	"time"

	"drones/internal/core/domain/model/drone"
	"drones/internal/core/domain/model/eventlog"
	"drones/internal/pkg/errs"
)

// Loader applies a load to a drone. Existence of the drone and the medication
// is checked by the caller; Loader owns the state rule and the audit entry.
type Loader struct{}

func NewLoader() Loader {
	return Loader{}
}

// Load transitions d to LOADING and returns the entry to append.
// When the state rule rejects the load, d keeps its previous state.
func (l Loader) Load(d *drone.Drone, medicationCode string, at time.Time) (*eventlog.EventLog, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	if strings.TrimSpace(medicationCode) == "" {
		return nil, errs.NewValueIsRequiredError("medication code")
	}

	if err := d.Load(); err != nil {
		return nil, err
	}

	return eventlog.NewLoadingEntry(d, medicationCode, at)
}
