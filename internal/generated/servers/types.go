// Package servers holds the HTTP contract of the fleet API: request and
// response models, the echo server interface and route registration, all
// kept in step with the embedded openapi.json.
package servers

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// BatteryLevel defines model for BatteryLevel.
type BatteryLevel struct {
	BatteryCapacity int    `json:"batteryCapacity"`
	DroneNumber     string `json:"droneNumber"`
}

// Drone defines model for Drone.
type Drone struct {
	BatteryCapacity int    `json:"batteryCapacity"`
	Model           string `json:"model"`
	Number          string `json:"number"`
	State           string `json:"state"`
}

// DroneEvent defines model for DroneEvent.
type DroneEvent struct {
	BatteryCapacity int                `json:"batteryCapacity"`
	DroneNumber     string             `json:"droneNumber"`
	Id              openapi_types.UUID `json:"id"`
	MedicationCode  *string            `json:"medicationCode,omitempty"`
	State           string             `json:"state"`
	Timestamp       time.Time          `json:"timestamp"`
}

// DroneMedication defines model for DroneMedication.
type DroneMedication struct {
	DroneNumber    string `json:"droneNumber" validate:"required"`
	MedicationCode string `json:"medicationCode" validate:"required"`
}

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Health defines model for Health.
type Health struct {
	Status string `json:"status"`
}

// LoadedItemAmount defines model for LoadedItemAmount.
type LoadedItemAmount struct {
	Amount      int64  `json:"amount"`
	DroneNumber string `json:"droneNumber"`
}

// MedicationItems defines model for MedicationItems.
type MedicationItems struct {
	DroneNumber string   `json:"droneNumber"`
	Medications []string `json:"medications"`
}

// NewDrone defines model for NewDrone.
type NewDrone struct {
	Model  NewDroneModel `json:"model" validate:"required,oneof=Lightweight Middleweight Cruiserweight Heavyweight"`
	Number string        `json:"number" validate:"required,max=100"`
}

// NewDroneModel defines model for NewDrone.Model.
type NewDroneModel string

// Defines values for NewDroneModel.
const (
	Cruiserweight NewDroneModel = "Cruiserweight"
	Heavyweight   NewDroneModel = "Heavyweight"
	Lightweight   NewDroneModel = "Lightweight"
	Middleweight  NewDroneModel = "Middleweight"
)

// NewMedication defines model for NewMedication.
type NewMedication struct {
	Code   string `json:"code" validate:"required"`
	Name   string `json:"name" validate:"required"`
	Weight int    `json:"weight" validate:"required,gt=0"`
}

// DroneNumber defines model for DroneNumber.
type DroneNumber = string

// BadRequest defines model for BadRequest.
type BadRequest = Error

// Conflict defines model for Conflict.
type Conflict = Error

// NotFound defines model for NotFound.
type NotFound = Error

// Unexpected defines model for Unexpected.
type Unexpected = Error

// RegisterDroneJSONRequestBody defines body for RegisterDrone for application/json ContentType.
type RegisterDroneJSONRequestBody = NewDrone

// LoadDroneJSONRequestBody defines body for LoadDrone for application/json ContentType.
type LoadDroneJSONRequestBody = DroneMedication

// RegisterMedicationJSONRequestBody defines body for RegisterMedication for application/json ContentType.
type RegisterMedicationJSONRequestBody = NewMedication
