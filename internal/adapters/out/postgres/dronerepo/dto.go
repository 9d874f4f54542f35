// Package dronerepo persists drone aggregates with GORM.
package dronerepo

import (
	"drones/internal/core/domain/model/drone"
)

// DroneDTO is the row of the drones table. State and model type are stored by
// name so the table stays readable without the enum definitions.
type DroneDTO struct {
	Number          string `gorm:"type:varchar(100);primaryKey"`
	ModelType       string `gorm:"type:varchar(32);not null"`
	State           string `gorm:"type:varchar(32);not null;index"`
	BatteryCapacity int    `gorm:"type:smallint;not null"`
}

func (DroneDTO) TableName() string {
	return "drones"
}

func fromDomain(aggregate *drone.Drone) DroneDTO {
	return DroneDTO{
		Number:          aggregate.Number(),
		ModelType:       aggregate.ModelType().String(),
		State:           aggregate.State().String(),
		BatteryCapacity: aggregate.BatteryCapacity(),
	}
}

func toDomain(dto DroneDTO) (*drone.Drone, error) {
	modelType, err := drone.ParseModelType(dto.ModelType)
	if err != nil {
		return nil, err
	}

	state, err := drone.ParseState(dto.State)
	if err != nil {
		return nil, err
	}

	return drone.RestoreDrone(dto.Number, modelType, state, dto.BatteryCapacity)
}

func toDomainList(dtos []DroneDTO) ([]*drone.Drone, error) {
	drones := make([]*drone.Drone, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		drones = append(drones, d)
	}
	return drones, nil
}
