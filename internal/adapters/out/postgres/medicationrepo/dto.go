// Package medicationrepo persists the medication catalog with GORM.
package medicationrepo

import (
	"drones/internal/core/domain/model/medication"
)

type MedicationDTO struct {
	Code   string `gorm:"type:varchar(64);primaryKey"`
	Name   string `gorm:"type:varchar(255);not null"`
	Weight int    `gorm:"type:int;not null"`
}

func (MedicationDTO) TableName() string {
	return "medications"
}

func fromDomain(aggregate *medication.Medication) MedicationDTO {
	return MedicationDTO{
		Code:   aggregate.Code(),
		Name:   aggregate.Name(),
		Weight: aggregate.Weight(),
	}
}
