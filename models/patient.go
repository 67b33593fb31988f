package models

import (
	"gorm.io/gorm"
)

type PetType string

const (
	PetTypeCat  PetType = "cat"
	PetTypeDog  PetType = "dog"
	PetTypeBird PetType = "bird"
)

// Patient owns its appointments: they are only ever created, updated and
// removed through the patient endpoints and are deleted with the parent row.
type Patient struct {
	gorm.Model
	PetName      string        `json:"petName"`
	PetType      PetType       `json:"petType"`
	OwnerName    string        `json:"ownerName"`
	OwnerAddress string        `json:"ownerAddress"`
	OwnerPhone   string        `json:"ownerPhone"`
	Appointments []Appointment `json:"appointment" gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE"`
}
