package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/KomalRiazOCS/HospitalAPI/db"
	"github.com/KomalRiazOCS/HospitalAPI/models"
	"github.com/KomalRiazOCS/HospitalAPI/utils"
)

const patientNotFound = "The patient with the given ID was not found."

// PatientInput mirrors the request body of patient create/update.
type PatientInput struct {
	PetName      string `json:"petName" validate:"required"`
	PetType      string `json:"petType" validate:"required,oneof=cat dog bird"`
	OwnerName    string `json:"ownerName" validate:"required"`
	OwnerAddress string `json:"ownerAddress" validate:"required"`
	OwnerPhone   string `json:"ownerPhone" validate:"required,min=11"`
}

// parseID turns a path id into a primary key. A syntactically invalid id is
// treated exactly like an absent one, so both end in the same 404.
func parseID(raw string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// GetAllPatients returns every patient with its appointments.
func GetAllPatients(c *fiber.Ctx) error {
	var patients []models.Patient
	if err := db.DB.Preload("Appointments").Find(&patients).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch patients",
			Error:   err.Error(),
		})
	}
	return c.JSON(patients)
}

// GetPatient returns one patient by ID.
func GetPatient(c *fiber.Ctx) error {
	id, ok := parseID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{Message: patientNotFound})
	}

	var patient models.Patient
	if err := db.DB.Preload("Appointments").First(&patient, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{Message: patientNotFound})
	}
	return c.JSON(patient)
}

// CreatePatient validates and stores a new patient.
func CreatePatient(c *fiber.Ctx) error {
	input := new(PatientInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if err := utils.ValidateStruct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{Message: err.Error()})
	}

	patient := models.Patient{
		PetName:      input.PetName,
		PetType:      models.PetType(input.PetType),
		OwnerName:    input.OwnerName,
		OwnerAddress: input.OwnerAddress,
		OwnerPhone:   input.OwnerPhone,
	}
	if err := db.DB.Create(&patient).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create patient",
			Error:   err.Error(),
		})
	}
	return c.JSON(patient)
}

// UpdatePatient validates and updates a patient's own fields. Appointments
// are untouched; they have their own endpoints.
func UpdatePatient(c *fiber.Ctx) error {
	id, ok := parseID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{Message: patientNotFound})
	}

	input := new(PatientInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if err := utils.ValidateStruct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{Message: err.Error()})
	}

	var patient models.Patient
	if err := db.DB.First(&patient, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{Message: patientNotFound})
	}

	patient.PetName = input.PetName
	patient.PetType = models.PetType(input.PetType)
	patient.OwnerName = input.OwnerName
	patient.OwnerAddress = input.OwnerAddress
	patient.OwnerPhone = input.OwnerPhone

	if err := db.DB.Save(&patient).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update patient",
			Error:   err.Error(),
		})
	}
	return c.JSON(patient)
}

// DeletePatient removes a patient and, with it, every owned appointment.
func DeletePatient(c *fiber.Ctx) error {
	id, ok := parseID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{Message: patientNotFound})
	}

	var patient models.Patient
	if err := db.DB.Preload("Appointments").First(&patient, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{Message: patientNotFound})
	}

	if err := db.DB.Select("Appointments").Delete(&patient).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete patient",
			Error:   err.Error(),
		})
	}
	return c.JSON(patient)
}

// GetPatientBill sums the unpaid amounts of one patient's appointments.
func GetPatientBill(c *fiber.Ctx) error {
	id, ok := parseID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{Message: "Patient not found."})
	}

	var patient models.Patient
	if err := db.DB.Preload("Appointments").First(&patient, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{Message: "Patient not found."})
	}

	return c.JSON(fiber.Map{"remainingBill": utils.RemainingBill(patient)})
}
