package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/KomalRiazOCS/HospitalAPI/db"
	"github.com/KomalRiazOCS/HospitalAPI/models"
	"github.com/KomalRiazOCS/HospitalAPI/utils"
)

const appointmentNotFound = "The appointment with the given ID was not found."

// AppointmentInput mirrors the request body of appointment create/update.
type AppointmentInput struct {
	StartTime   time.Time `json:"startTime" validate:"required"`
	EndTime     time.Time `json:"endTime" validate:"required"`
	Description string    `json:"description" validate:"required"`
	FeeStatus   string    `json:"feeStatus" validate:"required,oneof=USD EUR Bitcoin unpaid"`
	Amount      string    `json:"amount" validate:"required"`
}

// CreateAppointment appends a new appointment to a patient and returns the
// whole aggregate.
func CreateAppointment(c *fiber.Ctx) error {
	id, ok := parseID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{Message: patientNotFound})
	}

	var patient models.Patient
	if err := db.DB.First(&patient, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{Message: patientNotFound})
	}

	input := new(AppointmentInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if err := utils.ValidateStruct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{Message: err.Error()})
	}

	appointment := models.Appointment{
		PatientID:   patient.ID,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		Description: input.Description,
		FeeStatus:   models.FeeStatus(input.FeeStatus),
		Amount:      input.Amount,
	}
	if err := db.DB.Create(&appointment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create appointment",
			Error:   err.Error(),
		})
	}

	if err := db.DB.Preload("Appointments").First(&patient, patient.ID).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch patient",
			Error:   err.Error(),
		})
	}
	return c.JSON(patient)
}

// GetPatientAppointments lists one patient's appointments.
func GetPatientAppointments(c *fiber.Ctx) error {
	id, ok := parseID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{Message: patientNotFound})
	}

	var patient models.Patient
	if err := db.DB.Preload("Appointments").First(&patient, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{Message: patientNotFound})
	}
	return c.JSON(patient.Appointments)
}

// findOwnedAppointment fetches an appointment strictly through its parent.
func findOwnedAppointment(c *fiber.Ctx) (*models.Appointment, error) {
	patientID, ok := parseID(c.Params("id"))
	if !ok {
		return nil, c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{Message: patientNotFound})
	}

	var patient models.Patient
	if err := db.DB.First(&patient, patientID).Error; err != nil {
		return nil, c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{Message: patientNotFound})
	}

	appointmentID, ok := parseID(c.Params("appointmentId"))
	if !ok {
		return nil, c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{Message: appointmentNotFound})
	}

	var appointment models.Appointment
	err := db.DB.Where("id = ? AND patient_id = ?", appointmentID, patient.ID).First(&appointment).Error
	if err != nil {
		return nil, c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{Message: appointmentNotFound})
	}
	return &appointment, nil
}

// UpdateAppointment replaces the fields of an owned appointment.
func UpdateAppointment(c *fiber.Ctx) error {
	appointment, done := findOwnedAppointment(c)
	if appointment == nil {
		return done
	}

	input := new(AppointmentInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if err := utils.ValidateStruct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{Message: err.Error()})
	}

	appointment.StartTime = input.StartTime
	appointment.EndTime = input.EndTime
	appointment.Description = input.Description
	appointment.FeeStatus = models.FeeStatus(input.FeeStatus)
	appointment.Amount = input.Amount

	if err := db.DB.Save(appointment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update appointment",
			Error:   err.Error(),
		})
	}
	return c.JSON(appointment)
}

// DeleteAppointment removes an owned appointment and returns it.
func DeleteAppointment(c *fiber.Ctx) error {
	appointment, done := findOwnedAppointment(c)
	if appointment == nil {
		return done
	}

	if err := db.DB.Delete(appointment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete appointment",
			Error:   err.Error(),
		})
	}
	return c.JSON(appointment)
}

// GetHospitalAppointments returns every appointment starting on the given
// calendar day, across all patients.
func GetHospitalAppointments(c *fiber.Ctx) error {
	date, err := utils.ParseDate(c.Params("date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{Message: "Invalid date."})
	}
	dayStart, dayEnd := utils.DayWindow(date)

	var patients []models.Patient
	if err := db.DB.Preload("Appointments").Find(&patients).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch patients",
			Error:   err.Error(),
		})
	}

	return c.JSON(utils.AppointmentsOn(patients, dayStart, dayEnd))
}

// GetUnpaidAppointments returns the flat list of unpaid appointments.
func GetUnpaidAppointments(c *fiber.Ctx) error {
	var patients []models.Patient
	if err := db.DB.Preload("Appointments").Find(&patients).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch patients",
			Error:   err.Error(),
		})
	}

	return c.JSON(utils.UnpaidAppointments(patients))
}
