package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/KomalRiazOCS/HospitalAPI/controllers"
)

// SetupAppointmentRoutes configures all appointment related routes. The
// literal-prefix report routes come first so "/:id" cannot swallow them.
func SetupAppointmentRoutes(app *fiber.App) {
	appointment := app.Group("/appointments")
	appointment.Get("/hospital/:date", controllers.GetHospitalAppointments)
	appointment.Get("/feeStatus/unpaid", controllers.GetUnpaidAppointments)
	appointment.Get("/FS/hospital-financial-summary", controllers.GetFinancialSummary)
	appointment.Get("/PS/hospital-pet-summary", controllers.GetPetSummary)
	appointment.Post("/:id", controllers.CreateAppointment)
	appointment.Get("/:id", controllers.GetPatientAppointments)
	appointment.Put("/:id/:appointmentId", controllers.UpdateAppointment)
	appointment.Delete("/:id/:appointmentId", controllers.DeleteAppointment)
}
