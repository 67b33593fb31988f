package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/KomalRiazOCS/HospitalAPI/controllers"
)

// SetupPatientRoutes configures all patient related routes
func SetupPatientRoutes(app *fiber.App) {
	patient := app.Group("/patients")
	patient.Get("/", controllers.GetAllPatients)
	patient.Post("/", controllers.CreatePatient)
	patient.Get("/:id/bill", controllers.GetPatientBill)
	patient.Get("/:id", controllers.GetPatient)
	patient.Put("/:id", controllers.UpdatePatient)
	patient.Delete("/:id", controllers.DeletePatient)
}
