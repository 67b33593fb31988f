package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/KomalRiazOCS/HospitalAPI/controllers"
)

// SetupGameCodeRoutes configures the game-code user routes
func SetupGameCodeRoutes(app *fiber.App) {
	gamecode := app.Group("/gamecodes")
	gamecode.Post("/register", controllers.RegisterGameUser)
	gamecode.Post("/generate", controllers.GenerateGameCodes)
	gamecode.Post("/login", controllers.LoginWithGameCode)
}
