package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/KomalRiazOCS/HospitalAPI/controllers"
)

// SetupTodoRoutes configures the todo routes
func SetupTodoRoutes(app *fiber.App) {
	todo := app.Group("/todos")
	todo.Post("/", controllers.CreateTodo)
	todo.Get("/", controllers.GetAllTodos)
	todo.Get("/:id", controllers.GetTodo)
	todo.Put("/:id", controllers.UpdateTodo)
	todo.Delete("/:id", controllers.DeleteTodo)
}
