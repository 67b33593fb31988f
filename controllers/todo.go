package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/KomalRiazOCS/HospitalAPI/db"
	"github.com/KomalRiazOCS/HospitalAPI/models"
	"github.com/KomalRiazOCS/HospitalAPI/utils"
)

type CreateTodoInput struct {
	Description string `json:"description" validate:"required,min=1,max=255"`
	Completed   bool   `json:"completed"`
}

type UpdateTodoInput struct {
	Description string `json:"description"`
	Completed   *bool  `json:"completed"`
}

// CreateTodo validates and stores a new todo.
func CreateTodo(c *fiber.Ctx) error {
	input := new(CreateTodoInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if err := utils.ValidateStruct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	todo := models.Todo{Description: input.Description, Completed: input.Completed}
	if err := db.DB.Create(&todo).Error; err != nil {
		log.Println(err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal Server Error",
		})
	}
	return c.JSON(todo)
}

// GetAllTodos lists every todo.
func GetAllTodos(c *fiber.Ctx) error {
	var todos []models.Todo
	if err := db.DB.Find(&todos).Error; err != nil {
		log.Println(err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal Server Error",
		})
	}
	return c.JSON(todos)
}

// GetTodo returns one todo by ID.
func GetTodo(c *fiber.Ctx) error {
	id, ok := parseID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Todo not found",
		})
	}

	var todo models.Todo
	if db.DB.First(&todo, id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Todo not found",
		})
	}
	return c.JSON(todo)
}

// UpdateTodo merges the provided fields into an existing todo.
func UpdateTodo(c *fiber.Ctx) error {
	id, ok := parseID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Todo not found",
		})
	}

	input := new(UpdateTodoInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	var todo models.Todo
	if db.DB.First(&todo, id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Todo not found",
		})
	}

	if input.Description != "" {
		todo.Description = input.Description
	}
	if input.Completed != nil {
		todo.Completed = *input.Completed
	}

	if err := db.DB.Save(&todo).Error; err != nil {
		log.Println(err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal Server Error",
		})
	}
	return c.JSON(todo)
}

// DeleteTodo removes a todo and returns it.
func DeleteTodo(c *fiber.Ctx) error {
	id, ok := parseID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Todo not found",
		})
	}

	var todo models.Todo
	if db.DB.First(&todo, id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Todo not found",
		})
	}

	if err := db.DB.Delete(&todo).Error; err != nil {
		log.Println(err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal Server Error",
		})
	}
	return c.JSON(todo)
}
