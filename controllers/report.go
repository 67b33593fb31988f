package controllers

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/KomalRiazOCS/HospitalAPI/db"
	"github.com/KomalRiazOCS/HospitalAPI/models"
	"github.com/KomalRiazOCS/HospitalAPI/redis"
	"github.com/KomalRiazOCS/HospitalAPI/utils"
)

const reportCacheTTL = 60 * time.Second

// GetFinancialSummary reports the paid/unpaid/balance triple for the current
// week and the current month. Responses are cached briefly in Redis when a
// client is configured.
func GetFinancialSummary(c *fiber.Ctx) error {
	const cacheKey = "report:financial-summary"
	if cached, ok := redis.CacheGet(cacheKey); ok {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(cached)
	}

	var patients []models.Patient
	if err := db.DB.Preload("Appointments").Find(&patients).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch patients",
			Error:   err.Error(),
		})
	}

	now := time.Now()
	weekStart, weekEnd := utils.WeekWindow(now)
	monthStart, monthEnd := utils.MonthWindow(now)

	response := fiber.Map{
		"weeklySummary":  utils.AggregateFinancialSummary(patients, weekStart, weekEnd),
		"monthlySummary": utils.AggregateFinancialSummary(patients, monthStart, monthEnd),
	}

	if body, err := json.Marshal(response); err == nil {
		redis.CacheSet(cacheKey, string(body), reportCacheTTL)
	}
	return c.JSON(response)
}

// GetPetSummary reports per-pet-type counts and revenue plus the set of pet
// types tied for the highest appointment count.
func GetPetSummary(c *fiber.Ctx) error {
	const cacheKey = "report:pet-summary"
	if cached, ok := redis.CacheGet(cacheKey); ok {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(cached)
	}

	var patients []models.Patient
	if err := db.DB.Preload("Appointments").Find(&patients).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch patients",
			Error:   err.Error(),
		})
	}

	mostPopularPets, petSummary := utils.AggregatePetSummary(patients)
	response := fiber.Map{
		"mostPopularPets": mostPopularPets,
		"petSummary":      petSummary,
	}

	if body, err := json.Marshal(response); err == nil {
		redis.CacheSet(cacheKey, string(body), reportCacheTTL)
	}
	return c.JSON(response)
}
