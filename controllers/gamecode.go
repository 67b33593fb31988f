package controllers

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"github.com/KomalRiazOCS/HospitalAPI/db"
	"github.com/KomalRiazOCS/HospitalAPI/models"
	"github.com/KomalRiazOCS/HospitalAPI/redis"
	"github.com/KomalRiazOCS/HospitalAPI/utils"
)

type GameUserInput struct {
	Email string `json:"email" validate:"required,email"`
}

type GenerateCodesInput struct {
	Email         string `json:"email" validate:"required,email"`
	NoOfGameCodes int    `json:"noOfGameCodes" validate:"required,min=1,max=100"`
}

type GameLoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	GameCode string `json:"gameCode" validate:"required"`
}

// RegisterGameUser creates a game-code user from just an email address.
func RegisterGameUser(c *fiber.Ctx) error {
	input := new(GameUserInput)
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

	var existing models.GameUser
	if db.DB.Where("email = ?", input.Email).First(&existing).RowsAffected > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "User already registered.",
		})
	}

	user := models.GameUser{Email: input.Email}
	if err := db.DB.Create(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create user",
		})
	}
	return c.JSON(user)
}

// GenerateGameCodes mints a batch of codes for a user. Each code is written
// to Redis with the 12 hour expiry and the full batch is mailed to the user.
func GenerateGameCodes(c *fiber.Ctx) error {
	input := new(GenerateCodesInput)
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

	var user models.GameUser
	if db.DB.Where("email = ?", input.Email).First(&user).RowsAffected == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "User not found.",
		})
	}

	codes := make([]string, 0, input.NoOfGameCodes)
	for i := 0; i < input.NoOfGameCodes; i++ {
		code := utils.GenerateGameCode()
		gameCode := models.GameCode{
			GameUserID: user.ID,
			Code:       code,
			CreatedAt:  time.Now(),
		}
		if err := db.DB.Create(&gameCode).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to generate game codes",
			})
		}
		if err := redis.StoreGameCode(user.Email, code, models.GameCodeTTL); err != nil {
			log.Printf("Failed to store game code expiry for %s: %v", user.Email, err)
		}
		codes = append(codes, code)
	}

	if err := db.DB.Preload("GameCodes").First(&user, user.ID).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch user",
		})
	}

	user.NoOfGameCodes = len(user.GameCodes)
	if err := db.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update user",
		})
	}

	go func(email string, codes []string) {
		if err := sendGameCodesEmail(email, codes); err != nil {
			log.Printf("Failed to mail game codes to %s: %v", email, err)
		}
	}(user.Email, codes)

	return c.JSON(user)
}

// LoginWithGameCode authenticates a user by email and a live game code. The
// login-attempt counter is bumped on every attempt, successful or not.
func LoginWithGameCode(c *fiber.Ctx) error {
	input := new(GameLoginInput)
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

	var user models.GameUser
	if db.DB.Where("email = ?", input.Email).First(&user).RowsAffected == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid email or game code.",
		})
	}

	if user.LockedOut() {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Too many login attempts.",
		})
	}

	user.LoginAttempt++
	if err := db.DB.Model(&models.GameUser{}).Where("id = ?", user.ID).
		Update("login_attempt", user.LoginAttempt).Error; err != nil {
		log.Printf("Failed to record login attempt for %s: %v", user.Email, err)
	}

	// The row's CreatedAt guard is authoritative; the Redis expiry key is a
	// second gate whenever a client is configured.
	var gameCode models.GameCode
	err := db.DB.Where("game_user_id = ? AND code = ?", user.ID, input.GameCode).
		First(&gameCode).Error
	if err != nil || gameCode.Expired(time.Now()) || !redis.GameCodeLive(user.Email, input.GameCode) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid email or game code.",
		})
	}

	claims := jwt.MapClaims{
		"id":    user.ID,
		"email": user.Email,
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtSecret())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate token",
		})
	}

	return c.JSON(fiber.Map{"token": token})
}

func sendGameCodesEmail(email string, codes []string) error {
	body := fmt.Sprintf(`
		<p>Hello,</p>
		<p>Your new game codes are ready. Each code expires 12 hours after it was generated.</p>
		<ul><li>%s</li></ul>
		<p>Best regards,</p>
		<p>The Hospital API Team</p>
	`, strings.Join(codes, "</li><li>"))

	return utils.SendEmail(email, "Your game codes", body)
}
