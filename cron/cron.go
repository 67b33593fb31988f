package cron

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/KomalRiazOCS/HospitalAPI/db"
	"github.com/KomalRiazOCS/HospitalAPI/models"
	"github.com/KomalRiazOCS/HospitalAPI/redis"
)

// StartCleanupJob schedules the hourly sweep of expired game codes. The
// returned scheduler lets callers stop the job on shutdown or in tests.
func StartCleanupJob() (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc("0 * * * *", CleanupExpiredGameCodes)
	if err != nil {
		return nil, err
	}
	c.Start()
	log.Println("Cron job scheduler started for game code cleanup")
	return c, nil
}

// CleanupExpiredGameCodes deletes codes older than the 12 hour TTL and
// refreshes each affected user's code count. Redis removes its own keys by
// expiry; the sweep keeps the relational record honest.
func CleanupExpiredGameCodes() {
	var users []models.GameUser
	if err := db.DB.Preload("GameCodes").Find(&users).Error; err != nil {
		log.Printf("Error fetching users for game code cleanup: %v", err)
		return
	}

	now := time.Now()
	for _, user := range users {
		remaining := 0
		for _, code := range user.GameCodes {
			if !code.Expired(now) {
				remaining++
				continue
			}
			if err := db.DB.Delete(&models.GameCode{}, code.ID).Error; err != nil {
				log.Printf("Failed to delete expired game code %d: %v", code.ID, err)
				remaining++
				continue
			}
			redis.DeleteGameCode(user.Email, code.Code)
		}

		if remaining != user.NoOfGameCodes {
			err := db.DB.Model(&models.GameUser{}).Where("id = ?", user.ID).
				Update("no_of_game_codes", remaining).Error
			if err != nil {
				log.Printf("Failed to update game code count for user %d: %v", user.ID, err)
			}
		}
	}
}
