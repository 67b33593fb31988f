package db

import (
	"fmt"
	"log"

	"github.com/KomalRiazOCS/HospitalAPI/models"
)

// Migrate connects and applies the schema. Run explicitly, not at startup.
func Migrate() error {
	if err := Init(); err != nil {
		return err
	}

	err := DB.AutoMigrate(
		&models.Patient{},
		&models.Appointment{},
		&models.User{},
		&models.GameUser{},
		&models.GameCode{},
		&models.Todo{},
	)
	if err != nil {
		log.Println("Failed to run migrations: ", err)
		return err
	}

	fmt.Println("✅ Migrations applied successfully!")
	return nil
}
