package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"

	"github.com/KomalRiazOCS/HospitalAPI/cron"
	"github.com/KomalRiazOCS/HospitalAPI/db"
	"github.com/KomalRiazOCS/HospitalAPI/redis"
	"github.com/KomalRiazOCS/HospitalAPI/routes"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if err := db.Init(); err != nil {
		return err
	}

	// Redis is optional: without REDIS_ADDR the report cache and the
	// game-code expiry keys are simply skipped.
	if os.Getenv("REDIS_ADDR") != "" {
		if err := redis.InitRedis(); err != nil {
			return err
		}
	}

	scheduler, err := cron.StartCleanupJob()
	if err != nil {
		return err
	}
	defer scheduler.Stop()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(helmet.New())
	app.Use(compress.New())

	routes.SetupPatientRoutes(app)
	routes.SetupAppointmentRoutes(app)
	routes.SetupAuthRoutes(app)
	routes.SetupGameCodeRoutes(app)
	routes.SetupTodoRoutes(app)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	return app.Listen(":" + port)
}
