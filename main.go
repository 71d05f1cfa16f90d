package main

import (
	"log"

	"skilldev/config"
	"skilldev/database"
	"skilldev/middleware"
	authRoutes "skilldev/routers/authRoutes"
	chatRoutes "skilldev/routers/chatRoutes"
	courseRoutes "skilldev/routers/courseRoutes"
	settingsRoutes "skilldev/routers/settingsRoutes"
	"skilldev/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(middleware.CORS())

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	chatRoutes.SetupChatRoutes(app)
	settingsRoutes.SetupSettingsRoutes(app)

	// Reaps registration uploads left behind by aborted requests
	sweeper := utils.StartUploadSweeper()
	defer sweeper.Stop()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
