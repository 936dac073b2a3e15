package main

import (
	"log"

	"microcourses/config"
	"microcourses/database"
	adminRoutes "microcourses/routers/adminRoutes"
	authRoutes "microcourses/routers/authRoutes"
	contactRoutes "microcourses/routers/contactRoutes"
	courseRoutes "microcourses/routers/courseRoutes"
	creatorRoutes "microcourses/routers/creatorRoutes"
	learnerRoutes "microcourses/routers/learnerRoutes"
	"microcourses/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	// Explicit idempotent bootstrap, before any traffic is served
	if err := database.SeedDefaultAdmin(database.Database.Db); err != nil {
		log.Fatalf("Failed to seed default admin: %v", err)
	}

	utils.InitializeReviewScheduler()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	creatorRoutes.SetupCreatorRoutes(app)
	adminRoutes.SetupAdminRoutes(app)
	learnerRoutes.SetupLearnerRoutes(app)
	contactRoutes.SetupContactRoutes(app)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
