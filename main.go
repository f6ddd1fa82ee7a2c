package main

import (
	"bims/config"
	fingerprintController "bims/controllers/fingerprint"
	"bims/database"
	authRoutes "bims/routers/authRoutes"
	docRoutes "bims/routers/docRoutes"
	fingerprintRoutes "bims/routers/fingerprintRoutes"
	incidentRoutes "bims/routers/incidentRoutes"
	logRoutes "bims/routers/logRoutes"
	lookupRoutes "bims/routers/lookupRoutes"
	officerRoutes "bims/routers/officerRoutes"
	residentRoutes "bims/routers/residentRoutes"
	"bims/utils"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:5173",
		AllowMethods:     "GET,POST,PATCH,DELETE",
		AllowHeaders:     "Content-Type,Authorization",
		AllowCredentials: true, // session cookie
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": true, "message": "ok"})
	})

	// Device bridge to the external fingerprint scanner service
	scanner := utils.NewScannerBridge(config.AppConfig.FingerprintWsUrl)
	scanner.Start()
	defer scanner.Stop()
	fingerprintController.SetBridge(scanner)

	// Nightly population snapshot
	statsCron := utils.StartStatsScheduler()
	defer statsCron.Stop()

	authRoutes.SetupAuthRoutes(app)
	residentRoutes.SetupResidentRoutes(app)
	docRoutes.SetupDocRoutes(app)
	logRoutes.SetupLogRoutes(app)
	incidentRoutes.SetupIncidentRoutes(app)
	officerRoutes.SetupOfficerRoutes(app)
	lookupRoutes.SetupLookupRoutes(app)
	fingerprintRoutes.SetupFingerprintRoutes(app)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
