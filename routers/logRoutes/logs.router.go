package logRoutes

import (
	logsControllers "bims/controllers/logs"
	"bims/middleware"
	logsValidators "bims/validators/logs"

	"github.com/gofiber/fiber/v2"
)

func SetupLogRoutes(app *fiber.App) {
	logGroup := app.Group("/api/logs", middleware.JWTMiddleware)

	logGroup.Post("/read", logsValidators.Read(), logsControllers.Read)
}
