package fingerprintRoutes

import (
	fingerprintControllers "bims/controllers/fingerprint"
	"bims/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupFingerprintRoutes(app *fiber.App) {
	fingerprintGroup := app.Group("/api/fingerprint", middleware.JWTMiddleware)

	fingerprintGroup.Get("/status", fingerprintControllers.Status)
	fingerprintGroup.Post("/capture", fingerprintControllers.Capture)
	fingerprintGroup.Post("/identify", fingerprintControllers.Identify)
}
