package lookupRoutes

import (
	lookupControllers "bims/controllers/lookup"
	"bims/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupLookupRoutes(app *fiber.App) {
	lookupGroup := app.Group("/api/lookup", middleware.JWTMiddleware)

	lookupGroup.Get("/:kind", lookupControllers.List)
}
