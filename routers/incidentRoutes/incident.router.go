package incidentRoutes

import (
	incidentControllers "bims/controllers/incident"
	"bims/middleware"
	incidentValidators "bims/validators/incident"

	"github.com/gofiber/fiber/v2"
)

func SetupIncidentRoutes(app *fiber.App) {
	incidentGroup := app.Group("/api/incident", middleware.JWTMiddleware)

	incidentGroup.Post("/", incidentValidators.Create(), incidentControllers.Create)
	incidentGroup.Post("/narrative", incidentValidators.AddNarrative(), incidentControllers.AddNarrative)
	incidentGroup.Post("/read", incidentValidators.List(), incidentControllers.List)
	incidentGroup.Patch("/status/:id", incidentControllers.UpdateStatus)
}
