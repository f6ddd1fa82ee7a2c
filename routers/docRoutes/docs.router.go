package docRoutes

import (
	documentControllers "bims/controllers/document"
	"bims/middleware"
	documentValidators "bims/validators/document"

	"github.com/gofiber/fiber/v2"
)

func SetupDocRoutes(app *fiber.App) {
	docGroup := app.Group("/api/docs", middleware.JWTMiddleware)

	docGroup.Get("/types", documentControllers.ListTypes)
	docGroup.Post("/types", middleware.RequireRole("ADMIN"), documentValidators.CreateType(), documentControllers.CreateType)
	docGroup.Patch("/types/:id", middleware.RequireRole("ADMIN"), documentControllers.UpdateType)

	docGroup.Post("/issue", documentValidators.Issue(), documentControllers.Issue)
	docGroup.Post("/issued/read", documentValidators.IssuedList(), documentControllers.IssuedList)
	docGroup.Get("/certificate/:id", documentControllers.Certificate)
}
