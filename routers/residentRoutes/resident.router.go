package residentRoutes

import (
	residentControllers "bims/controllers/resident"
	"bims/middleware"
	residentValidators "bims/validators/resident"

	"github.com/gofiber/fiber/v2"
)

func SetupResidentRoutes(app *fiber.App) {
	residentGroup := app.Group("/api/resident", middleware.JWTMiddleware)

	residentGroup.Post("/register", residentValidators.Register(), residentControllers.Register)
	residentGroup.Post("/read", residentValidators.List(), residentControllers.List)
	residentGroup.Get("/stats", residentControllers.Stats)
	residentGroup.Get("/profile/:id", residentControllers.Profile)
	residentGroup.Patch("/update/:id", residentControllers.Update)
	residentGroup.Patch("/address/:id", residentControllers.UpdateAddress)
	residentGroup.Patch("/contact/:id", residentControllers.UpdateContact)
	residentGroup.Patch("/archive/:id", middleware.RequireRole("ADMIN"), residentControllers.Archive)
}
