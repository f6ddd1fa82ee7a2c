package officerRoutes

import (
	officerControllers "bims/controllers/officer"
	"bims/middleware"
	officerValidators "bims/validators/officer"

	"github.com/gofiber/fiber/v2"
)

func SetupOfficerRoutes(app *fiber.App) {
	officerGroup := app.Group("/api/officials", middleware.JWTMiddleware)

	officerGroup.Get("/batches", officerControllers.ListBatches)
	officerGroup.Post("/batches", middleware.RequireRole("ADMIN"), officerValidators.CreateBatch(), officerControllers.CreateBatch)
	officerGroup.Get("/batch/:id", officerControllers.GetBatch)
	officerGroup.Post("/", middleware.RequireRole("ADMIN"), officerValidators.AddOfficer(), officerControllers.AddOfficer)
	officerGroup.Patch("/:id", middleware.RequireRole("ADMIN"), officerControllers.UpdateOfficer)
	officerGroup.Delete("/:id", middleware.RequireRole("ADMIN"), officerControllers.DeleteOfficer)
}
