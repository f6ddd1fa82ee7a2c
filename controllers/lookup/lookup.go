package lookupController

import (
	"bims/database"
	"bims/middleware"
	"bims/models"

	"github.com/gofiber/fiber/v2"
)

// List serves one of the reference tables by kind. Lookups are read-only.
func List(c *fiber.Ctx) error {
	kind := c.Params("kind")
	db := database.Database.Db

	switch kind {
	case "occupations":
		var rows []models.Occupation
		if err := db.Order("name ASC").Find(&rows).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch lookup!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Occupations.", rows)
	case "nationalities":
		var rows []models.Nationality
		if err := db.Order("name ASC").Find(&rows).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch lookup!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Nationalities.", rows)
	case "religions":
		var rows []models.Religion
		if err := db.Order("name ASC").Find(&rows).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch lookup!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Religions.", rows)
	case "benefits":
		var rows []models.Benefit
		if err := db.Order("name ASC").Find(&rows).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch lookup!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Benefits.", rows)
	case "streets":
		var rows []models.Street
		if err := db.Order("purok ASC, name ASC").Find(&rows).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch lookup!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Streets.", rows)
	default:
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Unknown lookup kind!", nil)
	}
}
