package officerValidator

import (
	officerController "bims/controllers/officer"
	"bims/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// CreateBatch validator middleware
func CreateBatch() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(officerController.BatchRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, middleware.FieldErrors(err))
		}

		c.Locals("validatedBatch", reqData)
		return c.Next()
	}
}

// AddOfficer validator middleware
func AddOfficer() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(officerController.OfficerRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, middleware.FieldErrors(err))
		}

		c.Locals("validatedOfficer", reqData)
		return c.Next()
	}
}
