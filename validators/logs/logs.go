package logsValidator

import (
	logsController "bims/controllers/logs"
	"bims/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// Read validator middleware
func Read() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(logsController.ReadRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, middleware.FieldErrors(err))
		}

		c.Locals("validatedLogsRead", reqData)
		return c.Next()
	}
}
