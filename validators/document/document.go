package documentValidator

import (
	documentController "bims/controllers/document"
	"bims/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// CreateType validator middleware
func CreateType() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(documentController.TypeRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, middleware.FieldErrors(err))
		}

		c.Locals("validatedDocumentType", reqData)
		return c.Next()
	}
}

// Issue validator middleware
func Issue() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(documentController.IssueRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, middleware.FieldErrors(err))
		}

		c.Locals("validatedIssue", reqData)
		return c.Next()
	}
}

// IssuedList validator middleware
func IssuedList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(documentController.IssuedListRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, middleware.FieldErrors(err))
		}

		c.Locals("validatedIssuedList", reqData)
		return c.Next()
	}
}
