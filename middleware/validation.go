package middleware

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldErrors flattens validator.v10 errors into the field->message map that
// ValidationErrorResponse expects.
func FieldErrors(err error) map[string]string {
	errors := map[string]string{}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		errors["request"] = "Invalid request body!"
		return errors
	}

	for _, fieldError := range validationErrors {
		field := strings.ToLower(fieldError.Field()[:1]) + fieldError.Field()[1:]
		switch fieldError.Tag() {
		case "required":
			errors[field] = "This field is required!"
		case "email":
			errors[field] = "Invalid email!"
		case "min":
			errors[field] = "Value is below the minimum of " + fieldError.Param() + "!"
		case "max":
			errors[field] = "Value exceeds the maximum of " + fieldError.Param() + "!"
		case "oneof":
			errors[field] = "Must be one of: " + fieldError.Param() + "!"
		case "gtefield":
			errors[field] = "Must not be earlier than " + fieldError.Param() + "!"
		default:
			errors[field] = "Invalid value!"
		}
	}
	return errors
}
