package presenters

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, data interface{}, status int, message string) error {
	return c.Status(status).JSON(Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	resp := Response{
		Success: false,
		Message: message,
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		status = fiber.StatusUnprocessableEntity
		resp.Errors = validationErrorMap(validationErrs)
	} else if err != nil {
		resp.Errors = err.Error()
	}
	return c.Status(status).JSON(resp)
}

// ValidationResponse renders field-level validation failures as 422 with a
// field -> problem map.
func ValidationResponse(c *fiber.Ctx, message string, err error) error {
	return ErrorResponse(c, fiber.StatusUnprocessableEntity, message, err)
}

func validationErrorMap(errs validator.ValidationErrors) map[string]string {
	fields := make(map[string]string, len(errs))
	for _, fieldErr := range errs {
		fields[fieldErr.Field()] = validationMessage(fieldErr)
	}
	return fields
}

func validationMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "must be a valid email address"
	case "uuid":
		return "must be a valid UUID"
	case "url":
		return "must be a valid URL"
	case "min":
		return "must be at least " + fieldErr.Param()
	case "max":
		return "must be at most " + fieldErr.Param()
	case "gt":
		return "must be greater than " + fieldErr.Param()
	case "oneof":
		return "must be one of: " + fieldErr.Param()
	default:
		return "failed validation on " + fieldErr.Tag()
	}
}
