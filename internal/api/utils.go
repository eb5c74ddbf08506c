package api

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/tensorplex-labs/cutoff/internal/threshold"
)

// createResponse creates a StdResponse with the given body and error
func createResponse[T any](body T, err error) StdResponse[T] {
	if err != nil {
		errMsg := err.Error()
		return StdResponse[T]{
			Body:  body,
			Error: &errMsg,
		}
	}
	return StdResponse[T]{
		Body:  body,
		Error: nil,
	}
}

var badRequestErrors = []error{
	threshold.ErrLengthMismatch,
	threshold.ErrEmptyInput,
	threshold.ErrInvalidInput,
	threshold.ErrSingleClass,
	threshold.ErrInvalidGrid,
	threshold.ErrUnknownStrategy,
}

// statusFor maps a selection error to the HTTP status it is reported with.
func statusFor(err error) int {
	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			return fiber.StatusBadRequest
		}
	}
	return fiber.StatusInternalServerError
}

// extractValidationErrors reports the first failed field of a request.
func extractValidationErrors(err error) string {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		ve := validationErrors[0]
		return fmt.Sprintf("validation error: %s - %s", ve.Namespace(), ve.Tag())
	}
	return "validation error: invalid request"
}
