package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError is one entry of the validation-error list returned on 422.
type FieldError struct {
	Message string `json:"message"`
}

// CollectValidationErrors turns a gin binding failure into the ordered
// message list the API returns. A malformed body (not a field failure)
// still yields a single entry so the caller always sees the same shape.
func CollectValidationErrors(err error) []FieldError {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Message: "Invalid request body"}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Message: fieldMessage(fe)})
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	field := jsonFieldName(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "gte":
		return fmt.Sprintf("%s must be %s or greater", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// The validator reports struct field names; the API talks in the JSON
// casing the front end sends (brand, carModel, checkIndex, ...).
func jsonFieldName(structField string) string {
	if structField == "" {
		return structField
	}
	if structField == "ID" {
		return "_id"
	}
	if structField == "CarID" {
		return "carId"
	}
	if structField == "UserID" {
		return "userId"
	}
	return strings.ToLower(structField[:1]) + structField[1:]
}
