package utils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func ValidateStruct(s any) error {
	return validate.Struct(s)
}

// GetValidationErrors flattens validator errors into field -> message pairs
// suitable for the error envelope.
func GetValidationErrors(err error) map[string]string {
	errs := make(map[string]string)

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		errs["error"] = err.Error()
		return errs
	}

	for _, fieldErr := range validationErrors {
		field := fieldErr.Field()
		errs[field] = validationMessage(fieldErr)
	}

	return errs
}

// ValidationErrorMessage joins all field messages into a single line.
func ValidationErrorMessage(err error) string {
	fieldErrs := GetValidationErrors(err)
	parts := make([]string, 0, len(fieldErrs))
	for _, msg := range fieldErrs {
		parts = append(parts, msg)
	}
	return strings.Join(parts, ", ")
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "len":
		return fmt.Sprintf("%s must be %s characters", fe.Field(), fe.Param())
	case "numeric":
		return fmt.Sprintf("%s must be numeric", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
