package validator

import (
	"github.com/go-playground/validator/v10"

	"github.com/foodbazar/retail-api/pkg/apperror"
)

var validate = validator.New()

// ValidateStruct validates the struct's `validate` tags and maps failures to
// field errors suitable for the API response envelope.
func ValidateStruct(data interface{}) []apperror.FieldError {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}
	var fieldErrors []apperror.FieldError
	for _, fe := range err.(validator.ValidationErrors) {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field:   fe.Field(),
			Message: messageFor(fe),
		})
	}
	return fieldErrors
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	case "min":
		return "must have at least " + fe.Param() + " entries"
	case "oneof":
		return "must be one of: " + fe.Param()
	default:
		return "failed validation: " + fe.Tag()
	}
}
