package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// codePattern accepts the catalog codes used in paths and filters.
var codePattern = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()
	v.RegisterValidation("code", func(fl validator.FieldLevel) bool {
		return codePattern.MatchString(fl.Field().String())
	})
	return &CustomValidator{
		validator: v,
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				errors[field] = field + " is required"
			case "max":
				errors[field] = field + " must be at most " + e.Param() + " characters"
			case "code":
				errors[field] = field + " may only contain letters, digits, '.', '_' and '-'"
			default:
				errors[field] = field + " is invalid"
			}
		}
	}

	return errors
}
