package validator

import (
	"blog/internal/platform/validator"
	"errors"
	"fmt"
	"reflect"
	"strings"

	playground "github.com/go-playground/validator/v10"
)

type playgroundValidator struct {
	validate *playground.Validate
}

func NewPlaygroundAdapter() validator.Validator {
	validate := playground.New()
	validate.RegisterTagNameFunc(jsonFieldName)
	return &playgroundValidator{
		validate: validate,
	}
}

// jsonFieldName reports fields under the name clients send them as.
func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return strings.ToLower(field.Name)
	}
	return name
}

func (v *playgroundValidator) Validate(s interface{}) error {
	if err := v.validate.Struct(s); err != nil {
		var validationErrors playground.ValidationErrors
		if errors.As(err, &validationErrors) {
			outErrors := make([]validator.FieldError, len(validationErrors))
			for i, fe := range validationErrors {
				outErrors[i] = validator.FieldError{
					Field:   fe.Field(),
					Message: getValidationErrorMessage(fe),
				}
			}
			return validator.ValidationError{Errors: outErrors}
		}
		return err
	}
	return nil
}

func getValidationErrorMessage(e playground.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "max":
		return fmt.Sprintf("This field must be at most %s characters long", e.Param())
	case "min":
		return fmt.Sprintf("This field must be at least %s characters long", e.Param())
	default:
		return fmt.Sprintf("This field failed on the '%s' tag", e.Tag())
	}
}
