package validator

import (
	"fmt"
	"strings"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (fe FieldError) Error() string {
	return fmt.Sprintf("field %s: %s", fe.Field, fe.Message)
}

// ValidationError is rendered as the 400 body, so its JSON shape is part of the API.
type ValidationError struct {
	Errors []FieldError `json:"errors"`
}

func (ve ValidationError) Error() string {
	var errs []string
	for _, fe := range ve.Errors {
		errs = append(errs, fe.Error())
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(errs, ", "))
}

type Validator interface {
	Validate(s interface{}) error
}
