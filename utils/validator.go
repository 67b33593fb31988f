package utils

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct runs the struct's validate tags and returns the first
// violated rule's message, which route handlers surface as the 400 body.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return err
	}
	return fmt.Errorf("%s", ruleMessage(errs[0]))
}

func ruleMessage(fieldError validator.FieldError) string {
	field := fieldError.Field()
	switch fieldError.Tag() {
	case "required":
		return fmt.Sprintf("%q is required", field)
	case "email":
		return fmt.Sprintf("%q must be a valid email", field)
	case "min":
		return fmt.Sprintf("%q must be at least %s", field, fieldError.Param())
	case "max":
		return fmt.Sprintf("%q must be at most %s", field, fieldError.Param())
	case "oneof":
		return fmt.Sprintf("%q must be one of [%s]", field, fieldError.Param())
	default:
		return fmt.Sprintf("%q failed on the %q rule", field, fieldError.Tag())
	}
}
