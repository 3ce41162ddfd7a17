// Package validation wraps go-playground/validator for request structs and
// adds the handful of domain checks that struct tags cannot express.
package validation

import (
	"fmt"
	"strings"

	"mabportal/internal/errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Struct validates a request struct against its `validate` tags and converts
// the first failure into a field-level domain error.
func Struct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
		fe := verrs[0]
		return errors.Validation(strings.ToLower(fe.Field()), tagMessage(fe))
	}
	return errors.Validation("request", "is invalid")
}

func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

// CommissionRate validates a percentage rate.
func CommissionRate(field string, rate float64) error {
	if rate < 0 || rate > 100 {
		return errors.Validation(field, "must be between 0 and 100")
	}
	return nil
}

// CustomerName validates the submitted customer name after trimming.
func CustomerName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.Validation("customer_name", "must not be empty")
	}
	return nil
}
