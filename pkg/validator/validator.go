package validator

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()

	// Report json names when present so handlers echo the request field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	return &CustomValidator{
		validator: v,
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// FieldError is implemented by domain errors that reject a single field
type FieldError interface {
	error
	InvalidField() string
	Reason() string
}

// FirstFieldError returns the field name and message of the first struct
// validation failure in err.
func FirstFieldError(err error) (field, message string, ok bool) {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		e := validationErrors[0]
		return e.Field(), tagMessage(e), true
	}
	return "", "", false
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	formatted := make(map[string]string)

	var fieldErr FieldError
	if errors.As(err, &fieldErr) {
		formatted[fieldErr.InvalidField()] = fieldErr.InvalidField() + " " + fieldErr.Reason()
		return formatted
	}

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			formatted[e.Field()] = e.Field() + " " + tagMessage(e)
		}
	}

	return formatted
}

func tagMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of " + e.Param()
	case "min":
		return "must be at least " + e.Param() + " characters"
	case "max":
		return "must be at most " + e.Param() + " characters"
	case "gte":
		return "must be greater than or equal to " + e.Param()
	case "lte":
		return "must be less than or equal to " + e.Param()
	case "datetime":
		return "must match the format " + e.Param()
	default:
		return "is invalid"
	}
}
