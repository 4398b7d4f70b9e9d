package validators

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validate is a type alias for validator.Validate.
type Validate = validator.Validate

// ValidationErrors is a type alias for validator.ValidationErrors.
type ValidationErrors = validator.ValidationErrors

// FieldError is a type alias for validator.FieldError.
type FieldError = validator.FieldError

// New creates a new validator instance. FieldError.Field reports the name from a `param` tag
// when the struct field has one, e.g. the query parameter a value was bound from.
func New() *Validate {
	v := validator.New()
	v.RegisterTagNameFunc(paramName)
	return v
}

func paramName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("param"), ",")
	if name == "" {
		return field.Name
	}
	return name
}
