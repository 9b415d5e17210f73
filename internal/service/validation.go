package service

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	msgRequired = "this field is required"
	msgInvalid  = "this field is invalid"
)

// NameInput is a candidate name/last name pair after normalization.
type NameInput struct {
	Name     string `json:"name"      validate:"required"`
	LastName string `json:"last_name" validate:"required"`
}

// ValidationError reports which input fields were rejected, keyed by their JSON/form field name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

// validate is safe for concurrent use and caches struct metadata.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report fields by their json name (name, last_name)
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateName trims both fields and requires each to be non-empty.
// Whitespace-only values are rejected. The returned strings never share
// memory with the arguments, which may point into a reused request buffer.
func ValidateName(name, lastName string) (NameInput, error) {
	in := NameInput{
		Name:     strings.Clone(strings.TrimSpace(name)),
		LastName: strings.Clone(strings.TrimSpace(lastName)),
	}

	if err := validate.Struct(in); err != nil {
		var vErrs validator.ValidationErrors
		if !errors.As(err, &vErrs) {
			return NameInput{}, fmt.Errorf("validate name: %w", err)
		}
		fields := make(map[string]string, len(vErrs))
		for _, fe := range vErrs {
			fields[fe.Field()] = fieldMessage(fe)
		}
		return NameInput{}, &ValidationError{Fields: fields}
	}
	return in, nil
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return msgRequired
	default:
		return msgInvalid
	}
}
