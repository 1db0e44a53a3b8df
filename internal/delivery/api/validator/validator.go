// Package validator adapts go-playground/validator to echo.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// Validator implements echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// New creates a validator that reports fields by their json name.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	return &Validator{validate: v}
}

// Validate runs the struct tags of i.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			return &ValidationError{Fields: describe(fieldErrs)}
		}

		return errors.WithStack(err)
	}

	return nil
}

// ValidationError lists the failing fields as "field: rule" entries.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Fields, "; ")
}

func describe(errs validator.ValidationErrors) []string {
	fields := make([]string, 0, len(errs))
	for _, fe := range errs {
		field := fe.Namespace()
		// Drop the top-level struct name.
		if idx := strings.Index(field, "."); idx >= 0 {
			field = field[idx+1:]
		}
		if fe.Param() != "" {
			fields = append(fields, fmt.Sprintf("%s: %s=%s", field, fe.Tag(), fe.Param()))

			continue
		}
		fields = append(fields, fmt.Sprintf("%s: %s", field, fe.Tag()))
	}

	return fields
}
