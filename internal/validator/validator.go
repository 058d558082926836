package validator

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/carnicero52/CONTRATA2/pkg/model"
	"github.com/go-playground/validator/v10"
)

// ValidationError maps json field names to a readable message.
type ValidationError struct {
	Errors map[string]string
	// tag that failed per field
	tags map[string]string
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Errors))
	for field := range e.Errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	msgs := make([]string, 0, len(fields))
	for _, field := range fields {
		msgs = append(msgs, fmt.Sprintf("field '%s': %s", field, e.Errors[field]))
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// MissingRequired reports whether any field failed the required rule.
func (e *ValidationError) MissingRequired() bool {
	for _, tag := range e.tags {
		if tag == "required" {
			return true
		}
	}
	return false
}

type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New()

	// report json names instead of Go field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("candidate_status", func(fl validator.FieldLevel) bool {
		return model.CandidateStatus(fl.Field().String()).Valid()
	}); err != nil {
		panic(fmt.Sprintf("register candidate_status rule: %v", err))
	}

	return &Validator{validate: v}
}

// Validate returns *ValidationError when i breaks one of its validate tags.
func (v *Validator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	out := &ValidationError{
		Errors: make(map[string]string, len(validationErrors)),
		tags:   make(map[string]string, len(validationErrors)),
	}
	for _, fe := range validationErrors {
		out.Errors[fe.Field()] = errorMessage(fe)
		out.tags[fe.Field()] = fe.Tag()
	}
	return out
}

func errorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Must be a valid email address"
	case "min":
		if fe.Kind() == reflect.String || fe.Kind() == reflect.Slice {
			return fmt.Sprintf("Must be at least %s items/characters long", fe.Param())
		}
		return fmt.Sprintf("Must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s", fe.Param())
	case "candidate_status":
		return "Must be one of: nuevo, revisado, contactado, rechazado"
	default:
		return fmt.Sprintf("Invalid value (failed on '%s' tag)", fe.Tag())
	}
}
