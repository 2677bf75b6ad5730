package utils

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"movies-api/internal/data/entity"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report json field names instead of Go struct field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterValidation("genre", isGenre)

	return v
}

// isGenre accepts exactly the tags listed in entity.Genres.
func isGenre(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	for _, g := range entity.Genres {
		if string(g) == value {
			return true
		}
	}
	return false
}

func genreList() string {
	names := make([]string, len(entity.Genres))
	for i, g := range entity.Genres {
		names[i] = string(g)
	}
	return strings.Join(names, ", ")
}

// FieldError is a single field-attributed validation issue.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrors is returned as an error when input fails validation.
type FieldErrors []FieldError

func (fe FieldErrors) Error() string {
	msgs := make([]string, 0, len(fe))
	for _, e := range fe {
		msgs = append(msgs, fmt.Sprintf("%s: %s", e.Field, e.Message))
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// ValidateStruct checks data against its validate tags. A nil result means valid.
func ValidateStruct(data interface{}) FieldErrors {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	var errors FieldErrors
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, err := range validationErrors {
			errors = append(errors, FieldError{
				Field:   err.Field(),
				Message: getErrorMessage(err),
			})
		}
	} else {
		errors = append(errors, FieldError{Field: "", Message: err.Error()})
	}

	sort.SliceStable(errors, func(i, j int) bool {
		return errors[i].Field < errors[j].Field
	})

	return errors
}

// converts validator errors to human-readable messages
func getErrorMessage(err validator.FieldError) string {
	isCollection := err.Kind() == reflect.Slice || err.Kind() == reflect.Array

	switch err.Tag() {
	case "required":
		return "This field is required"
	case "min":
		if isCollection {
			return fmt.Sprintf("Must contain at least %s item(s)", err.Param())
		}
		return fmt.Sprintf("Minimum length is %s", err.Param())
	case "max":
		if isCollection {
			return fmt.Sprintf("Must contain at most %s item(s)", err.Param())
		}
		if isNumber(err.Kind()) {
			return fmt.Sprintf("Must be at most %s", err.Param())
		}
		return fmt.Sprintf("Maximum length is %s", err.Param())
	case "gt":
		return fmt.Sprintf("Must be greater than %s", err.Param())
	case "gte":
		return fmt.Sprintf("Must be greater than or equal to %s", err.Param())
	case "lte":
		return fmt.Sprintf("Must be less than or equal to %s", err.Param())
	case "url":
		return "Must be a valid URL"
	case "oneof":
		options := strings.ReplaceAll(err.Param(), " ", ", ")
		return fmt.Sprintf("Must be one of: %s", options)
	case "genre":
		return fmt.Sprintf("Must be one of: %s", genreList())
	case "uuid", "uuid4":
		return "Must be a valid UUID"
	default:
		return fmt.Sprintf("Invalid %s field", err.Field())
	}
}

func isNumber(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
