package utils

import (
	"Fitness-Coach-API/domain"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

func InitValidator() {
	Validate = NewValidator()
}

// NewValidator reports fields by their json names so error paths match the
// request body.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// FieldErrors flattens a validator or json decoding error into per-field
// entries. It returns nil for any other error.
func FieldErrors(err error) []domain.FieldError {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		out := make([]domain.FieldError, 0, len(validationErrs))
		for _, fe := range validationErrs {
			out = append(out, domain.FieldError{
				Field:   fieldPath(fe.Namespace()),
				Tag:     fe.Tag(),
				Param:   fe.Param(),
				Message: fieldMessage(fe),
			})
		}
		return out
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return []domain.FieldError{{
			Field:   typeErr.Field,
			Tag:     "type",
			Param:   typeErr.Type.String(),
			Message: fmt.Sprintf("must be of type %s, got %s", typeErr.Type, typeErr.Value),
		}}
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return []domain.FieldError{{
			Field:   "body",
			Tag:     "json",
			Message: syntaxErr.Error(),
		}}
	}

	return nil
}

// fieldPath drops the root struct name: "LogMealRequest.items[0].name" -> "items[0].name".
func fieldPath(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "lte":
		return "must be less than or equal to " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	default:
		return fmt.Sprintf("failed on the '%s' validation", fe.Tag())
	}
}
