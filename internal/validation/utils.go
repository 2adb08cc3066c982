package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/deppfellow/go-todo/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validatable is implemented by request payloads that validate themselves.
type Validatable interface {
	Validate() error
}

// CustomValidationError is a validation issue that struct tags cannot express.
type CustomValidationError struct {
	Field   string
	Message string
}

// CustomValidationErrors is a slice of custom validation errors that satisfies error.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

// BindAndValidate binds path parameters and the body into payload, which
// must be a pointer, then validates it.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		return bindError(err)
	}

	if msg, fieldErrors := validateStruct(payload); fieldErrors != nil {
		return errs.NewBadRequestError(msg, true, nil, fieldErrors, nil)
	} else if msg != "" {
		return errs.ValidationError(errors.New(msg))
	}

	return nil
}

// bindError turns an echo binding failure into a 400 without leaking
// decoder internals.
func bindError(err error) *errs.HTTPError {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		// Field is a dotted path that names embedded structs too; the
		// client only knows the JSON key.
		field := strings.ToLower(typeErr.Field)
		field = field[strings.LastIndex(field, ".")+1:]
		return errs.NewBadRequestError(
			fmt.Sprintf("Invalid value for %s", field),
			true, nil,
			[]errs.FieldError{{Field: field, Error: fmt.Sprintf("must be %s", typeErr.Type.String())}},
			nil,
		)
	}

	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		return errs.NewBadRequestError(fmt.Sprintf("Invalid path parameter %q", numErr.Num), true, nil, nil, nil)
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) && echoErr.Code == http.StatusUnsupportedMediaType {
		return errs.NewBadRequestError("Unsupported content type, expected application/json", true, nil, nil, nil)
	}

	return errs.NewBadRequestError("Request body is malformed", true, nil, nil, nil)
}

// validateStruct returns field errors when v fails validation. An error that
// carries no field information comes back as a message with nil fields.
func validateStruct(v Validatable) (string, []errs.FieldError) {
	err := v.Validate()
	if err == nil {
		return "", nil
	}
	return extractValidationError(err)
}

func extractValidationError(err error) (string, []errs.FieldError) {
	var custom CustomValidationErrors
	if errors.As(err, &custom) {
		fieldErrors := make([]errs.FieldError, 0, len(custom))
		for _, e := range custom {
			fieldErrors = append(fieldErrors, errs.FieldError{Field: e.Field, Error: e.Message})
		}
		return "Validation failed", fieldErrors
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error(), nil
	}

	fieldErrors := make([]errs.FieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		field := strings.ToLower(fe.Field())

		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: field,
			Error: fieldMessage(fe, field),
		})
	}

	return "Validation failed", fieldErrors
}

func fieldMessage(fe validator.FieldError, field string) string {
	switch fe.Tag() {
	case "required":
		if fe.Type().Kind() == reflect.String {
			return "can not be empty"
		}
		return "is required"

	case "min":
		if fe.Type().Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())

	case "max":
		if fe.Type().Kind() == reflect.String {
			return fmt.Sprintf("must not exceed %s characters", fe.Param())
		}
		return fmt.Sprintf("must not exceed %s", fe.Param())

	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())

	default:
		if fe.Param() != "" {
			return fmt.Sprintf("%s: %s:%s", field, fe.Tag(), fe.Param())
		}
		return fmt.Sprintf("%s: %s", field, fe.Tag())
	}
}
