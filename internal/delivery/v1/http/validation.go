package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// В ошибках используем имена полей из тегов json/form.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return f.Name
	})

	return v
}

// ValidationError описывает ошибку одного поля запроса.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// decodeAndValidate читает JSON-тело запроса и проверяет его тегами validate.
func decodeAndValidate(r *http.Request, v any) error {
	if err := ensureJSON(r); err != nil {
		return err
	}

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return e.Wrap("empty body", e.ErrMissingFields)
		}
		return e.Wrap(err.Error(), e.ErrStatusBadRequest)
	}

	return validate.Struct(v)
}

// FormatValidationErrors переводит ошибки validator в читаемый вид.
func FormatValidationErrors(errs validator.ValidationErrors) []ValidationError {
	result := make([]ValidationError, 0, len(errs))
	for _, fe := range errs {
		result = append(result, ValidationError{
			Field:   fe.Field(),
			Message: validationMessage(fe),
		})
	}

	return result
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field is required"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "uuid":
		return "must be a valid uuid"
	case "url":
		return "must be a valid url"
	default:
		return "invalid value"
	}
}
