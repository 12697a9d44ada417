package e

import (
	"errors"
	"fmt"
)

// Виды ошибок. Конкретные ошибки оборачивают один из них,
// поэтому слой доставки проверяет вид через errors.Is.
var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrConflict        = errors.New("conflict")
)

var (
	// Внутренние ошибки
	ErrInternalServerError  = fmt.Errorf("internal server error")
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")

	// 404 Not Found
	ErrProductNotFound  = fmt.Errorf("product %w", ErrNotFound)
	ErrCategoryNotFound = fmt.Errorf("category %w", ErrNotFound)

	// 400 Bad Request
	ErrCategoryReference    = fmt.Errorf("%w: category does not exist", ErrInvalidArgument)
	ErrStatusBadRequest     = fmt.Errorf("%w: bad request", ErrInvalidArgument)
	ErrExpectedMultipart    = fmt.Errorf("%w: expected multipart/form-data", ErrInvalidArgument)
	ErrExpectedJSON         = fmt.Errorf("%w: expected application/json", ErrInvalidArgument)
	ErrMissingFields        = fmt.Errorf("%w: missing required fields", ErrInvalidArgument)
	ErrInvalidID            = fmt.Errorf("%w: invalid id", ErrInvalidArgument)
	ErrInvalidPrice         = fmt.Errorf("%w: invalid price", ErrInvalidArgument)
	ErrPricePrecision       = fmt.Errorf("%w: price must have at most 2 decimal places", ErrInvalidArgument)
	ErrInvalidPagination    = fmt.Errorf("%w: invalid pagination", ErrInvalidArgument)
	ErrInvalidFilter        = fmt.Errorf("%w: invalid filter", ErrInvalidArgument)
	ErrFileTooLarge         = fmt.Errorf("%w: file too large", ErrInvalidArgument)
	ErrUnsupportedMediaType = fmt.Errorf("%w: unsupported media type", ErrInvalidArgument)

	// 409 Conflict
	ErrCategoryInUse = fmt.Errorf("%w: category still has products", ErrConflict)
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
