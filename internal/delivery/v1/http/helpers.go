package http

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/DRSN-tech/catalog-backend/internal/usecase"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jimlawless/whereami"
	"github.com/shopspring/decimal"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
	maxPageSize     = 100
)

type ErrorResponse struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Details []ValidationError `json:"details,omitempty"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// Ошибки, текст которых можно отдавать клиенту как есть.
var publicErrors = []error{
	e.ErrProductNotFound,
	e.ErrCategoryNotFound,
	e.ErrCategoryReference,
	e.ErrExpectedMultipart,
	e.ErrExpectedJSON,
	e.ErrMissingFields,
	e.ErrInvalidID,
	e.ErrPricePrecision,
	e.ErrInvalidPrice,
	e.ErrInvalidPagination,
	e.ErrInvalidFilter,
	e.ErrFileTooLarge,
	e.ErrUnsupportedMediaType,
	e.ErrStatusBadRequest,
	e.ErrCategoryInUse,
}

// ToHTTPResponse выбирает HTTP-статус по виду ошибки.
func ToHTTPResponse(err error) (int, string) {
	var code int
	switch {
	case errors.Is(err, e.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, e.ErrInvalidArgument):
		code = http.StatusBadRequest
	case errors.Is(err, e.ErrConflict):
		code = http.StatusConflict
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}

	for _, known := range publicErrors {
		if errors.Is(err, known) {
			return code, known.Error()
		}
	}

	return code, strings.ToLower(http.StatusText(code))
}

func WriteError(w http.ResponseWriter, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		resp := NewErrorResponse(http.StatusBadRequest, "validation failed")
		resp.Details = FormatValidationErrors(verrs)
		WriteSuccess(w, http.StatusBadRequest, resp)
		return
	}

	code, msg := ToHTTPResponse(err)
	WriteSuccess(w, code, NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// parsePrice разбирает строку вида "599.99" или "600".
// Отрицательные значения, больше двух знаков после точки и значения сверх numeric(12,2) отклоняются.
func parsePrice(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, e.Wrap("price is empty", e.ErrMissingFields)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, e.ErrInvalidPrice
	}

	if d.IsNegative() {
		return decimal.Zero, e.ErrInvalidPrice
	}

	// numeric(12,2): не больше 10 цифр в целой части
	maxPrice := decimal.New(1, 10)
	if d.GreaterThanOrEqual(maxPrice) {
		return decimal.Zero, e.ErrInvalidPrice
	}

	if d.Exponent() < -2 && !d.Equal(d.Round(2)) {
		return decimal.Zero, e.ErrPricePrecision
	}

	return d.Round(2), nil
}

func parseUUID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, e.Wrap(s, e.ErrInvalidID)
	}

	return id, nil
}

func pathID(r *http.Request) (uuid.UUID, error) {
	return parseUUID(chi.URLParam(r, "id"))
}

// parsePagination читает page и page_size; по умолчанию 1 и 10, page_size не больше 100.
func parsePagination(r *http.Request) (usecase.PaginationReq, error) {
	page, err := parsePositiveInt(r.URL.Query().Get("page"), defaultPage)
	if err != nil {
		return usecase.PaginationReq{}, e.Wrap("page", e.ErrInvalidPagination)
	}

	size, err := parsePositiveInt(r.URL.Query().Get("page_size"), defaultPageSize)
	if err != nil || size > maxPageSize {
		return usecase.PaginationReq{}, e.Wrap("page_size", e.ErrInvalidPagination)
	}

	return usecase.NewPaginationReq(page, size), nil
}

func parsePositiveInt(s string, def int) (int, error) {
	if s == "" {
		return def, nil
	}

	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if v < 1 {
		return 0, strconv.ErrRange
	}

	return v, nil
}

// parseFilter собирает необязательные фильтры поиска из query-параметров.
func parseFilter(r *http.Request) (usecase.ProductFilter, error) {
	var filter usecase.ProductFilter
	q := r.URL.Query()

	if v := q.Get("category_id"); v != "" {
		id, err := parseUUID(v)
		if err != nil {
			return filter, err
		}
		filter.CategoryID = &id
	}

	if v := q.Get("min_price"); v != "" {
		d, err := parsePrice(v)
		if err != nil {
			return filter, e.Wrap("min_price", e.ErrInvalidFilter)
		}
		filter.MinPrice = &d
	}

	if v := q.Get("max_price"); v != "" {
		d, err := parsePrice(v)
		if err != nil {
			return filter, e.Wrap("max_price", e.ErrInvalidFilter)
		}
		filter.MaxPrice = &d
	}

	if filter.MinPrice != nil && filter.MaxPrice != nil && filter.MinPrice.GreaterThan(*filter.MaxPrice) {
		return filter, e.Wrap("min_price > max_price", e.ErrInvalidFilter)
	}

	if v := q.Get("is_active"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return filter, e.Wrap("is_active", e.ErrInvalidFilter)
		}
		filter.IsActive = &b
	}

	return filter, nil
}

func ensureMultipartForm(r *http.Request, maxMemory int64) error {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return e.Wrap(whereami.WhereAmI(), e.ErrExpectedMultipart)
	}

	if err := r.ParseMultipartForm(maxMemory); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return e.Wrap(whereami.WhereAmI(), e.ErrFileTooLarge)
		}
		return e.Wrap(err.Error(), e.ErrStatusBadRequest)
	}

	return nil
}

func ensureJSON(r *http.Request) error {
	ct := r.Header.Get("Content-Type")
	if ct != "" && !strings.HasPrefix(ct, "application/json") {
		return e.Wrap(whereami.WhereAmI(), e.ErrExpectedJSON)
	}

	return nil
}

// openImage возвращает изображение из части "image" или nil, если файл не передан.
// Вызывающий закрывает возвращённый файл.
func openImage(r *http.Request, maxSize int64) (*usecase.ProductImage, multipart.File, error) {
	file, fh, err := r.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil, nil
		}
		return nil, nil, e.Wrap(err.Error(), e.ErrStatusBadRequest)
	}

	if maxSize > 0 && fh.Size > maxSize {
		_ = file.Close()
		return nil, nil, e.Wrap(fh.Filename, e.ErrFileTooLarge)
	}

	var contentType *string
	if ct := fh.Header.Get("Content-Type"); ct != "" {
		contentType = &ct
	}

	return usecase.NewProductImage(file, fh.Size, fh.Filename, contentType), file, nil
}
