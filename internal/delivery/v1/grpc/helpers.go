package grpc

import (
	"errors"
	"strings"
	"time"

	"github.com/DRSN-tech/catalog-backend/internal/domain"
	"github.com/DRSN-tech/catalog-backend/internal/proto"
	"github.com/DRSN-tech/catalog-backend/internal/usecase"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
	maxPageSize     = 100
)

// Ошибки, текст которых отдаётся клиенту.
var publicErrors = []error{
	e.ErrProductNotFound,
	e.ErrCategoryNotFound,
	e.ErrCategoryReference,
	e.ErrCategoryInUse,
	e.ErrInvalidID,
	e.ErrInvalidPagination,
	e.ErrInvalidFilter,
}

func GRPCErrorResponse(err error) error {
	var (
		code codes.Code
		kind error
	)
	switch {
	case errors.Is(err, e.ErrNotFound):
		code, kind = codes.NotFound, e.ErrNotFound
	case errors.Is(err, e.ErrInvalidArgument):
		code, kind = codes.InvalidArgument, e.ErrInvalidArgument
	case errors.Is(err, e.ErrConflict):
		code, kind = codes.FailedPrecondition, e.ErrConflict
	default:
		return status.Error(codes.Internal, e.ErrInternalServerError.Error())
	}

	for _, known := range publicErrors {
		if errors.Is(err, known) {
			return status.Error(code, known.Error())
		}
	}

	return status.Error(code, kind.Error())
}

func parseID(raw, field string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, e.Wrap(field, e.ErrInvalidID)
	}

	return id, nil
}

// pagination подставляет значения по умолчанию только для отсутствующих полей: явный 0 — ошибка.
func pagination(page, size *int32) (usecase.PaginationReq, error) {
	p, ps := defaultPage, defaultPageSize
	if page != nil {
		p = int(*page)
	}
	if size != nil {
		ps = int(*size)
	}

	if p < 1 || ps < 1 || ps > maxPageSize {
		return usecase.PaginationReq{}, e.ErrInvalidPagination
	}

	return usecase.NewPaginationReq(p, ps), nil
}

func priceFilter(raw *string, field string) (*decimal.Decimal, error) {
	if raw == nil {
		return nil, nil
	}

	d, err := decimal.NewFromString(strings.TrimSpace(*raw))
	if err != nil || d.IsNegative() {
		return nil, e.Wrap(field, e.ErrInvalidFilter)
	}

	return &d, nil
}

func productFilter(req *proto.SearchProductsRequest) (usecase.ProductFilter, error) {
	var (
		filter usecase.ProductFilter
		err    error
	)

	if req.CategoryId != nil {
		catID, err := parseID(*req.CategoryId, "category_id")
		if err != nil {
			return filter, err
		}
		filter.CategoryID = &catID
	}

	if filter.MinPrice, err = priceFilter(req.MinPrice, "min_price"); err != nil {
		return filter, err
	}
	if filter.MaxPrice, err = priceFilter(req.MaxPrice, "max_price"); err != nil {
		return filter, err
	}
	if filter.MinPrice != nil && filter.MaxPrice != nil && filter.MinPrice.GreaterThan(*filter.MaxPrice) {
		return filter, e.Wrap("min_price > max_price", e.ErrInvalidFilter)
	}

	if req.IsActive != nil {
		active := *req.IsActive
		filter.IsActive = &active
	}

	return filter, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func toProduct(p *usecase.ProductInfo) *proto.Product {
	res := &proto.Product{
		Id:            p.ID.String(),
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price.StringFixed(2),
		StockQuantity: int32(p.StockQuantity),
		IsActive:      p.IsActive,
		CategoryId:    p.CategoryID.String(),
		CategoryName:  p.CategoryName,
		ImageUrl:      p.ImageURL,
		CreatedAt:     formatTime(p.CreatedAt),
	}
	if p.UpdatedAt != nil {
		updated := formatTime(*p.UpdatedAt)
		res.UpdatedAt = &updated
	}

	return res
}

func toProducts(items []usecase.ProductInfo) []*proto.Product {
	res := make([]*proto.Product, 0, len(items))
	for i := range items {
		res = append(res, toProduct(&items[i]))
	}

	return res
}

func toCategory(c *domain.Category) *proto.Category {
	res := &proto.Category{
		Id:          c.ID.String(),
		Name:        c.Name,
		Description: c.Description,
	}

	for i := range c.Products {
		res.Products = append(res.Products, toProduct(usecase.NewProductInfo(&c.Products[i], c.Name)))
	}

	return res
}

func toCategories(items []domain.Category) []*proto.Category {
	res := make([]*proto.Category, 0, len(items))
	for i := range items {
		res = append(res, toCategory(&items[i]))
	}

	return res
}
