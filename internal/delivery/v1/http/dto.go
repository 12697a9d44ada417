package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/DRSN-tech/catalog-backend/internal/domain"
	"github.com/DRSN-tech/catalog-backend/internal/usecase"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryRequest — тело запроса создания и обновления категории.
type CategoryRequest struct {
	Name        string  `json:"name" validate:"required,max=150"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
}

func (c *CategoryRequest) normalize() {
	c.Name = strings.TrimSpace(c.Name)
}

// ProductForm — поля multipart-формы продукта, кроме цены и изображения.
type ProductForm struct {
	Name          string `form:"name" validate:"required,max=200"`
	Description   string `form:"description" validate:"required,max=2000"`
	StockQuantity int    `form:"stock_quantity" validate:"gte=0"`
	CategoryID    string `form:"category_id" validate:"required,uuid"`
	IsActive      bool   `form:"is_active"`
	RemoveImage   bool   `form:"remove_image"`

	price decimal.Decimal
}

// parseProductForm читает поля формы. stock_quantity по умолчанию 0, is_active по умолчанию true.
func parseProductForm(r *http.Request) (*ProductForm, error) {
	form := &ProductForm{
		Name:        strings.TrimSpace(r.FormValue("name")),
		Description: r.FormValue("description"),
		CategoryID:  strings.TrimSpace(r.FormValue("category_id")),
		IsActive:    true,
	}

	if v := strings.TrimSpace(r.FormValue("stock_quantity")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, e.Wrap("stock_quantity", e.ErrStatusBadRequest)
		}
		form.StockQuantity = n
	}

	for field, dst := range map[string]*bool{"is_active": &form.IsActive, "remove_image": &form.RemoveImage} {
		if v := strings.TrimSpace(r.FormValue(field)); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return nil, e.Wrap(field, e.ErrStatusBadRequest)
			}
			*dst = b
		}
	}

	if err := validate.Struct(form); err != nil {
		return nil, err
	}

	price, err := parsePrice(r.FormValue("price"))
	if err != nil {
		return nil, err
	}
	form.price = price

	return form, nil
}

func (f *ProductForm) categoryID() uuid.UUID {
	// формат уже проверен тегом uuid
	return uuid.MustParse(f.CategoryID)
}

func (f *ProductForm) toCreateReq() *usecase.CreateProductReq {
	return &usecase.CreateProductReq{
		Name:          f.Name,
		Description:   f.Description,
		Price:         f.price,
		StockQuantity: f.StockQuantity,
		CategoryID:    f.categoryID(),
		IsActive:      f.IsActive,
	}
}

func (f *ProductForm) toUpdateReq(id uuid.UUID) *usecase.UpdateProductReq {
	return &usecase.UpdateProductReq{
		ID:            id,
		Name:          f.Name,
		Description:   f.Description,
		Price:         f.price,
		StockQuantity: f.StockQuantity,
		IsActive:      f.IsActive,
		CategoryID:    f.categoryID(),
		RemoveImage:   f.RemoveImage,
	}
}

type ProductResponse struct {
	ID            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	Price         string     `json:"price" example:"499.90"`
	StockQuantity int        `json:"stock_quantity"`
	IsActive      bool       `json:"is_active"`
	CategoryID    uuid.UUID  `json:"category_id"`
	CategoryName  string     `json:"category_name"`
	ImageURL      *string    `json:"image_url,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}

type CategoryResponse struct {
	ID          uuid.UUID         `json:"id"`
	Name        string            `json:"name"`
	Description *string           `json:"description,omitempty"`
	Products    []ProductResponse `json:"products,omitempty"`
}

type PageResponse[T any] struct {
	Data        []T  `json:"data"`
	TotalCount  int  `json:"total_count"`
	CurrentPage int  `json:"current_page"`
	PageSize    int  `json:"page_size"`
	HasNext     bool `json:"has_next"`
}

func toProductResponse(p *usecase.ProductInfo) ProductResponse {
	return ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price.StringFixed(2),
		StockQuantity: p.StockQuantity,
		IsActive:      p.IsActive,
		CategoryID:    p.CategoryID,
		CategoryName:  p.CategoryName,
		ImageURL:      p.ImageURL,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func toProductResponses(items []usecase.ProductInfo) []ProductResponse {
	result := make([]ProductResponse, 0, len(items))
	for i := range items {
		result = append(result, toProductResponse(&items[i]))
	}

	return result
}

func toCategoryResponse(c *domain.Category) CategoryResponse {
	resp := CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
	}

	if len(c.Products) > 0 {
		resp.Products = make([]ProductResponse, 0, len(c.Products))
		for i := range c.Products {
			resp.Products = append(resp.Products, toProductResponse(usecase.NewProductInfo(&c.Products[i], c.Name)))
		}
	}

	return resp
}

func toPageResponse[S, T any](res *usecase.PaginatedResult[S], conv func(*S) T) PageResponse[T] {
	data := make([]T, 0, len(res.Data))
	for i := range res.Data {
		data = append(data, conv(&res.Data[i]))
	}

	return PageResponse[T]{
		Data:        data,
		TotalCount:  res.TotalCount,
		CurrentPage: res.CurrentPage,
		PageSize:    res.PageSize,
		HasNext:     res.HasNext,
	}
}
