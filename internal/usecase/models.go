package usecase

import (
	"io"
	"time"

	"github.com/DRSN-tech/catalog-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CATEGORY USECASE

// CreateCategoryReq — запрос на создание категории.
type CreateCategoryReq struct {
	Name        string
	Description *string
}

// UpdateCategoryReq — запрос на обновление категории. Все поля заменяются целиком.
type UpdateCategoryReq struct {
	ID          uuid.UUID
	Name        string
	Description *string
}

// PRODUCT USECASE

// CreateProductReq — запрос на добавление нового продукта.
type CreateProductReq struct {
	Name          string
	Description   string
	Price         decimal.Decimal
	StockQuantity int
	CategoryID    uuid.UUID
	IsActive      bool
}

// UpdateProductReq — запрос на обновление продукта.
type UpdateProductReq struct {
	ID            uuid.UUID
	Name          string
	Description   string
	Price         decimal.Decimal
	StockQuantity int
	IsActive      bool
	CategoryID    uuid.UUID
	RemoveImage   bool
}

// ProductImage — изображение продукта, полученное из multipart/form-data.
type ProductImage struct {
	Reader      io.Reader
	Size        int64   // -1, если размер неизвестен
	FileName    string  // оригинальное имя файла
	ContentType *string // Content-Type из multipart
}

// ProductFilter — необязательные фильтры, объединяемые через AND.
type ProductFilter struct {
	CategoryID *uuid.UUID
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	IsActive   *bool
}

// ProductInfo — DTO с информацией о продукте для внешнего использования.
type ProductInfo struct {
	ID            uuid.UUID
	Name          string
	Description   string
	Price         decimal.Decimal
	StockQuantity int
	IsActive      bool
	CategoryID    uuid.UUID
	CategoryName  string
	ImageURL      *string
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}

// MAPPERS

func NewCreateCategoryReq(name string, description *string) *CreateCategoryReq {
	return &CreateCategoryReq{
		Name:        name,
		Description: description,
	}
}

func NewUpdateCategoryReq(id uuid.UUID, name string, description *string) *UpdateCategoryReq {
	return &UpdateCategoryReq{
		ID:          id,
		Name:        name,
		Description: description,
	}
}

func NewProductImage(reader io.Reader, size int64, fileName string, contentType *string) *ProductImage {
	return &ProductImage{
		Reader:      reader,
		Size:        size,
		FileName:    fileName,
		ContentType: contentType,
	}
}

func NewProductInfo(p *domain.Product, categoryName string) *ProductInfo {
	return &ProductInfo{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		StockQuantity: p.StockQuantity,
		IsActive:      p.IsActive,
		CategoryID:    p.CategoryID,
		CategoryName:  categoryName,
		ImageURL:      p.ImageURL,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
