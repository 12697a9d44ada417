package usecase

import (
	"context"

	"github.com/DRSN-tech/catalog-backend/internal/domain"
	"github.com/google/uuid"
)

type CategoryUC interface {
	Create(ctx context.Context, req *CreateCategoryReq) (*domain.Category, error)
	Update(ctx context.Context, req *UpdateCategoryReq) (*domain.Category, error)
	Delete(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	GetAll(ctx context.Context, req PaginationReq) (*PaginatedResult[domain.Category], error)
}

type ProductUC interface {
	Create(ctx context.Context, req *CreateProductReq, image *ProductImage) (*ProductInfo, error)
	Update(ctx context.Context, req *UpdateProductReq, image *ProductImage) (*ProductInfo, error)
	Delete(ctx context.Context, id uuid.UUID) (*ProductInfo, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ProductInfo, error)
	GetByFilters(ctx context.Context, filter ProductFilter) ([]ProductInfo, error)
	GetAll(ctx context.Context, req PaginationReq) (*PaginatedResult[ProductInfo], error)
}
