package usecase

import (
	"context"
	"time"

	"github.com/DRSN-tech/catalog-backend/internal/domain"
	"github.com/google/uuid"
)

// CategoryRepository — порт доступа к категориям.
// GetByID возвращает nil, nil, если категории нет.
type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) (*domain.Category, error)
	Update(ctx context.Context, category *domain.Category) (*domain.Category, error)
	Delete(ctx context.Context, category *domain.Category) (*domain.Category, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	// GetName читает только имя категории, без продуктов; ok=false, если записи нет.
	GetName(ctx context.Context, id uuid.UUID) (name string, ok bool, err error)
	GetAll(ctx context.Context, pageNumber, pageSize int) ([]domain.Category, int, error)
}

// ProductRepository — порт доступа к продуктам. Чтения заполняют Product.Category.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, product *domain.Product) (*domain.Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	GetAll(ctx context.Context, pageNumber, pageSize int) ([]domain.Product, int, error)
	GetByFilters(ctx context.Context, filter ProductFilter) ([]domain.Product, error)
}

type ImageRepository interface {
	Upload(ctx context.Context, image *domain.Image) (string, error)
	Delete(ctx context.Context, key string) error
}

type OutboxRepository interface {
	Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, id int64) error
	// MarkAsPending возвращает событие в очередь не раньше чем через retryAfter.
	MarkAsPending(ctx context.Context, id int64, retryAfter time.Duration, reason string) error
	MarkAsFailed(ctx context.Context, id int64, reason string) error
	RequeueStale(ctx context.Context, olderThan time.Duration) (int64, error)
}
