package usecase

import (
	"context"

	"github.com/DRSN-tech/catalog-backend/internal/domain"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/DRSN-tech/catalog-backend/pkg/logger"
	"github.com/google/uuid"
)

// CategoryUseCase реализует бизнес-логику управления категориями.
type CategoryUseCase struct {
	categoryRepo CategoryRepository
	logger       logger.Logger
}

func NewCategoryUC(categoryRepo CategoryRepository, logger logger.Logger) *CategoryUseCase {
	return &CategoryUseCase{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// Create создаёт категорию. Уникальность имени не проверяется.
func (c *CategoryUseCase) Create(ctx context.Context, req *CreateCategoryReq) (*domain.Category, error) {
	const op = "CategoryUseCase.Create"

	category, err := c.categoryRepo.Create(ctx, domain.NewCategory(req.Name, req.Description))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	c.logger.Infof("category created: id=%s name=%q", category.ID, category.Name)
	return category, nil
}

// Update перезаписывает имя и описание существующей категории.
func (c *CategoryUseCase) Update(ctx context.Context, req *UpdateCategoryReq) (*domain.Category, error) {
	const op = "CategoryUseCase.Update"

	category, err := c.getExisting(ctx, req.ID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	category.Name = req.Name
	category.Description = req.Description

	updated, err := c.categoryRepo.Update(ctx, category)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return updated, nil
}

// Delete удаляет категорию и возвращает её последний снимок.
// Категорию с продуктами отклоняет хранилище (ON DELETE RESTRICT).
func (c *CategoryUseCase) Delete(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	const op = "CategoryUseCase.Delete"

	category, err := c.getExisting(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	deleted, err := c.categoryRepo.Delete(ctx, category)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	c.logger.Infof("category deleted: id=%s", deleted.ID)
	return deleted, nil
}

// GetByID возвращает категорию вместе с продуктами или nil, если её нет.
func (c *CategoryUseCase) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	const op = "CategoryUseCase.GetByID"

	category, err := c.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return category, nil
}

// GetAll возвращает страницу категорий, отсортированных по имени.
func (c *CategoryUseCase) GetAll(ctx context.Context, req PaginationReq) (*PaginatedResult[domain.Category], error) {
	const op = "CategoryUseCase.GetAll"

	categories, total, err := c.categoryRepo.GetAll(ctx, req.PageNumber, req.PageSize)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewPaginatedResult(categories, total, req), nil
}

func (c *CategoryUseCase) getExisting(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	category, err := c.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if category == nil {
		return nil, e.ErrCategoryNotFound
	}

	return category, nil
}
