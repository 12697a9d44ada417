package usecase

import (
	"context"
	"time"

	"github.com/DRSN-tech/catalog-backend/internal/domain"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/DRSN-tech/catalog-backend/pkg/logger"
	"github.com/google/uuid"
)

// ProductUseCase реализует бизнес-логику управления продуктами.
type ProductUseCase struct {
	productRepo  ProductRepository
	categoryRepo CategoryRepository
	outboxRepo   OutboxRepository
	txManager    TxManager
	imagesInfra  ImagesInfra
	logger       logger.Logger
	now          func() time.Time
}

func NewProductUC(
	productRepo ProductRepository,
	categoryRepo CategoryRepository,
	outboxRepo OutboxRepository,
	txManager TxManager,
	imagesInfra ImagesInfra,
	logger logger.Logger,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		outboxRepo:   outboxRepo,
		txManager:    txManager,
		imagesInfra:  imagesInfra,
		logger:       logger,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// Create добавляет продукт. Категория должна существовать, изображение необязательно.
func (p *ProductUseCase) Create(ctx context.Context, req *CreateProductReq, image *ProductImage) (*ProductInfo, error) {
	const op = "ProductUseCase.Create"

	categoryName, err := p.referencedCategory(ctx, req.CategoryID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	product := domain.NewProduct(req.Name, req.Description, req.Price, req.StockQuantity, req.IsActive, req.CategoryID)
	product.CreatedAt = p.now()

	// Загрузка изображения идёт до записи в БД; при неудачной записи объект остаётся в бакете.
	if image != nil {
		url, err := p.imagesInfra.UploadImage(ctx, image)
		if err != nil {
			return nil, e.Wrap(op, err)
		}
		product.ImageURL = &url
	}

	var created *domain.Product
	err = p.txManager.Do(ctx, func(ctx context.Context) error {
		created, err = p.productRepo.Create(ctx, product)
		if err != nil {
			return err
		}

		return p.writeEvent(ctx, ProductCreated, created)
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	p.logger.Infof("product created: id=%s name=%q category=%s", created.ID, created.Name, created.CategoryID)
	return NewProductInfo(created, categoryName), nil
}

// Update перезаписывает все скалярные поля продукта и обрабатывает изображение:
// RemoveImage очищает ссылку, новое изображение заменяет её, иначе ссылка сохраняется.
func (p *ProductUseCase) Update(ctx context.Context, req *UpdateProductReq, image *ProductImage) (*ProductInfo, error) {
	const op = "ProductUseCase.Update"

	product, err := p.productRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if product == nil {
		return nil, e.Wrap(op, e.ErrProductNotFound)
	}

	categoryName, err := p.referencedCategory(ctx, req.CategoryID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	previousImage := product.ImageURL

	product.Name = req.Name
	product.Description = req.Description
	product.Price = req.Price
	product.StockQuantity = req.StockQuantity
	product.IsActive = req.IsActive
	product.CategoryID = req.CategoryID
	product.Category = &domain.Category{ID: req.CategoryID, Name: categoryName}

	switch {
	case req.RemoveImage:
		product.ImageURL = nil
	case image != nil:
		url, err := p.imagesInfra.UploadImage(ctx, image)
		if err != nil {
			return nil, e.Wrap(op, err)
		}
		product.ImageURL = &url
	}

	product.Touch(p.now())

	var updated *domain.Product
	err = p.txManager.Do(ctx, func(ctx context.Context) error {
		updated, err = p.productRepo.Update(ctx, product)
		if err != nil {
			return err
		}

		return p.writeEvent(ctx, ProductUpdated, updated)
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if previousImage != nil && (updated.ImageURL == nil || *updated.ImageURL != *previousImage) {
		p.imagesInfra.CleanupImages([]string{*previousImage})
	}

	return NewProductInfo(updated, categoryName), nil
}

// Delete удаляет продукт и возвращает его последний снимок.
func (p *ProductUseCase) Delete(ctx context.Context, id uuid.UUID) (*ProductInfo, error) {
	const op = "ProductUseCase.Delete"

	product, err := p.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if product == nil {
		return nil, e.Wrap(op, e.ErrProductNotFound)
	}

	var deleted *domain.Product
	err = p.txManager.Do(ctx, func(ctx context.Context) error {
		deleted, err = p.productRepo.Delete(ctx, product)
		if err != nil {
			return err
		}

		return p.writeEvent(ctx, ProductDeleted, deleted)
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if deleted.ImageURL != nil {
		p.imagesInfra.CleanupImages([]string{*deleted.ImageURL})
	}

	p.logger.Infof("product deleted: id=%s", deleted.ID)
	return NewProductInfo(deleted, product.CategoryName()), nil
}

// GetByID возвращает продукт с именем категории или nil, если продукта нет.
func (p *ProductUseCase) GetByID(ctx context.Context, id uuid.UUID) (*ProductInfo, error) {
	const op = "ProductUseCase.GetByID"

	product, err := p.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if product == nil {
		return nil, nil
	}

	names := make(map[uuid.UUID]string, 1)
	info, err := p.enrich(ctx, product, names)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return info, nil
}

// GetByFilters возвращает все продукты, подходящие под фильтры, по возрастанию имени.
func (p *ProductUseCase) GetByFilters(ctx context.Context, filter ProductFilter) ([]ProductInfo, error) {
	const op = "ProductUseCase.GetByFilters"

	products, err := p.productRepo.GetByFilters(ctx, filter)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	result, err := p.enrichAll(ctx, products)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return result, nil
}

// GetAll возвращает страницу продуктов, отсортированных по имени.
func (p *ProductUseCase) GetAll(ctx context.Context, req PaginationReq) (*PaginatedResult[ProductInfo], error) {
	const op = "ProductUseCase.GetAll"

	products, total, err := p.productRepo.GetAll(ctx, req.PageNumber, req.PageSize)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	result, err := p.enrichAll(ctx, products)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewPaginatedResult(result, total, req), nil
}

// referencedCategory проверяет, что категория, на которую ссылается продукт, существует, и возвращает её имя.
func (p *ProductUseCase) referencedCategory(ctx context.Context, id uuid.UUID) (string, error) {
	name, ok, err := p.categoryRepo.GetName(ctx, id)
	if err != nil {
		return "", err
	}

	if !ok {
		return "", e.ErrCategoryReference
	}

	return name, nil
}

// writeEvent пишет событие в outbox в рамках текущей транзакции.
func (p *ProductUseCase) writeEvent(ctx context.Context, eventType OutboxEventType, product *domain.Product) error {
	event, err := NewProductEvent(eventType, product)
	if err != nil {
		return err
	}

	_, err = p.outboxRepo.Create(ctx, event)
	return err
}

func (p *ProductUseCase) enrichAll(ctx context.Context, products []domain.Product) ([]ProductInfo, error) {
	names := make(map[uuid.UUID]string)
	result := make([]ProductInfo, 0, len(products))
	for i := range products {
		info, err := p.enrich(ctx, &products[i], names)
		if err != nil {
			return nil, err
		}
		result = append(result, *info)
	}

	return result, nil
}

// enrich добавляет имя категории; если категория не загружена, перечитывает её по CategoryID.
// names хранит уже найденные имена в пределах одного вызова.
func (p *ProductUseCase) enrich(ctx context.Context, product *domain.Product, names map[uuid.UUID]string) (*ProductInfo, error) {
	if product.Category != nil {
		names[product.CategoryID] = product.Category.Name
		return NewProductInfo(product, product.Category.Name), nil
	}

	name, ok := names[product.CategoryID]
	if !ok {
		found, exists, err := p.categoryRepo.GetName(ctx, product.CategoryID)
		if err != nil {
			return nil, err
		}
		if exists {
			name = found
		} else {
			p.logger.Warnf("product %s references missing category %s", product.ID, product.CategoryID)
		}
		names[product.CategoryID] = name
	}

	return NewProductInfo(product, name), nil
}
