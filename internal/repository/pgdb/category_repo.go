package pgdb

import (
	"context"
	"errors"

	"github.com/DRSN-tech/catalog-backend/internal/domain"
	"github.com/DRSN-tech/catalog-backend/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/DRSN-tech/catalog-backend/pkg/tr"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// CategoryRepo реализует репозиторий категорий поверх PostgreSQL.
type CategoryRepo struct {
	pool     *pgxpool.Pool
	conv     converter.CategoryConverter
	products *ProductRepo
}

func NewCategoryRepo(pool *pgxpool.Pool, conv converter.CategoryConverter, products *ProductRepo) *CategoryRepo {
	return &CategoryRepo{pool: pool, conv: conv, products: products}
}

func (c *CategoryRepo) Create(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	model := c.conv.ToModel(category)
	query := `
		INSERT INTO categories (id, name, description)
		VALUES ($1, $2, $3)
		RETURNING id, name, description;
	`

	var out converter.CategoryModel
	if err := tr.Querier(ctx, c.pool).QueryRow(ctx, query, model.ID, model.Name, model.Description).
		Scan(&out.ID, &out.Name, &out.Description); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(&out), nil
}

func (c *CategoryRepo) Update(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	model := c.conv.ToModel(category)
	query := `
		UPDATE categories
		SET name = $2, description = $3
		WHERE id = $1
		RETURNING id, name, description;
	`

	var out converter.CategoryModel
	err := tr.Querier(ctx, c.pool).QueryRow(ctx, query, model.ID, model.Name, model.Description).
		Scan(&out.ID, &out.Name, &out.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrCategoryNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(&out), nil
}

// Delete удаляет категорию. Нарушение внешнего ключа (есть продукты) возвращается как ErrCategoryInUse.
func (c *CategoryRepo) Delete(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	tag, err := tr.Querier(ctx, c.pool).Exec(ctx, `DELETE FROM categories WHERE id = $1`, category.ID)
	if err != nil {
		if postgresForeignKey(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrCategoryInUse)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if tag.RowsAffected() == 0 {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrCategoryNotFound)
	}

	return category, nil
}

// GetByID возвращает категорию вместе с её продуктами или nil, если записи нет.
func (c *CategoryRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	query := `SELECT id, name, description FROM categories WHERE id = $1`

	var model converter.CategoryModel
	err := tr.Querier(ctx, c.pool).QueryRow(ctx, query, id).Scan(&model.ID, &model.Name, &model.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	category := c.conv.ToEntity(&model)

	if c.products != nil {
		products, err := c.products.GetByCategory(ctx, id)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		category.Products = products
	}

	return category, nil
}

// GetName читает только имя категории.
func (c *CategoryRepo) GetName(ctx context.Context, id uuid.UUID) (string, bool, error) {
	var name string
	err := tr.Querier(ctx, c.pool).QueryRow(ctx, `SELECT name FROM categories WHERE id = $1`, id).Scan(&name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, e.Wrap(whereami.WhereAmI(), err)
	}

	return name, true, nil
}

// GetAll возвращает страницу категорий по возрастанию имени и общее число категорий.
func (c *CategoryRepo) GetAll(ctx context.Context, pageNumber, pageSize int) ([]domain.Category, int, error) {
	q := tr.Querier(ctx, c.pool)

	var total int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM categories`).Scan(&total); err != nil {
		return nil, 0, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		SELECT id, name, description
		FROM categories
		ORDER BY name, id
		LIMIT $1 OFFSET $2
	`

	rows, err := q.Query(ctx, query, pageSize, offset(pageNumber, pageSize))
	if err != nil {
		return nil, 0, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.Category, 0)
	for rows.Next() {
		var model converter.CategoryModel
		if err := rows.Scan(&model.ID, &model.Name, &model.Description); err != nil {
			return nil, 0, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, *c.conv.ToEntity(&model))
	}

	if err := rows.Err(); err != nil {
		return nil, 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, total, nil
}
