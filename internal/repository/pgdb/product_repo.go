package pgdb

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/DRSN-tech/catalog-backend/internal/domain"
	"github.com/DRSN-tech/catalog-backend/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/catalog-backend/internal/usecase"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/DRSN-tech/catalog-backend/pkg/tr"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// Колонки продукта вместе с именем и описанием категории (LEFT JOIN categories cat).
const productSelect = `
	SELECT pr.id, pr.name, pr.description, pr.price::text, pr.stock_quantity, pr.is_active,
	       pr.category_id, pr.image_url, pr.created_at, pr.updated_at,
	       cat.name, cat.description
	FROM products pr
	LEFT JOIN categories cat ON cat.id = pr.category_id
`

const productReturning = `
	RETURNING id, name, description, price::text, stock_quantity, is_active,
	          category_id, image_url, created_at, updated_at
`

// ProductRepo реализует репозиторий продуктов поверх PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
	conv converter.ProductConverter
}

func NewProductRepo(pool *pgxpool.Pool, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{
		pool: pool,
		conv: conv,
	}
}

func (p *ProductRepo) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	m := p.conv.ToModel(product)
	query := `
		INSERT INTO products (
			id, name, description, price, stock_quantity, is_active,
			category_id, image_url, created_at, updated_at
		) VALUES ($1, $2, $3, $4::numeric, $5, $6, $7, $8, $9, $10)
	` + productReturning

	row := tr.Querier(ctx, p.pool).QueryRow(ctx, query,
		m.ID, m.Name, m.Description, m.Price, m.StockQuantity, m.IsActive,
		m.CategoryID, m.ImageURL, m.CreatedAt, m.UpdatedAt,
	)

	created, err := p.scanReturning(row, product.Category)
	if err != nil {
		if postgresForeignKey(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrCategoryReference)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return created, nil
}

// Update перезаписывает все изменяемые поля продукта. created_at не трогается.
func (p *ProductRepo) Update(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	m := p.conv.ToModel(product)
	query := `
		UPDATE products
		SET name = $2, description = $3, price = $4::numeric, stock_quantity = $5,
		    is_active = $6, category_id = $7, image_url = $8, updated_at = $9
		WHERE id = $1
	` + productReturning

	row := tr.Querier(ctx, p.pool).QueryRow(ctx, query,
		m.ID, m.Name, m.Description, m.Price, m.StockQuantity,
		m.IsActive, m.CategoryID, m.ImageURL, m.UpdatedAt,
	)

	updated, err := p.scanReturning(row, product.Category)
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
		case postgresForeignKey(err):
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrCategoryReference)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return updated, nil
}

func (p *ProductRepo) Delete(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	row := tr.Querier(ctx, p.pool).QueryRow(ctx, `DELETE FROM products WHERE id = $1`+productReturning, product.ID)

	deleted, err := p.scanReturning(row, product.Category)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return deleted, nil
}

// GetByID возвращает продукт с загруженной категорией или nil, если записи нет.
func (p *ProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	row := tr.Querier(ctx, p.pool).QueryRow(ctx, productSelect+` WHERE pr.id = $1`, id)

	var m converter.ProductModel
	if err := scanProduct(row, &m); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	product, err := p.conv.ToEntity(&m)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return product, nil
}

// GetAll возвращает страницу продуктов по возрастанию имени и общее число продуктов.
func (p *ProductRepo) GetAll(ctx context.Context, pageNumber, pageSize int) ([]domain.Product, int, error) {
	q := tr.Querier(ctx, p.pool)

	var total int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&total); err != nil {
		return nil, 0, e.Wrap(whereami.WhereAmI(), err)
	}

	products, err := p.query(ctx, productSelect+` ORDER BY pr.name, pr.id LIMIT $1 OFFSET $2`,
		pageSize, offset(pageNumber, pageSize))
	if err != nil {
		return nil, 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return products, total, nil
}

// GetByFilters возвращает все продукты, подходящие под заданные фильтры. Фильтры объединяются через AND.
func (p *ProductRepo) GetByFilters(ctx context.Context, filter usecase.ProductFilter) ([]domain.Product, error) {
	where, args := buildProductFilter(filter)

	products, err := p.query(ctx, productSelect+where+` ORDER BY pr.name, pr.id`, args...)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return products, nil
}

// GetByCategory возвращает продукты категории, используется для заполнения Category.Products.
func (p *ProductRepo) GetByCategory(ctx context.Context, categoryID uuid.UUID) ([]domain.Product, error) {
	products, err := p.query(ctx, productSelect+` WHERE pr.category_id = $1 ORDER BY pr.name, pr.id`, categoryID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return products, nil
}

func buildProductFilter(filter usecase.ProductFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)

	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if filter.CategoryID != nil {
		add("pr.category_id = $%d", *filter.CategoryID)
	}
	if filter.MinPrice != nil {
		add("pr.price >= $%d::numeric", filter.MinPrice.String())
	}
	if filter.MaxPrice != nil {
		add("pr.price <= $%d::numeric", filter.MaxPrice.String())
	}
	if filter.IsActive != nil {
		add("pr.is_active = $%d", *filter.IsActive)
	}

	if len(conds) == 0 {
		return "", nil
	}

	return " WHERE " + strings.Join(conds, " AND "), args
}

func (p *ProductRepo) query(ctx context.Context, query string, args ...any) ([]domain.Product, error) {
	rows, err := tr.Querier(ctx, p.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]domain.Product, 0)
	for rows.Next() {
		var m converter.ProductModel
		if err := scanProduct(rows, &m); err != nil {
			return nil, err
		}

		product, err := p.conv.ToEntity(&m)
		if err != nil {
			return nil, err
		}

		result = append(result, *product)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// scanReturning читает строку RETURNING; категория берётся из исходной сущности.
func (p *ProductRepo) scanReturning(row pgx.Row, category *domain.Category) (*domain.Product, error) {
	var m converter.ProductModel
	if err := row.Scan(
		&m.ID, &m.Name, &m.Description, &m.Price, &m.StockQuantity, &m.IsActive,
		&m.CategoryID, &m.ImageURL, &m.CreatedAt, &m.UpdatedAt,
	); err != nil {
		return nil, err
	}

	product, err := p.conv.ToEntity(&m)
	if err != nil {
		return nil, err
	}

	if category != nil && category.ID == product.CategoryID {
		c := *category
		c.Products = nil
		product.Category = &c
	}

	return product, nil
}

func scanProduct(row pgx.Row, m *converter.ProductModel) error {
	return row.Scan(
		&m.ID, &m.Name, &m.Description, &m.Price, &m.StockQuantity, &m.IsActive,
		&m.CategoryID, &m.ImageURL, &m.CreatedAt, &m.UpdatedAt,
		&m.CategoryName, &m.CategoryDescription,
	)
}
