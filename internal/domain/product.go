package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product описывает продукт каталога
type Product struct {
	ID            uuid.UUID
	Name          string
	Description   string
	Price         decimal.Decimal
	StockQuantity int
	IsActive      bool
	CategoryID    uuid.UUID
	Category      *Category // заполняется репозиторием при чтении
	ImageURL      *string
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}

func NewProduct(name, description string, price decimal.Decimal, stock int, isActive bool, categoryID uuid.UUID) *Product {
	return &Product{
		ID:            uuid.New(),
		Name:          name,
		Description:   description,
		Price:         price,
		StockQuantity: stock,
		IsActive:      isActive,
		CategoryID:    categoryID,
		CreatedAt:     time.Now().UTC(),
	}
}

// CategoryName возвращает имя загруженной категории или пустую строку.
func (p *Product) CategoryName() string {
	if p.Category == nil {
		return ""
	}

	return p.Category.Name
}

// Touch отмечает момент последнего изменения.
func (p *Product) Touch(now time.Time) {
	p.UpdatedAt = &now
}
