package domain

import "github.com/google/uuid"

// Category описывает категорию продукта
type Category struct {
	ID          uuid.UUID
	Name        string
	Description *string
	// Products заполняется только при чтении одной категории.
	Products []Product
}

func NewCategory(name string, description *string) *Category {
	return &Category{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
	}
}
