package converter

import (
	"time"

	"github.com/google/uuid"
)

// CategoryModel представляет запись таблицы categories в PostgreSQL.
type CategoryModel struct {
	ID          uuid.UUID `db:"id"`
	Name        string    `db:"name"`
	Description *string   `db:"description"`
}

// ProductModel представляет запись таблицы products вместе с полями присоединённой категории.
type ProductModel struct {
	ID            uuid.UUID  `db:"id"`
	Name          string     `db:"name"`
	Description   string     `db:"description"`
	Price         string     `db:"price"` // numeric, читается как price::text
	StockQuantity int        `db:"stock_quantity"`
	IsActive      bool       `db:"is_active"`
	CategoryID    uuid.UUID  `db:"category_id"`
	ImageURL      *string    `db:"image_url"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     *time.Time `db:"updated_at"`

	CategoryName        *string `db:"category_name"` // NULL, если категория не присоединена
	CategoryDescription *string `db:"category_description"`
}

// OutboxEventModel представляет запись таблицы outbox_events.
type OutboxEventModel struct {
	ID          int64      `db:"id"`
	EventID     string     `db:"event_id"`
	EventType   string     `db:"event_type"`
	ProductID   uuid.UUID  `db:"product_id"`
	Payload     []byte     `db:"payload"`
	Status      string     `db:"status"`
	Attempts    int        `db:"attempts"`
	CreatedAt   time.Time  `db:"created_at"`
	ProcessedAt *time.Time `db:"processed_at"`
}
