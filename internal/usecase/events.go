package usecase

import (
	"time"

	"github.com/DRSN-tech/catalog-backend/internal/domain"
	"github.com/google/uuid"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

type OutboxStatus string

const (
	Pending    OutboxStatus = "pending"
	Processing OutboxStatus = "processing"
	Processed  OutboxStatus = "processed"
	Failed     OutboxStatus = "failed" // публикация невозможна, повторов не будет
)

type OutboxEventType string

const (
	ProductCreated OutboxEventType = "product.created"
	ProductUpdated OutboxEventType = "product.updated"
	ProductDeleted OutboxEventType = "product.deleted"
)

// OutboxEvent — событие изменения продукта, записанное в той же транзакции, что и сам продукт.
type OutboxEvent struct {
	ID          int64
	EventID     string
	EventType   OutboxEventType
	ProductID   uuid.UUID
	Payload     []byte // protobuf google.protobuf.Struct
	Status      OutboxStatus
	Attempts    int
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// WriteRawMessageReq — сообщение для Kafka с уже сериализованным телом.
type WriteRawMessageReq struct {
	EventID   string
	EventType OutboxEventType
	ProductID uuid.UUID
	Payload   []byte
}

// NewProductEvent снимает снимок продукта и упаковывает его в событие outbox.
func NewProductEvent(eventType OutboxEventType, product *domain.Product) (*OutboxEvent, error) {
	payload, err := productPayload(eventType, product)
	if err != nil {
		return nil, err
	}

	return &OutboxEvent{
		EventID:   uuid.NewString(),
		EventType: eventType,
		ProductID: product.ID,
		Payload:   payload,
		Status:    Pending,
		CreatedAt: time.Now().UTC(),
	}, nil
}

func NewWriteRawMessageReq(event *OutboxEvent) *WriteRawMessageReq {
	return &WriteRawMessageReq{
		EventID:   event.EventID,
		EventType: event.EventType,
		ProductID: event.ProductID,
		Payload:   event.Payload,
	}
}

func productPayload(eventType OutboxEventType, p *domain.Product) ([]byte, error) {
	fields := map[string]any{
		"event_type":     string(eventType),
		"id":             p.ID.String(),
		"name":           p.Name,
		"description":    p.Description,
		"price":          p.Price.String(),
		"stock_quantity": p.StockQuantity,
		"is_active":      p.IsActive,
		"category_id":    p.CategoryID.String(),
		"created_at":     p.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if p.ImageURL != nil {
		fields["image_url"] = *p.ImageURL
	}
	if p.UpdatedAt != nil {
		fields["updated_at"] = p.UpdatedAt.UTC().Format(time.RFC3339Nano)
	}

	st, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, err
	}

	return proto.Marshal(st)
}
