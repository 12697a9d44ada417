package usecase

import "context"

// ImagesInfra — порт хранилища изображений.
type ImagesInfra interface {
	// UploadImage сохраняет изображение и возвращает его URL.
	UploadImage(ctx context.Context, image *ProductImage) (string, error)
	// CleanupImages в фоне удаляет изображения, на которые больше никто не ссылается.
	CleanupImages(urls []string)
}

// MessageProducer публикует пачку сообщений одним вызовом. При частичной неудаче
// ошибка содержит результат по каждому сообщению (kafka.WriteErrors).
type MessageProducer interface {
	WriteRawMessages(ctx context.Context, reqs []*WriteRawMessageReq) error
}

// TxManager выполняет fn в одной транзакции БД.
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
