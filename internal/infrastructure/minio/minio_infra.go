package minio

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/DRSN-tech/catalog-backend/internal/cfg"
	"github.com/DRSN-tech/catalog-backend/internal/domain"
	"github.com/DRSN-tech/catalog-backend/internal/infrastructure"
	"github.com/DRSN-tech/catalog-backend/internal/usecase"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/DRSN-tech/catalog-backend/pkg/jitter"
	"github.com/DRSN-tech/catalog-backend/pkg/logger"
	"github.com/google/uuid"
)

const (
	keyPrefix       = "products"
	sniffLen        = 512
	cleanupTimeout  = 30 * time.Second
	cleanupAttempts = 3
)

// MinioInfrastructure управляет загрузкой и фоновым удалением изображений продуктов.
type MinioInfrastructure struct {
	minioRepo   usecase.ImageRepository
	cfg         *cfg.MinIOCfg
	logger      logger.Logger
	shutdownCtx context.Context
	wg          sync.WaitGroup

	baseBackoff time.Duration
	maxBackoff  time.Duration
}

func NewMinioInfrastructure(minioRepo usecase.ImageRepository, cfg *cfg.MinIOCfg, logger logger.Logger, shutdownCtx context.Context) *MinioInfrastructure {
	return &MinioInfrastructure{
		minioRepo:   minioRepo,
		cfg:         cfg,
		logger:      logger,
		shutdownCtx: shutdownCtx,
		baseBackoff: time.Second,
		maxBackoff:  8 * time.Second,
	}
}

// UploadImage загружает изображение продукта и возвращает его публичный URL.
// Если Content-Type не передан, он определяется по первым байтам файла.
func (m *MinioInfrastructure) UploadImage(ctx context.Context, image *usecase.ProductImage) (string, error) {
	const op = "MinioInfrastructure.UploadImage"

	if m.cfg.MaxImageBytes > 0 && image.Size > m.cfg.MaxImageBytes {
		return "", e.Wrap(op, e.ErrFileTooLarge)
	}

	body := image.Reader
	var contentType string
	if image.ContentType != nil && *image.ContentType != "" && *image.ContentType != "application/octet-stream" {
		contentType = *image.ContentType
	} else {
		br := bufio.NewReaderSize(image.Reader, sniffLen)
		head, err := br.Peek(sniffLen)
		if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
			return "", e.Wrap(op, err)
		}
		contentType = http.DetectContentType(head)
		body = br
	}

	ext, err := infrastructure.GetExtensionFromMIME(contentType)
	if err != nil {
		return "", e.Wrap(op, fmt.Errorf("%w: %s", err, contentType))
	}

	imageID := uuid.NewString()
	objKey := fmt.Sprintf("%s/%s-%s.%s", keyPrefix, imageID, infrastructure.SanitizeFileName(image.FileName), ext)
	newImage := domain.NewImage(imageID, m.cfg.BucketName, objKey, body, image.Size, contentType)

	key, err := m.minioRepo.Upload(ctx, newImage)
	if err != nil {
		return "", e.Wrap(op, err)
	}

	m.logger.Debugf("image uploaded: key=%s size=%d", key, image.Size)
	return m.URLForKey(key), nil
}

// URLForKey строит публичный адрес объекта.
func (m *MinioInfrastructure) URLForKey(key string) string {
	return m.cfg.PublicURL + "/" + m.cfg.BucketName + "/" + key
}

// KeyFromURL возвращает ключ объекта, если URL указывает в наш бакет.
func (m *MinioInfrastructure) KeyFromURL(url string) (string, bool) {
	prefix := m.cfg.PublicURL + "/" + m.cfg.BucketName + "/"
	if !strings.HasPrefix(url, prefix) || len(url) == len(prefix) {
		return "", false
	}

	return strings.TrimPrefix(url, prefix), true
}

// CleanupImages запускает фоновое удаление изображений по их URL.
// URL, не принадлежащие бакету, пропускаются.
func (m *MinioInfrastructure) CleanupImages(urls []string) {
	keys := make([]string, 0, len(urls))
	for _, u := range urls {
		key, ok := m.KeyFromURL(u)
		if !ok {
			m.logger.Warnf("skip cleanup of foreign image url %q", u)
			continue
		}
		keys = append(keys, key)
	}

	if len(keys) == 0 {
		return
	}

	m.wg.Add(1)
	go m.cleanupUploadedKeys(keys)
}

// cleanupUploadedKeys удаляет указанные объекты из MinIO с экспоненциальной задержкой и jitter.
func (m *MinioInfrastructure) cleanupUploadedKeys(keys []string) {
	defer m.wg.Done()
	const op = "MinioInfrastructure.cleanupUploadedKeys"
	m.logger.Debugf("%s: cleaning up %d keys", op, len(keys))

	ctx, cancel := context.WithTimeout(m.shutdownCtx, cleanupTimeout)
	defer cancel()

	for _, key := range keys {
		for attempt := 0; attempt < cleanupAttempts; attempt++ {
			err := m.minioRepo.Delete(ctx, key)
			if err == nil {
				break
			}

			if ctx.Err() != nil {
				m.logger.Warnf("cleanup interrupted by shutdown, key=%v", key)
				return
			}

			if attempt == cleanupAttempts-1 {
				m.logger.Errorf(err, "%s: giving up on key=%s", op, key)
				break
			}

			delay := jitter.ExponentialBackoff(m.baseBackoff, m.maxBackoff, attempt, jitter.DefaultJitter)
			if !jitter.Sleep(ctx, delay) {
				m.logger.Warnf("cleanup interrupted by shutdown during backoff, key=%v", key)
				return
			}
		}
	}
}

// WaitForCleanup ожидает завершения всех фоновых задач очистки с учётом таймаута завершения приложения.
func (m *MinioInfrastructure) WaitForCleanup(shutdownTimeoutCtx context.Context) error {
	done := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-shutdownTimeoutCtx.Done():
		return fmt.Errorf("minio cleanup timeout during shutdown: %w", shutdownTimeoutCtx.Err())
	}
}
