package kafka

import (
	"context"
	"errors"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/DRSN-tech/catalog-backend/internal/cfg"
	"github.com/DRSN-tech/catalog-backend/internal/usecase"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/DRSN-tech/catalog-backend/pkg/jitter"
	"github.com/DRSN-tech/catalog-backend/pkg/logger"
	"github.com/jackc/pgx/v5"
	"github.com/segmentio/kafka-go"
)

const (
	outboxChannel       = "outbox_pending"
	notificationTimeout = 30 * time.Second
	reconnectBase       = 1 * time.Second
	reconnectMax        = 30 * time.Second
)

// OutboxWorker переносит события из outbox в Kafka. Обработка запускается при старте,
// по уведомлению LISTEN outbox_pending и по таймеру, если уведомление потерялось.
type OutboxWorker struct {
	repo      usecase.OutboxRepository
	logger    logger.Logger
	producer  usecase.MessageProducer
	cfg       *cfg.OutboxCfg
	dbConnStr string // пустая строка отключает LISTEN, остаётся только опрос

	wake chan struct{}
	stop chan struct{}
	once sync.Once
	wg   sync.WaitGroup
}

func NewOutboxWorker(
	repo usecase.OutboxRepository,
	logger logger.Logger,
	producer usecase.MessageProducer,
	cfg *cfg.OutboxCfg,
	dbConnStr string,
) *OutboxWorker {
	return &OutboxWorker{
		repo:      repo,
		logger:    logger,
		producer:  producer,
		cfg:       cfg,
		dbConnStr: dbConnStr,
		wake:      make(chan struct{}, 1),
		stop:      make(chan struct{}),
	}
}

func (w *OutboxWorker) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		<-w.stop
		cancel()
	}()

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		w.run(ctx)
	}()

	if w.dbConnStr != "" {
		w.wg.Add(1)
		go func() {
			defer w.wg.Done()
			w.listenOutboxNotifications(ctx)
		}()
	}
}

// Stop останавливает воркер и дожидается завершения горутин. Повторный вызов безопасен.
func (w *OutboxWorker) Stop(ctx context.Context) error {
	w.once.Do(func() { close(w.stop) })

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Notify будит воркер; лишние сигналы схлопываются.
func (w *OutboxWorker) Notify() {
	select {
	case w.wake <- struct{}{}:
	default:
	}
}

func (w *OutboxWorker) run(ctx context.Context) {
	w.logger.Infof("Draining pending outbox events on startup...")
	w.requeueStale(ctx)
	w.drain(ctx)

	ticker := time.NewTicker(w.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Infof("Outbox worker stopped")
			return
		case <-ticker.C:
			w.requeueStale(ctx)
			w.drain(ctx)
		case <-w.wake:
			w.drain(ctx)
		}
	}
}

func (w *OutboxWorker) requeueStale(ctx context.Context) {
	n, err := w.repo.RequeueStale(ctx, w.cfg.StaleAfter)
	if err != nil {
		if ctx.Err() == nil {
			w.logger.Warnf("requeue stale outbox events failed: %v", err)
		}
		return
	}

	if n > 0 {
		w.logger.Warnf("requeued %d stale outbox events", n)
	}
}

func (w *OutboxWorker) drain(ctx context.Context) {
	for ctx.Err() == nil {
		hasMore, err := w.processBatch(ctx)
		if err != nil {
			if ctx.Err() == nil {
				w.logger.Warnf("Batch processing failed: %v", err)
			}
			return
		}
		if !hasMore {
			return
		}
	}
}

func (w *OutboxWorker) listenOutboxNotifications(ctx context.Context) {
	for attempt := 0; ctx.Err() == nil; attempt++ {
		err := w.listen(ctx)
		if ctx.Err() != nil {
			return
		}

		delay := jitter.ExponentialBackoff(reconnectBase, reconnectMax, attempt, jitter.DefaultJitter)
		w.logger.Warnf("LISTEN %s interrupted: %v. Reconnecting in %s", outboxChannel, err, delay)

		if !jitter.Sleep(ctx, delay) {
			return
		}
	}
}

// listen держит отдельное соединение с LISTEN и будит воркер на каждое уведомление.
func (w *OutboxWorker) listen(ctx context.Context) error {
	conn, err := pgx.Connect(ctx, w.dbConnStr)
	if err != nil {
		return e.Wrap("failed to connect for LISTEN", err)
	}
	defer conn.Close(context.Background())

	if _, err := conn.Exec(ctx, "LISTEN "+outboxChannel); err != nil {
		return e.Wrap("failed to LISTEN", err)
	}

	w.logger.Infof("Subscribed to '%s' channel", outboxChannel)
	// Пока не было соединения, уведомления могли потеряться.
	w.Notify()

	for {
		waitCtx, cancel := context.WithTimeout(ctx, notificationTimeout)
		notif, err := conn.WaitForNotification(waitCtx)
		cancel()

		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if errors.Is(err, context.DeadlineExceeded) {
				continue
			}
			return err
		}

		if notif != nil && notif.Channel == outboxChannel {
			w.logger.Debugf("Received outbox notification")
			w.Notify()
		}
	}
}

// processBatch публикует одну пачку одним вызовом producer. hasMore означает, что пачка была
// полной и без ошибок; после ошибки следующая попытка ждёт таймера.
func (w *OutboxWorker) processBatch(ctx context.Context) (bool, error) {
	events, err := w.repo.GetAndMarkAsProcessing(ctx, w.cfg.BatchSize)
	if err != nil {
		return false, err
	}

	if len(events) == 0 {
		return false, nil
	}

	results := w.publish(ctx, events)

	failed := 0
	for i, event := range events {
		if results[i] != nil {
			failed++
			w.handleFailure(ctx, event, results[i])
			continue
		}

		if err := w.repo.MarkAsProcessed(context.WithoutCancel(ctx), event.ID); err != nil {
			w.logger.Warnf("mark processed failed: %v", err)
		}
	}

	return failed == 0 && len(events) == w.cfg.BatchSize, nil
}

// publish возвращает ошибку публикации для каждого события (nil — отправлено).
func (w *OutboxWorker) publish(ctx context.Context, events []*usecase.OutboxEvent) []error {
	reqs := make([]*usecase.WriteRawMessageReq, len(events))
	for i, event := range events {
		reqs[i] = usecase.NewWriteRawMessageReq(event)
	}

	results := make([]error, len(events))

	err := w.producer.WriteRawMessages(ctx, reqs)
	if err == nil {
		return results
	}

	var writeErrs kafka.WriteErrors
	if errors.As(err, &writeErrs) && len(writeErrs) == len(events) {
		copy(results, writeErrs)
		return results
	}

	// Ошибка на всю пачку, например одно сообщение больше лимита: ищем виновника поштучно.
	if len(events) > 1 && !isRetryableError(err) {
		for i, req := range reqs {
			results[i] = w.producer.WriteRawMessages(ctx, []*usecase.WriteRawMessageReq{req})
		}
		return results
	}

	for i := range results {
		results[i] = err
	}
	return results
}

// handleFailure откладывает событие с экспоненциальной задержкой либо помечает его failed,
// если ошибка неустранима или попытки исчерпаны.
func (w *OutboxWorker) handleFailure(ctx context.Context, event *usecase.OutboxEvent, err error) {
	ctx = context.WithoutCancel(ctx)
	reason := err.Error()

	if !isRetryableError(err) || (w.cfg.MaxAttempts > 0 && event.Attempts >= w.cfg.MaxAttempts) {
		w.logger.Errorf(err, "event %s (attempt %d) will not be published", event.EventID, event.Attempts)
		if err := w.repo.MarkAsFailed(ctx, event.ID, reason); err != nil {
			w.logger.Warnf("mark failed failed: %v", err)
		}
		return
	}

	delay := jitter.ExponentialBackoff(w.cfg.RetryBase, w.cfg.RetryMax, event.Attempts-1, jitter.DefaultJitter)
	w.logger.Warnf("event %s (attempt %d): %v. Retry in %s", event.EventID, event.Attempts, err, delay)
	if err := w.repo.MarkAsPending(ctx, event.ID, delay, reason); err != nil {
		w.logger.Warnf("mark pending failed: %v", err)
	}
}

func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	// остановка воркера посреди публикации
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var kafkaErr kafka.Error
	if errors.As(err, &kafkaErr) {
		return kafkaErr.Temporary()
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	errStr := strings.ToLower(err.Error())
	retryablePhrases := []string{
		"connection refused",
		"i/o timeout",
		"network is unreachable",
		"broker not available",
		"connection reset",
		"broken pipe",
		"no such host",
	}
	for _, phrase := range retryablePhrases {
		if strings.Contains(errStr, phrase) {
			return true
		}
	}
	return false
}
