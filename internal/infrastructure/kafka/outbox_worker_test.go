package kafka

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/DRSN-tech/catalog-backend/internal/cfg"
	"github.com/DRSN-tech/catalog-backend/internal/usecase"
	"github.com/DRSN-tech/catalog-backend/pkg/logger"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memOutbox struct {
	mu          sync.Mutex
	events      []*usecase.OutboxEvent
	nextAttempt map[int64]time.Time
	lastError   map[int64]string
	requeues    int
}

func (m *memOutbox) add(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := 0; i < n; i++ {
		m.events = append(m.events, &usecase.OutboxEvent{
			ID:        int64(len(m.events) + 1),
			EventID:   uuid.NewString(),
			EventType: usecase.ProductCreated,
			ProductID: uuid.New(),
			Payload:   []byte("payload"),
			Status:    usecase.Pending,
		})
	}
}

func (m *memOutbox) count(status usecase.OutboxStatus) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, ev := range m.events {
		if ev.Status == status {
			n++
		}
	}
	return n
}

func (m *memOutbox) Create(_ context.Context, ev *usecase.OutboxEvent) (*usecase.OutboxEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, ev)
	return ev, nil
}

func (m *memOutbox) GetAndMarkAsProcessing(_ context.Context, limit int) ([]*usecase.OutboxEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*usecase.OutboxEvent
	for _, ev := range m.events {
		if len(out) == limit {
			break
		}
		if ev.Status == usecase.Pending && !time.Now().Before(m.nextAttempt[ev.ID]) {
			ev.Status = usecase.Processing
			ev.Attempts++
			copied := *ev
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (m *memOutbox) setStatus(id int64, from, to usecase.OutboxStatus) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, ev := range m.events {
		if ev.ID == id && ev.Status == from {
			ev.Status = to
		}
	}
}

func (m *memOutbox) MarkAsProcessed(_ context.Context, id int64) error {
	m.setStatus(id, usecase.Processing, usecase.Processed)
	return nil
}

func (m *memOutbox) MarkAsPending(_ context.Context, id int64, retryAfter time.Duration, reason string) error {
	m.setStatus(id, usecase.Processing, usecase.Pending)
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.nextAttempt == nil {
		m.nextAttempt = map[int64]time.Time{}
	}
	m.nextAttempt[id] = time.Now().Add(retryAfter)
	m.setReason(id, reason)
	return nil
}

func (m *memOutbox) MarkAsFailed(_ context.Context, id int64, reason string) error {
	m.setStatus(id, usecase.Processing, usecase.Failed)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setReason(id, reason)
	return nil
}

func (m *memOutbox) setReason(id int64, reason string) {
	if m.lastError == nil {
		m.lastError = map[int64]string{}
	}
	m.lastError[id] = reason
}

func (m *memOutbox) RequeueStale(context.Context, time.Duration) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requeues++
	return 0, nil
}

var errRefused = errors.New("dial tcp: connection refused")

// memProducer ведёт себя как синхронный kafka.Writer: ошибки отдельных сообщений
// приходят в kafka.WriteErrors, а oversized отклоняет весь вызов.
type memProducer struct {
	mu        sync.Mutex
	messages  []*usecase.WriteRawMessageReq
	calls     int
	failFor   map[string]error
	oversized map[string]bool
}

func (p *memProducer) WriteRawMessages(_ context.Context, reqs []*usecase.WriteRawMessageReq) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++

	for _, req := range reqs {
		if p.oversized[req.EventID] {
			return errors.New("message too large")
		}
	}

	writeErrs := make(kafka.WriteErrors, len(reqs))
	failed := false
	for i, req := range reqs {
		if err := p.failFor[req.EventID]; err != nil {
			writeErrs[i] = err
			failed = true
			continue
		}
		p.messages = append(p.messages, req)
	}
	if failed {
		return writeErrs
	}
	return nil
}

func (p *memProducer) callCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

func (p *memProducer) sent() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.messages)
}

func newTestWorker(repo *memOutbox, producer *memProducer, batch int) *OutboxWorker {
	return NewOutboxWorker(repo, logger.NewNop(), producer, &cfg.OutboxCfg{
		PollInterval: 20 * time.Millisecond,
		BatchSize:    batch,
		StaleAfter:   time.Minute,
		MaxAttempts:  5,
		RetryBase:    time.Hour,
		RetryMax:     time.Hour,
	}, "")
}

func TestProcessBatchPublishesAndMarks(t *testing.T) {
	repo := &memOutbox{}
	repo.add(3)
	producer := &memProducer{}
	w := newTestWorker(repo, producer, 10)

	hasMore, err := w.processBatch(context.Background())

	require.NoError(t, err)
	assert.False(t, hasMore)
	assert.Equal(t, 3, producer.sent())
	assert.Equal(t, 1, producer.callCount())
	assert.Equal(t, 3, repo.count(usecase.Processed))
	assert.Equal(t, repo.events[0].ProductID, producer.messages[0].ProductID)
	assert.Equal(t, usecase.ProductCreated, producer.messages[0].EventType)
}

func TestProcessBatchFullBatchHasMore(t *testing.T) {
	repo := &memOutbox{}
	repo.add(5)
	w := newTestWorker(repo, &memProducer{}, 2)

	hasMore, err := w.processBatch(context.Background())

	require.NoError(t, err)
	assert.True(t, hasMore)

	w.drain(context.Background())
	assert.Equal(t, 5, repo.count(usecase.Processed))
}

func TestProcessBatchRetryableFailureBacksOff(t *testing.T) {
	repo := &memOutbox{}
	repo.add(2)
	producer := &memProducer{failFor: map[string]error{repo.events[0].EventID: errRefused}}
	w := newTestWorker(repo, producer, 2)

	hasMore, err := w.processBatch(context.Background())

	require.NoError(t, err)
	assert.False(t, hasMore)
	assert.Equal(t, 1, repo.count(usecase.Pending))
	assert.Equal(t, 1, repo.count(usecase.Processed))
	assert.Equal(t, 1, repo.events[0].Attempts)
	assert.Contains(t, repo.lastError[repo.events[0].ID], "connection refused")
	assert.True(t, repo.nextAttempt[repo.events[0].ID].After(time.Now().Add(30*time.Minute)))

	// отложенное событие не выбирается до next_attempt_at
	again, err := w.processBatch(context.Background())
	require.NoError(t, err)
	assert.False(t, again)
	assert.Equal(t, 1, repo.events[0].Attempts)
}

func TestProcessBatchPermanentFailureMarksFailed(t *testing.T) {
	repo := &memOutbox{}
	repo.add(2)
	producer := &memProducer{failFor: map[string]error{
		repo.events[1].EventID: errors.New("invalid message"),
	}}
	w := newTestWorker(repo, producer, 10)

	_, err := w.processBatch(context.Background())

	require.NoError(t, err)
	assert.Equal(t, usecase.Processed, repo.events[0].Status)
	assert.Equal(t, usecase.Failed, repo.events[1].Status)
	assert.Equal(t, "invalid message", repo.lastError[repo.events[1].ID])
}

func TestProcessBatchGivesUpAfterMaxAttempts(t *testing.T) {
	repo := &memOutbox{}
	repo.add(1)
	producer := &memProducer{failFor: map[string]error{repo.events[0].EventID: errRefused}}
	w := NewOutboxWorker(repo, logger.NewNop(), producer, &cfg.OutboxCfg{
		PollInterval: time.Hour,
		BatchSize:    10,
		StaleAfter:   time.Minute,
		MaxAttempts:  3,
	}, "")

	for i := 0; i < 5; i++ {
		_, err := w.processBatch(context.Background())
		require.NoError(t, err)
	}

	assert.Equal(t, usecase.Failed, repo.events[0].Status)
	assert.Equal(t, 3, repo.events[0].Attempts)
}

func TestProcessBatchIsolatesOversizedMessage(t *testing.T) {
	repo := &memOutbox{}
	repo.add(3)
	producer := &memProducer{oversized: map[string]bool{repo.events[1].EventID: true}}
	w := newTestWorker(repo, producer, 10)

	_, err := w.processBatch(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, producer.sent())
	assert.Equal(t, usecase.Processed, repo.events[0].Status)
	assert.Equal(t, usecase.Failed, repo.events[1].Status)
	assert.Equal(t, usecase.Processed, repo.events[2].Status)
}

func TestWorkerFailingEventsDoNotBlockQueue(t *testing.T) {
	repo := &memOutbox{}
	repo.add(3)
	failing := map[string]error{}
	for _, ev := range repo.events {
		failing[ev.EventID] = errRefused
	}
	repo.add(5)
	producer := &memProducer{failFor: failing}

	w := NewOutboxWorker(repo, logger.NewNop(), producer, &cfg.OutboxCfg{
		PollInterval: 5 * time.Millisecond,
		BatchSize:    3,
		StaleAfter:   time.Minute,
		MaxAttempts:  10,
		RetryBase:    time.Hour,
		RetryMax:     time.Hour,
	}, "")
	w.Start(context.Background())
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = w.Stop(ctx)
	}()

	assert.Eventually(t, func() bool { return producer.sent() == 5 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, 3, repo.count(usecase.Pending))

	repo.mu.Lock()
	for _, ev := range repo.events[:3] {
		assert.Equal(t, 1, ev.Attempts)
	}
	repo.mu.Unlock()
}

func TestWorkerDrainsOnStartAndPoll(t *testing.T) {
	repo := &memOutbox{}
	repo.add(2)
	producer := &memProducer{}
	w := newTestWorker(repo, producer, 10)

	w.Start(context.Background())

	assert.Eventually(t, func() bool { return producer.sent() == 2 }, time.Second, 5*time.Millisecond)

	repo.add(1)
	assert.Eventually(t, func() bool { return producer.sent() == 3 }, time.Second, 5*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, w.Stop(ctx))
	require.NoError(t, w.Stop(ctx))

	repo.mu.Lock()
	assert.GreaterOrEqual(t, repo.requeues, 1)
	repo.mu.Unlock()
}

func TestWorkerNotify(t *testing.T) {
	repo := &memOutbox{}
	producer := &memProducer{}
	w := NewOutboxWorker(repo, logger.NewNop(), producer, &cfg.OutboxCfg{
		PollInterval: time.Hour,
		BatchSize:    10,
		StaleAfter:   time.Minute,
	}, "")

	w.Start(context.Background())
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = w.Stop(ctx)
	}()

	repo.add(1)
	w.Notify()
	w.Notify()

	assert.Eventually(t, func() bool { return producer.sent() == 1 }, time.Second, 5*time.Millisecond)
}

func TestIsRetryableError(t *testing.T) {
	assert.True(t, isRetryableError(errors.New("read: Connection Reset by peer")))
	assert.True(t, isRetryableError(fmt.Errorf("write: %w", context.Canceled)))
	assert.True(t, isRetryableError(fmt.Errorf("write: %w", kafka.LeaderNotAvailable)))
	assert.False(t, isRetryableError(fmt.Errorf("write: %w", kafka.MessageSizeTooLarge)))
	assert.False(t, isRetryableError(errors.New("message too large")))
	assert.False(t, isRetryableError(nil))
}

func TestNewMessage(t *testing.T) {
	req := &usecase.WriteRawMessageReq{
		EventID:   uuid.NewString(),
		EventType: usecase.ProductDeleted,
		ProductID: uuid.New(),
		Payload:   []byte{0x0a},
	}

	msg := newMessage(req)

	assert.Equal(t, req.ProductID.String(), string(msg.Key))
	assert.Equal(t, req.Payload, msg.Value)
	headers := map[string]string{}
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	assert.Equal(t, "product.deleted", headers[headerEventType])
	assert.Equal(t, req.EventID, headers[headerEventID])
}

func TestNewProducerRequiresBrokers(t *testing.T) {
	_, err := NewProducer(logger.NewNop(), &cfg.KafkaCfg{Topic: "t"})
	assert.Error(t, err)
}
