package refresh

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/zhytomyr-tourism/internal/domain"
	"github.com/zhytomyr-tourism/internal/domain/repository"
	"github.com/zhytomyr-tourism/internal/usecase"
	"github.com/zhytomyr-tourism/internal/worker"
	"go.uber.org/zap"
)

const (
	defaultBatchSize = 20
	errorPause       = time.Second
	retryInterval    = 30 * time.Second
)

// Refresher - пересчет снимка статистики
type Refresher interface {
	Refresh(ctx context.Context, trigger string) (*domain.Snapshot, error)
}

// StatisticsRefreshWorker пересчитывает статистику по событиям stream:attractions:updated.
// Пачка событий схлопывается в один пересчет. Каждая реплика читает через свою
// consumer group, чтобы событие получили все экземпляры сервиса.
type StatisticsRefreshWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	refresher    Refresher
	consumerName string
	batchSize    int64

	// pending - последнее обновление не удалось, нужен повтор
	pending   bool
	lastRetry time.Time
}

// NewStatisticsRefreshWorker создает новый StatisticsRefreshWorker
func NewStatisticsRefreshWorker(
	streamRepo repository.StreamRepository,
	refresher Refresher,
	consumerGroup string,
	batchSize int,
	logger *zap.Logger,
) *StatisticsRefreshWorker {
	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}

	return &StatisticsRefreshWorker{
		BaseWorker:   worker.NewBaseWorker("statistics-refresh", consumerGroup+":"+hostname, logger),
		streamRepo:   streamRepo,
		refresher:    refresher,
		consumerName: consumerName,
		batchSize:    int64(batchSize),
	}
}

// Start запускает воркер
func (w *StatisticsRefreshWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting StatisticsRefreshWorker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName),
		zap.Int64("batch_size", w.batchSize))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamAttractionsUpdated, w.ConsumerGroup()); err != nil {
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil
		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()
		default:
		}

		if _, err := w.processBatch(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			logger.Error("Failed to process batch", zap.Error(err))
			if !w.Pause(errorPause) {
				return nil
			}
		}
	}
}

// processBatch читает пачку событий и, если она не пуста, запускает один пересчет.
// Возвращает количество прочитанных сообщений.
func (w *StatisticsRefreshWorker) processBatch(ctx context.Context) (int, error) {
	logger := w.Logger()

	// ConsumeBatch блокируется не дольше таймаута чтения стрима
	messages, err := w.streamRepo.ConsumeBatch(
		ctx,
		domain.StreamAttractionsUpdated,
		w.ConsumerGroup(),
		w.consumerName,
		w.batchSize,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to consume batch: %w", err)
	}

	if len(messages) == 0 {
		w.retryIfPending(ctx)
		return 0, nil
	}

	ids := make([]string, 0, len(messages))
	valid := 0
	for _, msg := range messages {
		ids = append(ids, msg.ID)

		event, err := parseMessage(msg)
		if err != nil {
			logger.Warn("Failed to parse message, skipping",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			continue
		}
		valid++

		logger.Debug("Attractions updated",
			zap.String("event_id", event.EventID.String()),
			zap.String("source", event.Source))
	}

	if valid > 0 {
		w.refresh(ctx)
	}

	// ACK всей пачки, включая битые сообщения, чтобы они не застревали в PEL
	if err := w.streamRepo.AckMessages(ctx, domain.StreamAttractionsUpdated, w.ConsumerGroup(), ids); err != nil {
		logger.Error("Failed to ack messages", zap.Error(err))
	}

	logger.Info("Batch processed",
		zap.Int("messages", len(messages)),
		zap.Int("valid", valid),
		zap.Bool("refresh_pending", w.pending))

	return len(messages), nil
}

func (w *StatisticsRefreshWorker) refresh(ctx context.Context) {
	w.lastRetry = time.Now()
	if _, err := w.refresher.Refresh(ctx, usecase.TriggerStream); err != nil {
		w.pending = true
		return
	}
	w.pending = false
}

// retryIfPending повторяет неудавшийся пересчет не чаще retryInterval
func (w *StatisticsRefreshWorker) retryIfPending(ctx context.Context) {
	if !w.pending || time.Since(w.lastRetry) < retryInterval {
		return
	}
	w.Logger().Info("Retrying failed statistics refresh")
	w.refresh(ctx)
}

// parseMessage парсит сообщение из стрима в AttractionsUpdatedEvent
func parseMessage(msg domain.StreamMessage) (*domain.AttractionsUpdatedEvent, error) {
	if msg.Data == "" {
		return nil, fmt.Errorf("missing or empty 'data' field")
	}

	var event domain.AttractionsUpdatedEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}

	return &event, nil
}
