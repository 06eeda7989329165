package deliveryfeed

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"

	"dispatch/internal/entities"
	retrierconfig "dispatch/pkg/retrier"
	"dispatch/pkg/retrier/backoff_adapter"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 1 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

// FeedGateway публикует события жизненного цикла доставки в фид изменений.
// Ключ сообщения — id доставки: события одной доставки попадают в одну
// партицию и читаются по порядку.
type FeedGateway struct {
	producer producer
	topic    string
	retrier  retrier
}

func New(producer producer, topic string) *FeedGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     nil, // брокер недоступен — ретраим всё
	}

	return &FeedGateway{
		producer: producer,
		topic:    topic,
		retrier:  backoff_adapter.New(retryConfig),
	}
}

func (g *FeedGateway) PublishDeliveryEvent(ctx context.Context, event entities.DeliveryEvent) error {
	payload, err := json.Marshal(fromDomain(event))
	if err != nil {
		return fmt.Errorf("gateway deliveryfeed, marshal event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: g.topic,
		Key:   sarama.StringEncoder(event.DeliveryID),
		Value: sarama.ByteEncoder(payload),
	}

	err = g.executeWithMetrics(ctx, event.Type.String(), func(_ context.Context) error {
		_, _, sendErr := g.producer.SendMessage(msg)
		return sendErr
	})
	if err != nil {
		return fmt.Errorf("gateway deliveryfeed, publish %s: %w", event.Type, err)
	}

	return nil
}

func (g *FeedGateway) executeWithMetrics(ctx context.Context, eventType string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	result := "ok"
	if err != nil {
		result = "error"
	}

	FeedPublishDuration.WithLabelValues(g.topic, eventType, result).Observe(time.Since(start).Seconds())
	if attempt > 1 {
		FeedPublishRetriesTotal.WithLabelValues(g.topic, eventType, result).Inc()
	}

	return err
}
