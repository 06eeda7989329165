package rediscache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"dispatch/internal/entities"
)

const keyPrefix = "track:"

// TrackCache держит публичные ответы трекинга с коротким TTL: страница
// получателя опрашивается часто, а данные меняются редко. Промах и
// недоступный Redis для вызывающего неотличимы от пустого кэша.
type TrackCache struct {
	c   *redis.Client
	ttl time.Duration
}

func New(addr string, ttl time.Duration) *TrackCache {
	return &TrackCache{
		c: redis.NewClient(&redis.Options{
			Addr: addr,
		}),
		ttl: ttl,
	}
}

func NewWithClient(client *redis.Client, ttl time.Duration) *TrackCache {
	return &TrackCache{
		c:   client,
		ttl: ttl,
	}
}

func (r *TrackCache) Get(ctx context.Context, trackingNumber string) (*entities.DeliveryTrack, error) {
	val, err := r.c.Get(ctx, keyPrefix+trackingNumber).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var track entities.DeliveryTrack
	if err := json.Unmarshal(val, &track); err != nil {
		return nil, fmt.Errorf("unmarshal cached track: %w", err)
	}
	return &track, nil
}

func (r *TrackCache) Set(ctx context.Context, trackingNumber string, track *entities.DeliveryTrack) error {
	val, err := json.Marshal(track)
	if err != nil {
		return fmt.Errorf("marshal track: %w", err)
	}

	if err := r.c.Set(ctx, keyPrefix+trackingNumber, val, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (r *TrackCache) Invalidate(ctx context.Context, trackingNumber string) error {
	if err := r.c.Del(ctx, keyPrefix+trackingNumber).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

func (r *TrackCache) Close() error {
	return r.c.Close()
}
