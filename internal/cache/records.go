// Package cache keeps recently generated records in Redis so result lookups
// avoid a database round trip.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"promptserver/internal/domain"
)

// RecordCache stores generation records keyed by their ID. A nil cache is
// valid and turns every operation into a no-op miss.
type RecordCache struct {
	client *redis.Client
	ttl    time.Duration
}

const defaultTTL = time.Hour

func NewRecordCache(client *redis.Client, ttl time.Duration) *RecordCache {
	if client == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &RecordCache{client: client, ttl: ttl}
}

func recordKey(id string) string {
	return "result:" + id
}

func (c *RecordCache) Set(ctx context.Context, record *domain.GenerationRecord) error {
	if c == nil || record == nil {
		return nil
	}
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("cache: marshal record: %w", err)
	}
	if err := c.client.Set(ctx, recordKey(record.ID), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache: set record: %w", err)
	}
	return nil
}

func (c *RecordCache) Get(ctx context.Context, id string) (*domain.GenerationRecord, error) {
	if c == nil {
		return nil, domain.ErrNotFound
	}
	payload, err := c.client.Get(ctx, recordKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("cache: get record: %w", err)
	}
	var record domain.GenerationRecord
	if err := json.Unmarshal(payload, &record); err != nil {
		return nil, fmt.Errorf("cache: decode record: %w", err)
	}
	return &record, nil
}
