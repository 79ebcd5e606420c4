// Package repository position cache
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"Margin-Position-Service/internal/model"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// PositionsCache redis cache for margin position point lookups
type PositionsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPositionsCache positions cache constructor
func NewPositionsCache(client *redis.Client, ttl time.Duration) *PositionsCache {
	return &PositionsCache{client: client, ttl: ttl}
}

func positionKey(id uuid.UUID) string {
	return fmt.Sprintf("margin-position:%s", id)
}

// GetPosition get cached position, nil without error on cache miss
func (c *PositionsCache) GetPosition(ctx context.Context, id uuid.UUID) (*model.MarginPosition, error) {
	data, err := c.client.Get(ctx, positionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("positionsCache - GetPosition - Get: %w", err)
	}

	position := &model.MarginPosition{}
	if err = json.Unmarshal(data, position); err != nil {
		return nil, fmt.Errorf("positionsCache - GetPosition - Unmarshal: %w", err)
	}

	return position, nil
}

// SetPosition cache position with configured ttl
func (c *PositionsCache) SetPosition(ctx context.Context, position *model.MarginPosition) error {
	data, err := json.Marshal(position)
	if err != nil {
		return fmt.Errorf("positionsCache - SetPosition - Marshal: %w", err)
	}

	if err = c.client.Set(ctx, positionKey(position.ID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("positionsCache - SetPosition - Set: %w", err)
	}

	return nil
}

// DeletePosition drop cached position after a write
func (c *PositionsCache) DeletePosition(ctx context.Context, id uuid.UUID) error {
	if err := c.client.Del(ctx, positionKey(id)).Err(); err != nil {
		return fmt.Errorf("positionsCache - DeletePosition - Del: %w", err)
	}

	return nil
}
