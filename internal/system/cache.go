package system

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"starsystem-server/internal/shared/redis"
)

// Cache is a read-through layer in front of the Store. Misses return
// (nil, nil).
type Cache interface {
	GetSystem(ctx context.Context, id uuid.UUID) (*Record, error)
	SetSystem(ctx context.Context, rec *Record) error
	GetTexture(ctx context.Context, id uuid.UUID, index int) ([]byte, error)
	SetTexture(ctx context.Context, id uuid.UUID, index int, png []byte) error
	Invalidate(ctx context.Context, id uuid.UUID) error
}

// NoopCache never holds anything.
type NoopCache struct{}

func (NoopCache) GetSystem(context.Context, uuid.UUID) (*Record, error) { return nil, nil }
func (NoopCache) SetSystem(context.Context, *Record) error { return nil }
func (NoopCache) GetTexture(context.Context, uuid.UUID, int) ([]byte, error) { return nil, nil }
func (NoopCache) SetTexture(context.Context, uuid.UUID, int, []byte) error { return nil }
func (NoopCache) Invalidate(context.Context, uuid.UUID) error { return nil }

// RedisCache stores system JSON and texture PNGs under per-system keys.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func systemKey(id uuid.UUID) string {
	return "system:" + id.String()
}

func textureKey(id uuid.UUID, index int) string {
	return fmt.Sprintf("system:%s:texture:%d", id, index)
}

func texturePattern(id uuid.UUID) string {
	return fmt.Sprintf("system:%s:texture:*", id)
}

func (c *RedisCache) GetSystem(ctx context.Context, id uuid.UUID) (*Record, error) {
	data, err := c.client.Get(ctx, systemKey(id)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cached system: %w", err)
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to decode cached system: %w", err)
	}
	return &rec, nil
}

func (c *RedisCache) SetSystem(ctx context.Context, rec *Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to encode system: %w", err)
	}
	if err := c.client.Set(ctx, systemKey(rec.ID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache system: %w", err)
	}
	return nil
}

func (c *RedisCache) GetTexture(ctx context.Context, id uuid.UUID, index int) ([]byte, error) {
	data, err := c.client.Get(ctx, textureKey(id, index)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cached texture: %w", err)
	}
	return data, nil
}

func (c *RedisCache) SetTexture(ctx context.Context, id uuid.UUID, index int, png []byte) error {
	if err := c.client.Set(ctx, textureKey(id, index), png, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache texture: %w", err)
	}
	return nil
}

// Invalidate drops the system entry and every texture cached for it.
func (c *RedisCache) Invalidate(ctx context.Context, id uuid.UUID) error {
	keys := []string{systemKey(id)}
	iter := c.client.Scan(ctx, 0, texturePattern(id), 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan cached textures: %w", err)
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to invalidate system: %w", err)
	}
	return nil
}
