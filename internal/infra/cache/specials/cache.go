package specials

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/LittleLemon-ReservationService/internal/domain"
)

// Key ключ, под которым хранится меню недели
const Key = "specials:weekly"

// Cache кеш меню недели в redis (значение - JSON-массив позиций)
type Cache struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewCache создает кеш меню недели
func NewCache(client redis.Cmdable, ttl time.Duration) *Cache {
	return &Cache{
		client: client,
		ttl:    ttl,
	}
}

// Get возвращает закешированное меню; found=false, если ключа нет
func (c *Cache) Get(ctx context.Context) ([]domain.SpecialItem, bool, error) {
	payload, err := c.client.Get(ctx, Key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: Get - key %s: %v", ErrCacheRead, Key, err)
	}

	var items []domain.SpecialItem
	if err := json.Unmarshal(payload, &items); err != nil {
		return nil, false, fmt.Errorf("%w: Get - key %s: %v", ErrDecode, Key, err)
	}

	return items, true, nil
}

// Set сохраняет меню с TTL кеша
func (c *Cache) Set(ctx context.Context, items []domain.SpecialItem) error {
	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("%w: Set - marshal: %v", ErrCacheWrite, err)
	}

	if err := c.client.Set(ctx, Key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Set - key %s: %v", ErrCacheWrite, Key, err)
	}

	return nil
}
