package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/ttsbooking/consult-platform/internal/dto"
)

const (
	servicesKey = "services:active"
	servicesTTL = 60 * time.Second
)

// ServiceCache keeps the public service listing in Redis. A nil
// *ServiceCache is valid and disables caching entirely.
type ServiceCache struct {
	client *redis.Client
}

func NewServiceCache(addr string) (*ServiceCache, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &ServiceCache{client: client}, nil
}

func (c *ServiceCache) GetServices(ctx context.Context) ([]dto.ServiceListItem, bool) {
	if c == nil {
		return nil, false
	}

	raw, err := c.client.Get(ctx, servicesKey).Result()
	if err != nil {
		return nil, false
	}

	var items []dto.ServiceListItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, false
	}

	return items, true
}

func (c *ServiceCache) SetServices(ctx context.Context, items []dto.ServiceListItem) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return
	}

	c.client.Set(ctx, servicesKey, raw, servicesTTL)
}

func (c *ServiceCache) InvalidateServices(ctx context.Context) {
	if c == nil {
		return
	}

	c.client.Del(ctx, servicesKey)
}
