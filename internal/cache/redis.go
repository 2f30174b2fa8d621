package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/avoicu/airdesk/config"
	"github.com/avoicu/airdesk/internal/domain"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client    *redis.Client
	routesTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, routesTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:    redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		routesTTL: routesTTL,
	}
}

// GetRoute returns the cached search result for a route, or (nil, nil)
// on a cache miss.
func (c *RedisCache) GetRoute(ctx context.Context, from, to string) ([]domain.Flight, error) {
	data, err := c.client.Get(ctx, routeKey(from, to)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var flights []domain.Flight
	if err := json.Unmarshal(data, &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

func (c *RedisCache) SetRoute(ctx context.Context, from, to string, flights []domain.Flight) error {
	payload, err := json.Marshal(flights)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, routeKey(from, to), payload, c.routesTTL).Err()
}

func (c *RedisCache) InvalidateRoute(ctx context.Context, from, to string) error {
	return c.client.Del(ctx, routeKey(from, to)).Err()
}

// AcquireFlightLock takes a short-lived hold on a flight so two
// concurrent bookings do not hand out the same seat number.
func (c *RedisCache) AcquireFlightLock(ctx context.Context, flightNumber string, ttl time.Duration) (bool, error) {
	return c.client.SetNX(ctx, flightLockKey(flightNumber), "locked", ttl).Result()
}

func (c *RedisCache) ReleaseFlightLock(ctx context.Context, flightNumber string) error {
	return c.client.Del(ctx, flightLockKey(flightNumber)).Err()
}

func routeKey(from, to string) string {
	return fmt.Sprintf("cache:routes:%s:%s", from, to)
}

func flightLockKey(flightNumber string) string {
	return fmt.Sprintf("lock:flight:%s", flightNumber)
}
