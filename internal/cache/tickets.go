// Package cache keeps a short-lived record of used redemption tickets so the
// client's status poll can skip the database.
package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Close() error
}

type RedisTicketCache struct {
	client Client
	ttl    time.Duration
}

func NewRedisClient(ctx context.Context, address string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: address,
		DB:   0,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return client, nil
}

func NewRedisTicketCache(client Client, ttl time.Duration) *RedisTicketCache {
	return &RedisTicketCache{client: client, ttl: ttl}
}

func key(ticketID string) string {
	return fmt.Sprintf("ticket:%s:used", ticketID)
}

func (c *RedisTicketCache) MarkUsed(ctx context.Context, ticketID string, clientID int) error {
	return c.client.Set(ctx, key(ticketID), clientID, c.ttl).Err()
}

// UsedBy returns the client that used the ticket. ok is false on a miss.
func (c *RedisTicketCache) UsedBy(ctx context.Context, ticketID string) (int, bool, error) {
	val, err := c.client.Get(ctx, key(ticketID)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	clientID, err := strconv.Atoi(val)
	if err != nil {
		return 0, false, fmt.Errorf("corrupt cache entry for ticket %s: %w", ticketID, err)
	}
	return clientID, true, nil
}

func (c *RedisTicketCache) Close() error {
	return c.client.Close()
}

// NopCache always misses.
type NopCache struct{}

func (NopCache) MarkUsed(ctx context.Context, ticketID string, clientID int) error { return nil }

func (NopCache) UsedBy(ctx context.Context, ticketID string) (int, bool, error) {
	return 0, false, nil
}

func (NopCache) Close() error { return nil }
