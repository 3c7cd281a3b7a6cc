// Package cache keeps a short-lived copy of the leaderboard in Redis.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/abrezinsky/arena/internal/models"
)

const leaderboardKey = "arena:leaderboard"

// LeaderboardCache stores the full ranked leaderboard
type LeaderboardCache interface {
	GetLeaders(ctx context.Context) ([]models.Leader, bool, error)
	SetLeaders(ctx context.Context, leaders []models.Leader) error
	Invalidate(ctx context.Context) error
}

// Connect dials Redis and checks the connection
func Connect(ctx context.Context, addr string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, err
	}
	return rdb, nil
}

// Redis is a LeaderboardCache backed by a Redis client
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis wraps client; entries expire after ttl
func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{client: client, ttl: ttl}
}

func (c *Redis) GetLeaders(ctx context.Context) ([]models.Leader, bool, error) {
	b, err := c.client.Get(ctx, leaderboardKey).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var leaders []models.Leader
	if err := json.Unmarshal(b, &leaders); err != nil {
		return nil, false, err
	}
	return leaders, true, nil
}

func (c *Redis) SetLeaders(ctx context.Context, leaders []models.Leader) error {
	b, err := json.Marshal(leaders)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, leaderboardKey, b, c.ttl).Err()
}

func (c *Redis) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, leaderboardKey).Err()
}

// Noop never stores anything; used when no Redis address is configured
type Noop struct{}

func (Noop) GetLeaders(context.Context) ([]models.Leader, bool, error) { return nil, false, nil }
func (Noop) SetLeaders(context.Context, []models.Leader) error         { return nil }
func (Noop) Invalidate(context.Context) error                          { return nil }

var (
	_ LeaderboardCache = (*Redis)(nil)
	_ LeaderboardCache = Noop{}
)
