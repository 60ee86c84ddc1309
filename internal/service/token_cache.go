package service

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Redis key prefix for issued-token counts per (doctor, date).
const tokenCacheKeyPrefix = "tokens:issued:"

// TokenCache is a non-authoritative cache of issued-token counts backing the
// availability endpoint. The booking transaction itself never reads it; the
// database count stays the source of truth.
type TokenCache interface {
	// GetIssued returns the cached issued count, or ok=false on miss.
	GetIssued(ctx context.Context, doctorName string, date time.Time) (int64, bool)
	SetIssued(ctx context.Context, doctorName string, date time.Time, issued int64) error
	// Invalidate drops the entry after a booking commits.
	Invalidate(ctx context.Context, doctorName string, date time.Time) error
}

type redisTokenCache struct {
	client *redis.Client
	log    *logrus.Logger
}

func NewTokenCache(client *redis.Client, log *logrus.Logger) TokenCache {
	return &redisTokenCache{client: client, log: log}
}

func (c *redisTokenCache) GetIssued(ctx context.Context, doctorName string, date time.Time) (int64, bool) {
	issued, err := c.client.Get(ctx, tokenCacheKey(doctorName, date)).Int64()
	if err != nil {
		if err != redis.Nil {
			c.log.Warnf("Failed to read token cache for %s on %s: %+v", doctorName, date.Format("2006-01-02"), err)
		}
		return 0, false
	}
	return issued, true
}

func (c *redisTokenCache) SetIssued(ctx context.Context, doctorName string, date time.Time, issued int64) error {
	key := tokenCacheKey(doctorName, date)
	if err := c.client.Set(ctx, key, issued, cacheTTL(date)).Err(); err != nil {
		return fmt.Errorf("set token cache %s: %w", key, err)
	}
	return nil
}

func (c *redisTokenCache) Invalidate(ctx context.Context, doctorName string, date time.Time) error {
	key := tokenCacheKey(doctorName, date)
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("invalidate token cache %s: %w", key, err)
	}
	return nil
}

func tokenCacheKey(doctorName string, date time.Time) string {
	return tokenCacheKeyPrefix + doctorName + ":" + date.Format("2006-01-02")
}

// cacheTTL keeps entries until the day after the appointment date.
func cacheTTL(date time.Time) time.Duration {
	expireAt := date.AddDate(0, 0, 1)
	ttl := time.Until(expireAt)
	if ttl <= 0 {
		return 1 * time.Minute
	}
	return ttl
}
