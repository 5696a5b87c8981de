package services

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/sy4k1/gla-it-project/internal/logger"
)

const sessionCacheTTL = 24 * time.Hour

// SessionCache keeps a token→email mapping in redis in front of the access
// token table. The table stays the source of truth: entries are written on
// issue, removed on revoke, and misses fall through to the database. A nil
// cache disables caching entirely.
type SessionCache struct {
	rdb *redis.Client
}

func NewSessionCache(rdb *redis.Client) *SessionCache {
	return &SessionCache{rdb: rdb}
}

func (c *SessionCache) Put(ctx context.Context, token, email string) {
	if c == nil || c.rdb == nil {
		return
	}
	if err := c.rdb.Set(ctx, "session:"+token, email, sessionCacheTTL).Err(); err != nil {
		logger.Log.Warnw("session cache put failed", "error", err)
	}
}

// Get returns the cached email for a token, or "" on miss or error.
func (c *SessionCache) Get(ctx context.Context, token string) string {
	if c == nil || c.rdb == nil {
		return ""
	}
	email, err := c.rdb.Get(ctx, "session:"+token).Result()
	if err != nil {
		if err != redis.Nil {
			logger.Log.Warnw("session cache get failed", "error", err)
		}
		return ""
	}
	return email
}

func (c *SessionCache) Delete(ctx context.Context, token string) {
	if c == nil || c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, "session:"+token).Err(); err != nil {
		logger.Log.Warnw("session cache delete failed", "error", err)
	}
}
