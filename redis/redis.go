package redis

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	Client *redis.Client
	Ctx    = context.Background()
)

// InitRedis connects to the Redis instance at REDIS_ADDR. Callers skip the
// call entirely when no address is configured; Client stays nil and the
// helpers below degrade to no-ops.
func InitRedis() error {
	client := redis.NewClient(&redis.Options{
		Addr: os.Getenv("REDIS_ADDR"),
		DB:   0,
	})

	if _, err := client.Ping(Ctx).Result(); err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	Client = client
	fmt.Println("✅ Connected to Redis")
	return nil
}

func gameCodeKey(email, code string) string {
	return fmt.Sprintf("gamecode:%s:%s", email, code)
}

// StoreGameCode mirrors the store-level 12 hour expiry for a freshly
// generated code. The relational row stays authoritative; the key simply
// vanishes on its own when the code lapses.
func StoreGameCode(email, code string, ttl time.Duration) error {
	if Client == nil {
		return nil
	}
	return Client.Set(Ctx, gameCodeKey(email, code), 1, ttl).Err()
}

// GameCodeLive reports whether the code's expiry key still exists. Without a
// configured client the check degrades to a no-op and callers rely on the
// relational CreatedAt guard alone.
func GameCodeLive(email, code string) bool {
	if Client == nil {
		return true
	}
	exists, err := Client.Exists(Ctx, gameCodeKey(email, code)).Result()
	if err != nil {
		return true
	}
	return exists > 0
}

// DeleteGameCode drops the expiry key for a swept code.
func DeleteGameCode(email, code string) {
	if Client == nil {
		return
	}
	Client.Del(Ctx, gameCodeKey(email, code))
}

// CacheGet returns a cached response body, if one is present.
func CacheGet(key string) (string, bool) {
	if Client == nil {
		return "", false
	}
	value, err := Client.Get(Ctx, key).Result()
	if err != nil {
		return "", false
	}
	return value, true
}

// CacheSet stores a response body under key for ttl.
func CacheSet(key, value string, ttl time.Duration) {
	if Client == nil {
		return
	}
	Client.Set(Ctx, key, value, ttl)
}
