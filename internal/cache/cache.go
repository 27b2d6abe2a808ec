package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"CampusVault/model"

	"github.com/redis/go-redis/v9"
)

const (
	keyUserInfo       = "user:info"
	keyResourceByHash = "resource:hash"

	defaultTTL = 5 * time.Minute
)

// Cache is a best-effort lookup cache over Redis. A nil *Cache is valid and
// disables caching; the database stays authoritative either way.
type Cache struct {
	client *redis.Client
}

// New wraps a Redis client. Returns nil when the client is nil.
func New(client *redis.Client) *Cache {
	if client == nil {
		return nil
	}
	return &Cache{client: client}
}

// BuildKey builds a cache key from a prefix and parameters.
func BuildKey(prefix string, params ...interface{}) string {
	key := prefix
	for _, param := range params {
		key += fmt.Sprintf(":%v", param)
	}
	return key
}

func (c *Cache) get(ctx context.Context, key string, dest interface{}) bool {
	if c == nil {
		return false
	}
	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(val), dest) == nil
}

func (c *Cache) set(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if c == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, key, string(data), ttl).Err()
}

func (c *Cache) del(ctx context.Context, key string) {
	if c == nil {
		return
	}
	_ = c.client.Del(ctx, key).Err()
}

// GetUserInfo reads a cached user.
func (c *Cache) GetUserInfo(ctx context.Context, userID uint64) (*model.User, bool) {
	var user model.User
	if !c.get(ctx, BuildKey(keyUserInfo, userID), &user) {
		return nil, false
	}
	return &user, true
}

// SetUserInfo writes a cached user.
func (c *Cache) SetUserInfo(ctx context.Context, user *model.User) {
	if user == nil {
		return
	}
	c.set(ctx, BuildKey(keyUserInfo, user.ID), user, defaultTTL)
}

// InvalidateUserInfo clears a cached user.
func (c *Cache) InvalidateUserInfo(ctx context.Context, userID uint64) {
	c.del(ctx, BuildKey(keyUserInfo, userID))
}

// GetResourceIDByHash reads a cached resource ID for a content digest.
func (c *Cache) GetResourceIDByHash(ctx context.Context, hash string) (uint64, bool) {
	var id uint64
	if !c.get(ctx, BuildKey(keyResourceByHash, hash), &id) || id == 0 {
		return 0, false
	}
	return id, true
}

// SetResourceIDByHash caches the resource ID for a content digest.
func (c *Cache) SetResourceIDByHash(ctx context.Context, hash string, id uint64) {
	c.set(ctx, BuildKey(keyResourceByHash, hash), id, defaultTTL)
}

// InvalidateResourceHash clears the cached ID for a content digest.
func (c *Cache) InvalidateResourceHash(ctx context.Context, hash string) {
	c.del(ctx, BuildKey(keyResourceByHash, hash))
}
