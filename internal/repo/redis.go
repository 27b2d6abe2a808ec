package repo

import (
	"context"
	"fmt"
	"log"

	"CampusVault/config"

	"github.com/redis/go-redis/v9"
)

// InitRedis connects to Redis. Returns nil when no address is configured;
// callers treat a nil client as cache disabled.
func InitRedis(cfg *config.Config) *redis.Client {
	if cfg.RedisAddr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		log.Fatal(fmt.Sprintf("init redis fail: %v", err))
	}
	log.Println("init redis success")
	return client
}
