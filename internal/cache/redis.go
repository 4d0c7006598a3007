// Package cache provides Redis caching utilities for the application.
package cache

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

var client *redis.Client

// InterpretationTTL is how long resolved interpretations stay cached.
// Curated content changes rarely, so a long TTL is safe.
const InterpretationTTL = 12 * time.Hour

// InterpretationKey builds the cache key for a resolved interpretation.
func InterpretationKey(locale, timeStr string) string {
	return fmt.Sprintf("interp:%s:%s", locale, timeStr)
}

// InitRedis initializes the Redis client with the given address.
// The application degrades gracefully without Redis: caching and rate
// limiting are skipped, everything else works.
func InitRedis(addr string) {
	var opts *redis.Options
	if strings.Contains(addr, "://") {
		parsed, err := redis.ParseURL(addr)
		if err != nil {
			log.Printf("Redis connection warning: invalid REDIS_URL %q: %v (continuing without cache)", addr, err)
			client = nil
			return
		}
		opts = parsed
	} else {
		opts = &redis.Options{Addr: addr}
	}

	client = redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Redis connection warning: %v (continuing without cache)", err)
		client = nil
	} else {
		log.Println("Redis connected successfully")
	}
}

// GetClient returns the current Redis client instance.
func GetClient() *redis.Client {
	return client
}
