package redis

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	Client *redis.Client
	Ctx    = context.Background()
)

const (
	PractitionersKey = "practitioners:approved"
	PractitionersTTL = 5 * time.Minute
)

// InitRedis connects the optional cache. The service runs fine without it,
// so a failed connection only logs a warning and leaves Client nil.
func InitRedis() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Println("REDIS_ADDR not set, practitioner cache disabled")
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   0,
	})

	if _, err := client.Ping(Ctx).Result(); err != nil {
		log.Printf("Warning: Failed to connect to Redis at %s: %v", addr, err)
		return
	}

	Client = client
	log.Println("✅ Connected to Redis")
}

// GetPractitioners returns the cached approved-practitioner listing, or ""
// when the cache is cold or unavailable.
func GetPractitioners() string {
	if Client == nil {
		return ""
	}
	val, err := Client.Get(Ctx, PractitionersKey).Result()
	if err != nil {
		return ""
	}
	return val
}

// SetPractitioners stores the serialized listing.
func SetPractitioners(payload string) {
	if Client == nil {
		return
	}
	if err := Client.Set(Ctx, PractitionersKey, payload, PractitionersTTL).Err(); err != nil {
		log.Printf("Failed to cache practitioner listing: %v", err)
	}
}

// InvalidatePractitioners drops the cached listing after any change that can
// affect it (admin decisions, degree uploads).
func InvalidatePractitioners() {
	if Client == nil {
		return
	}
	if err := Client.Del(Ctx, PractitionersKey).Err(); err != nil {
		log.Printf("Failed to invalidate practitioner cache: %v", err)
	}
}
