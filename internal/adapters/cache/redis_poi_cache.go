package cache

import (
	"context"
	"encoding/json"
	"log"

	"github.com/redis/go-redis/v9"

	"tour-curation-service/internal/domain"
)

const redisKeyPrefix = "poi:"

// RedisPOICache shares fetch memoization across instances. Values are
// JSON-encoded place lists with no expiry, matching the in-memory cache's
// append-only contract. Cache failures degrade to a miss; they never fail the
// request.
type RedisPOICache struct {
	rdb *redis.Client
}

// NewRedisPOICache connects using a redis:// URL.
func NewRedisPOICache(url string) (*RedisPOICache, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return &RedisPOICache{rdb: redis.NewClient(opt)}, nil
}

func (c *RedisPOICache) Get(ctx context.Context, key string) ([]domain.Place, bool) {
	raw, err := c.rdb.Get(ctx, redisKeyPrefix+key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("poi cache get failed: key=%s err=%v", key, err)
		}
		return nil, false
	}

	var pois []domain.Place
	if err := json.Unmarshal(raw, &pois); err != nil {
		log.Printf("poi cache decode failed: key=%s err=%v", key, err)
		return nil, false
	}

	return pois, true
}

func (c *RedisPOICache) Put(ctx context.Context, key string, pois []domain.Place) {
	raw, err := json.Marshal(pois)
	if err != nil {
		log.Printf("poi cache encode failed: key=%s err=%v", key, err)
		return
	}

	if err := c.rdb.Set(ctx, redisKeyPrefix+key, raw, 0).Err(); err != nil {
		log.Printf("poi cache put failed: key=%s err=%v", key, err)
	}
}
