package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/localskill/marketplace-api/internal/config"
	"github.com/localskill/marketplace-api/internal/models"
)

const (
	providerFeedKey = "providers:feed"
	providerFeedTTL = 60 * time.Second
)

// FeedCache is a read-through cache for the provider feed. A nil *FeedCache
// is valid and behaves as a permanent miss, so the API runs without Redis.
type FeedCache struct {
	client *redis.Client
}

func New(cfg *config.Config) (*FeedCache, error) {
	if cfg.RedisAddr == "" {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &FeedCache{client: client}, nil
}

func (c *FeedCache) GetProviders(ctx context.Context) ([]models.Provider, bool) {
	if c == nil {
		return nil, false
	}

	raw, err := c.client.Get(ctx, providerFeedKey).Bytes()
	if err != nil {
		return nil, false
	}

	var providers []models.Provider
	if err := json.Unmarshal(raw, &providers); err != nil {
		return nil, false
	}

	return providers, true
}

func (c *FeedCache) SetProviders(ctx context.Context, providers []models.Provider) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(providers)
	if err != nil {
		return
	}

	// best effort: the TTL bounds staleness, a failed set is just a miss
	c.client.Set(ctx, providerFeedKey, raw, providerFeedTTL)
}
