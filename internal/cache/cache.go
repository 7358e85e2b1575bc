package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/faredeck/faredeck/internal/models"
)

// Cache stores raw (pre-filter, pre-sort) result sets per search request
// so repeat searches skip the provider fan-out.
type Cache interface {
	Get(ctx context.Context, req models.SearchRequest) ([]models.Offer, bool)
	Set(ctx context.Context, req models.SearchRequest, offers []models.Offer) error
	Close() error
}

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	TTL      time.Duration
}

func DefaultRedisConfig() RedisConfig {
	return RedisConfig{
		Host: "localhost",
		Port: "6379",
		TTL:  5 * time.Minute,
	}
}

func NewRedisCache(cfg RedisConfig) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Host + ":" + cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisCache{
		client: client,
		ttl:    cfg.TTL,
	}, nil
}

func (c *RedisCache) Get(ctx context.Context, req models.SearchRequest) ([]models.Offer, bool) {
	data, err := c.client.Get(ctx, generateKey(req)).Bytes()
	if err != nil {
		return nil, false
	}

	var offers []models.Offer
	if err := json.Unmarshal(data, &offers); err != nil {
		return nil, false
	}

	return offers, true
}

func (c *RedisCache) Set(ctx context.Context, req models.SearchRequest, offers []models.Offer) error {
	data, err := json.Marshal(offers)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, generateKey(req), data, c.ttl).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

type NoOpCache struct{}

func NewNoOpCache() *NoOpCache {
	return &NoOpCache{}
}

func (c *NoOpCache) Get(ctx context.Context, req models.SearchRequest) ([]models.Offer, bool) {
	return nil, false
}

func (c *NoOpCache) Set(ctx context.Context, req models.SearchRequest, offers []models.Offer) error {
	return nil
}

func (c *NoOpCache) Close() error {
	return nil
}

// The key covers only the fields that change the raw result set; filters
// and sort apply after the cache.
func generateKey(req models.SearchRequest) string {
	keyData := struct {
		Vertical    models.Vertical
		Origin      string
		Destination string
		StartDate   string
		EndDate     string
		Passengers  int
	}{
		Vertical:    req.Vertical,
		Origin:      req.Origin,
		Destination: req.Destination,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Passengers:  req.Passengers,
	}

	data, _ := json.Marshal(keyData)
	hash := sha256.Sum256(data)
	return "offers:" + hex.EncodeToString(hash[:])
}
