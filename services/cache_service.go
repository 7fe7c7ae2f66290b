package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"tienda_server/structs"
	"tienda_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/redis/go-redis/v9"
)

var (
	redisClient     *redis.Client
	redisClientOnce sync.Once
)

const (
	productListTTL   = 2 * time.Minute
	productDetailTTL = 5 * time.Minute
	cacheOpTimeout   = 500 * time.Millisecond
)

// CacheService fronts Redis for catalog read caching and rate-limit
// counters. Every operation degrades gracefully: a cache failure falls back
// to the database, it never fails a request.
type CacheService struct {
	logger *gecho.Logger
	cfg    *structs.Config
	client *redis.Client
}

func NewCacheService(logger *gecho.Logger, cfg *structs.Config) *CacheService {
	return &CacheService{
		logger: logger,
		cfg:    cfg,
		client: getRedisClient(cfg.Redis),
	}
}

func getRedisClient(cfg *structs.RedisConfig) *redis.Client {
	redisClientOnce.Do(func() {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		})
	})
	return redisClient
}

func (cs *CacheService) Close() error {
	return cs.client.Close()
}

func (cs *CacheService) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), cacheOpTimeout)
	defer cancel()

	return cs.client.Ping(ctx).Err()
}

func (cs *CacheService) Set(key string, value string, ttl time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), cacheOpTimeout)
	defer cancel()

	return cs.client.Set(ctx, key, value, ttl).Err()
}

func (cs *CacheService) Get(key string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cacheOpTimeout)
	defer cancel()

	val, err := cs.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return val, err
}

func (cs *CacheService) Delete(keys ...string) error {
	ctx, cancel := context.WithTimeout(context.Background(), cacheOpTimeout)
	defer cancel()

	return cs.client.Del(ctx, keys...).Err()
}

// DeletePattern removes all keys matching a glob pattern via SCAN
func (cs *CacheService) DeletePattern(pattern string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	iter := cs.client.Scan(ctx, 0, pattern, 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return cs.client.Del(ctx, keys...).Err()
}

// Product caching

func (cs *CacheService) productListKey(filterKey string) string {
	return fmt.Sprintf("products:list:%s", filterKey)
}

func (cs *CacheService) productDetailKey(slugOrId string) string {
	return fmt.Sprintf("products:detail:%s", slugOrId)
}

func (cs *CacheService) GetProductList(filterKey string) (*ProductListResult, error) {
	return getJSON[ProductListResult](cs, cs.productListKey(filterKey))
}

func (cs *CacheService) SetProductList(filterKey string, result *ProductListResult) error {
	return setJSON(cs, cs.productListKey(filterKey), result, productListTTL)
}

func (cs *CacheService) GetProduct(slugOrId string) (*tables.Product, error) {
	return getJSON[tables.Product](cs, cs.productDetailKey(slugOrId))
}

func (cs *CacheService) SetProduct(slugOrId string, product *tables.Product) error {
	return setJSON(cs, cs.productDetailKey(slugOrId), product, productDetailTTL)
}

// InvalidateProductCaches drops every cached catalog read. Called after any
// admin product mutation.
func (cs *CacheService) InvalidateProductCaches() error {
	return cs.DeletePattern("products:*")
}

// Rate limiting

func (cs *CacheService) rateLimitKey(ip, endpoint string) string {
	return fmt.Sprintf("ratelimit:%s:%s", ip, endpoint)
}

// IncrementRateLimit bumps the request counter for an (ip, endpoint) pair
// and returns the new count. The window TTL is set on first increment.
func (cs *CacheService) IncrementRateLimit(ip, endpoint string, window time.Duration) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cacheOpTimeout)
	defer cancel()

	key := cs.rateLimitKey(ip, endpoint)

	count, err := cs.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if count == 1 {
		if err := cs.client.Expire(ctx, key, window).Err(); err != nil {
			cs.logger.Warn("Failed to set rate limit window", gecho.Field("error", err), gecho.Field("key", key))
		}
	}

	return int(count), nil
}

func setJSON[T any](cs *CacheService, key string, value *T, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return cs.Set(key, string(data), ttl)
}

func getJSON[T any](cs *CacheService, key string) (*T, error) {
	raw, err := cs.Get(key)
	if err != nil || raw == "" {
		return nil, err
	}

	var value T
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		return nil, err
	}
	return &value, nil
}
