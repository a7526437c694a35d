package availability

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/sliques/SLQ-OrderService/internal/domain"
)

const (
	keyPrefix     = "slq:counts:"
	generationKey = "slq:counts-generation"
)

// setIfGeneration writes KEYS[2] only while KEYS[1] still holds ARGV[1], a missing counter reads as 0
var setIfGeneration = redis.NewScript(`
local current = redis.call('GET', KEYS[1])
if current == false then
	current = '0'
end
if current ~= ARGV[1] then
	return 0
end
redis.call('SET', KEYS[2], ARGV[2], 'PX', ARGV[3])
return 1
`)

var (
	ErrCacheRead  = errors.New("availability.cache: failed to read")
	ErrCacheWrite = errors.New("availability.cache: failed to write")
)

type dayCountsJSON struct {
	Normal int `json:"normal"`
	Urgent int `json:"urgent"`
}

// RedisCache stores one JSON document per date window
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(addr, password string, db int, ttl time.Duration) *RedisCache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	return &RedisCache{client: client, ttl: ttl}
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

func (c *RedisCache) Get(ctx context.Context, from, to time.Time) (domain.BookingCounts, bool, error) {
	val, err := c.client.Get(ctx, windowKey(from, to)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrCacheRead, err)
	}

	counts, err := decodeCounts(val)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrCacheRead, err)
	}
	return counts, true, nil
}

// Generation current invalidation counter
func (c *RedisCache) Generation(ctx context.Context) (int64, error) {
	gen, err := c.client.Get(ctx, generationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%w: generation: %v", ErrCacheRead, err)
	}
	return gen, nil
}

// Set stores the window unless the generation moved past generation since the caller read it
func (c *RedisCache) Set(ctx context.Context, from, to time.Time, generation int64, counts domain.BookingCounts) error {
	payload, err := encodeCounts(counts)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCacheWrite, err)
	}

	keys := []string{generationKey, windowKey(from, to)}
	args := []interface{}{strconv.FormatInt(generation, 10), payload, c.ttl.Milliseconds()}
	if err := setIfGeneration.Run(ctx, c.client, keys, args...).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrCacheWrite, err)
	}
	return nil
}

// Invalidate bumps the generation and drops every cached window
func (c *RedisCache) Invalidate(ctx context.Context) error {
	if err := c.client.Incr(ctx, generationKey).Err(); err != nil {
		return fmt.Errorf("%w: incr generation: %v", ErrCacheWrite, err)
	}

	iter := c.client.Scan(ctx, 0, keyPrefix+"*", 100).Iterator()
	keys := make([]string, 0)
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("%w: scan: %v", ErrCacheWrite, err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("%w: del: %v", ErrCacheWrite, err)
	}
	return nil
}

func windowKey(from, to time.Time) string {
	return keyPrefix + domain.DateKey(from) + ":" + domain.DateKey(to)
}

func encodeCounts(counts domain.BookingCounts) ([]byte, error) {
	doc := make(map[string]dayCountsJSON, len(counts))
	for date, c := range counts {
		doc[date] = dayCountsJSON{Normal: c.Normal, Urgent: c.Urgent}
	}
	return json.Marshal(doc)
}

func decodeCounts(data []byte) (domain.BookingCounts, error) {
	var doc map[string]dayCountsJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	counts := make(domain.BookingCounts, len(doc))
	for date, c := range doc {
		counts[date] = domain.DayCounts{Normal: c.Normal, Urgent: c.Urgent}
	}
	return counts, nil
}
