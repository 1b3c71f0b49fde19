package booking

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"salonbook/services/availability"
	"salonbook/utils"

	"github.com/go-redis/redis/v8"
)

// AvailabilityCache stores computed slot lists per salon, date and duration.
type AvailabilityCache interface {
	// Get reports ok=false on a miss.
	Get(ctx context.Context, salonID, date string, duration int) (slots []availability.TimeSlot, ok bool, err error)
	Set(ctx context.Context, salonID, date string, duration int, slots []availability.TimeSlot) error
	// Invalidate drops every duration cached for the salon and date.
	Invalidate(ctx context.Context, salonID, date string) error
	// InvalidateSalon drops every day cached for the salon.
	InvalidateSalon(ctx context.Context, salonID string) error
}

// RedisAvailabilityCache keeps one hash per salon and date, with one field per duration,
// so a booking clears a whole day with a single DEL.
type RedisAvailabilityCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisAvailabilityCache(client *redis.Client, ttl time.Duration) *RedisAvailabilityCache {
	if ttl <= 0 {
		ttl = 2 * time.Minute
	}
	return &RedisAvailabilityCache{Client: client, TTL: ttl}
}

func availabilityKey(salonID, date string) string {
	return utils.AvailabilityCachePrefix + salonID + ":" + date
}

func (c *RedisAvailabilityCache) Get(ctx context.Context, salonID, date string, duration int) ([]availability.TimeSlot, bool, error) {
	raw, err := c.Client.HGet(ctx, availabilityKey(salonID, date), strconv.Itoa(duration)).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var slots []availability.TimeSlot
	if err := json.Unmarshal([]byte(raw), &slots); err != nil {
		return nil, false, err
	}
	return slots, true, nil
}

func (c *RedisAvailabilityCache) Set(ctx context.Context, salonID, date string, duration int, slots []availability.TimeSlot) error {
	data, err := json.Marshal(slots)
	if err != nil {
		return err
	}
	key := availabilityKey(salonID, date)
	pipe := c.Client.TxPipeline()
	pipe.HSet(ctx, key, strconv.Itoa(duration), data)
	pipe.Expire(ctx, key, c.TTL)
	_, err = pipe.Exec(ctx)
	return err
}

func (c *RedisAvailabilityCache) Invalidate(ctx context.Context, salonID, date string) error {
	return c.Client.Del(ctx, availabilityKey(salonID, date)).Err()
}

func (c *RedisAvailabilityCache) InvalidateSalon(ctx context.Context, salonID string) error {
	iter := c.Client.Scan(ctx, 0, availabilityKey(salonID, "*"), 100).Iterator()
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
	return c.Client.Del(ctx, keys...).Err()
}
