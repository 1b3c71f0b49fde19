// File: salonbook/utils/auth_session.go
package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// AuthSession is the cached view of a signed-in user, keyed by token hash.
type AuthSession struct {
	UserID    string    `json:"userId"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// SaveAuthSession saves the session in Redis with AuthCacheTTL, along with a
// pointer from the user to the token hash.
func SaveAuthSession(ctx context.Context, client *redis.Client, tokenHash string, session AuthSession) error {
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now()
	}
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal auth session: %w", err)
	}
	pipe := client.TxPipeline()
	pipe.Set(ctx, AuthCachePrefix+tokenHash, data, AuthCacheTTL)
	pipe.Set(ctx, AuthUserPrefix+session.UserID, tokenHash, AuthCacheTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save auth session: %w", err)
	}
	return nil
}

// GetAuthSession retrieves the session from Redis. redis.Nil is returned on a miss.
func GetAuthSession(ctx context.Context, client *redis.Client, tokenHash string) (*AuthSession, error) {
	data, err := client.Get(ctx, AuthCachePrefix+tokenHash).Result()
	if err != nil {
		return nil, err
	}
	var session AuthSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal auth session: %w", err)
	}
	return &session, nil
}

// DeleteAuthSession removes a session from Redis.
func DeleteAuthSession(ctx context.Context, client *redis.Client, tokenHash string) error {
	return client.Del(ctx, AuthCachePrefix+tokenHash).Err()
}

// DeleteUserAuthSession removes the cached session of userID, if any.
func DeleteUserAuthSession(ctx context.Context, client *redis.Client, userID string) error {
	tokenHash, err := client.Get(ctx, AuthUserPrefix+userID).Result()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		return err
	}
	return client.Del(ctx, AuthCachePrefix+tokenHash, AuthUserPrefix+userID).Err()
}
