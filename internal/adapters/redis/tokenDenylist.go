package redis

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

const revokedKeyPrefix = "revoked:"

// TokenDenylistRedis keeps revoked tokens until their natural expiry; the
// TTL on each key makes cleanup automatic.
type TokenDenylistRedis struct {
	Client *redis.Client
}

func NewTokenDenylistRedis(client *redis.Client) *TokenDenylistRedis {
	return &TokenDenylistRedis{Client: client}
}

func (r *TokenDenylistRedis) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	return r.Client.Set(ctx, revokedKeyPrefix+token, 1, ttl).Err()
}

func (r *TokenDenylistRedis) IsRevoked(ctx context.Context, token string) (bool, error) {
	n, err := r.Client.Exists(ctx, revokedKeyPrefix+token).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
