package redis

import (
	"context"
	"errors"
	"time"

	"github.com/muhammadheryan/car-market/constant"
	goredis "github.com/redis/go-redis/v9"
)

// Repository is the revocation list of session tokens. Tokens are stateless,
// so a revoked jti only needs to be remembered until the token would expire.
type Repository interface {
	RevokeToken(ctx context.Context, jti string, ttl time.Duration) error
	IsTokenRevoked(ctx context.Context, jti string) (bool, error)
}

type redis struct {
	client *goredis.Client
}

func NewRepository(client *goredis.Client) Repository {
	return &redis{client: client}
}

// RevokeToken is a no-op for an already expired token.
func (r *redis) RevokeToken(ctx context.Context, jti string, ttl time.Duration) error {
	if r.client == nil || ttl <= 0 {
		return nil
	}
	return r.client.Set(ctx, constant.RevokedTokenKey+jti, 1, ttl).Err()
}

func (r *redis) IsTokenRevoked(ctx context.Context, jti string) (bool, error) {
	if r.client == nil {
		return false, nil
	}
	err := r.client.Get(ctx, constant.RevokedTokenKey+jti).Err()
	if errors.Is(err, goredis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
