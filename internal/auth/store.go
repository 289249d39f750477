package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// TokenStore keeps track of issued token ids.
type TokenStore interface {
	Save(ctx context.Context, tokenID string, userID int64, ttl time.Duration) error
	Exists(ctx context.Context, tokenID string) (bool, error)
}

type redisTokenStore struct {
	rdb *redis.Client
}

// NewTokenStore creates a Redis-based TokenStore. Entries expire with their token.
func NewTokenStore(rdb *redis.Client) TokenStore {
	return &redisTokenStore{rdb: rdb}
}

func tokenKey(tokenID string) string {
	return fmt.Sprintf("token:%s", tokenID)
}

// Save registers a token id for userID until ttl elapses.
func (s *redisTokenStore) Save(ctx context.Context, tokenID string, userID int64, ttl time.Duration) error {
	ctx, span := tracer.Start(ctx, "TokenStore.Save", trace.WithAttributes(
		attribute.Int64("user.id", userID),
	))
	defer span.End()

	return s.rdb.Set(ctx, tokenKey(tokenID), userID, ttl).Err()
}

// Exists reports whether a token id is registered and not expired.
func (s *redisTokenStore) Exists(ctx context.Context, tokenID string) (bool, error) {
	ctx, span := tracer.Start(ctx, "TokenStore.Exists")
	defer span.End()

	n, err := s.rdb.Exists(ctx, tokenKey(tokenID)).Result()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}
