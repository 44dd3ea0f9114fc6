// Package tokenstore provides the session token stores: Redis by default, Postgres as a fallback.
package tokenstore

import (
	"context"
	"time"

	"github.com/dac-os/auth/internal/domain/entity"
	"github.com/dac-os/auth/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "session:"

// errTokenAlreadyExpired rejects a write whose expiry has already passed.
var errTokenAlreadyExpired = errors.New("session token already expired")

// RedisStore keeps each token as a plain key whose value is the account id and whose
// expiry is set on write. Redis drops the key on its own; nothing ever extends it.
type RedisStore struct {
	client redis.UniversalClient
	now    func() time.Time
}

var _ repository.SessionStore = (*RedisStore)(nil)

// NewRedisStore wraps an existing client.
func NewRedisStore(client redis.UniversalClient) *RedisStore {
	return &RedisStore{client: client, now: time.Now}
}

func redisKey(token string) string {
	return redisKeyPrefix + token
}

// Save writes the token with its full lifetime as TTL. Tokens without an issue time
// get whatever is left until ExpiresAt by the store's clock.
func (s *RedisStore) Save(ctx context.Context, token *entity.SessionToken) error {
	ttl := token.Lifetime()
	if ttl == 0 {
		ttl = token.ExpiresAt.Sub(s.now())
	}
	if ttl <= 0 {
		return errTokenAlreadyExpired
	}

	if err := s.client.Set(ctx, redisKey(token.Token), token.AccountID.String(), ttl).Err(); err != nil {
		return errors.Wrap(err, "redis set session token")
	}

	return nil
}

// Find reads the account id and remaining TTL in one round trip.
func (s *RedisStore) Find(ctx context.Context, token string) (*entity.SessionToken, error) {
	key := redisKey(token)

	pipe := s.client.Pipeline()
	getCmd := pipe.Get(ctx, key)
	ttlCmd := pipe.PTTL(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, errors.Wrap(err, "redis get session token")
	}

	value, err := getCmd.Result()
	if errors.Is(err, redis.Nil) {
		return nil, repository.ErrSessionTokenNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "redis get session token")
	}

	accountID, err := uuid.Parse(value)
	if err != nil {
		return nil, errors.Wrapf(err, "malformed session entry for %s", key)
	}

	session := &entity.SessionToken{Token: token, AccountID: accountID}
	if ttl := ttlCmd.Val(); ttl > 0 {
		session.ExpiresAt = s.now().Add(ttl)
	}

	return session, nil
}
