// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Locker serializes seed runs across processes. TryLock returns
// ErrSeedInProgress when the key is already held.
type Locker interface {
	TryLock(ctx context.Context, key string, ttl time.Duration) (unlock func(context.Context) error, err error)
}

// lockKeyPrefix namespaces seed locks in Valkey.
const lockKeyPrefix = "contenthub:seed-lock:"

// releaseScript deletes the lock only if it still carries our token, so an
// expired lock re-taken by another process is left alone.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLocker is a Locker backed by SET NX with a TTL.
type RedisLocker struct {
	client *redis.Client
}

// NewRedisLocker returns a Locker using the given Valkey client.
func NewRedisLocker(client *redis.Client) *RedisLocker {
	return &RedisLocker{client: client}
}

// TryLock takes the lock for key, or returns ErrSeedInProgress.
func (l *RedisLocker) TryLock(ctx context.Context, key string, ttl time.Duration) (func(context.Context) error, error) {
	token := uuid.NewString()
	ok, err := l.client.SetNX(ctx, lockKeyPrefix+key, token, ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("seed lock: %w", err)
	}
	if !ok {
		return nil, ErrSeedInProgress
	}

	unlock := func(ctx context.Context) error {
		if err := releaseScript.Run(ctx, l.client, []string{lockKeyPrefix + key}, token).Err(); err != nil {
			return fmt.Errorf("seed unlock: %w", err)
		}
		return nil
	}
	return unlock, nil
}
