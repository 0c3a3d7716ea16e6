package redislock

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// compareAndDeleteScript deletes a key only while it still stores the
// caller's token. GET and DEL run inside one script so the check and the
// delete cannot interleave with another writer.
const compareAndDeleteScript = `
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`

// LockStore implements the lock port on Redis. Every method maps to a
// single atomic command; the business rules on top live in the services.
type LockStore struct {
	client *redis.Client
}

func NewLockStore(client *redis.Client) *LockStore {
	return &LockStore{client: client}
}

func (s *LockStore) TryAcquire(ctx context.Context, key, token string, ttl time.Duration) (bool, error) {
	return s.client.SetNX(ctx, key, token, ttl).Result()
}

func (s *LockStore) Read(ctx context.Context, key string) (string, bool, error) {
	val, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}

	if err != nil {
		return "", false, err
	}

	return val, true, nil
}

func (s *LockStore) CompareAndDelete(ctx context.Context, key, token string) (bool, error) {
	deleted, err := s.client.Eval(ctx, compareAndDeleteScript, []string{key}, token).Int()
	if err != nil {
		return false, err
	}

	return deleted == 1, nil
}

func (s *LockStore) Exists(ctx context.Context, key string) (bool, error) {
	n, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}

	return n > 0, nil
}
