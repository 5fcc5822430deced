package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-job-tracker/internal/logger"
)

// LoginAttemptCacheRepository counts failed logins per email in Redis.
// Counters expire one window after the first failure.
type LoginAttemptCacheRepository struct {
	client *redis.Client
	window time.Duration
}

// NewLoginAttemptCacheRepository creates a new repository instance
func NewLoginAttemptCacheRepository(client *redis.Client, window time.Duration) *LoginAttemptCacheRepository {
	return &LoginAttemptCacheRepository{
		client: client,
		window: window,
	}
}

func loginAttemptKey(email string) string {
	return "login_attempts:" + email
}

// Count returns the failures recorded in the current window.
func (r *LoginAttemptCacheRepository) Count(ctx context.Context, email string) (int64, error) {
	key := loginAttemptKey(email)

	n, err := r.client.Get(ctx, key).Int64()
	if errors.Is(err, redis.Nil) {
		n, err = 0, nil
	}

	logger.Log.Debugw("login attempts", "key", key, "result", n, "error", err)

	return n, err
}

// Increment records a failure and returns the new count.
func (r *LoginAttemptCacheRepository) Increment(ctx context.Context, email string) (int64, error) {
	key := loginAttemptKey(email)

	var incr *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.ExpireNX(ctx, key, r.window)
		return nil
	})

	var n int64
	if err == nil {
		n = incr.Val()
	}

	logger.Log.Debugw("login attempt recorded", "key", key, "result", n, "error", err)

	return n, err
}

// Reset forgets the failures after a successful login.
func (r *LoginAttemptCacheRepository) Reset(ctx context.Context, email string) error {
	key := loginAttemptKey(email)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Debugw("login attempts reset", "key", key, "error", err)

	return err
}
