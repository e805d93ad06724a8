package locker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/questx-lab/clubbot/pkg/xcontext"
	"github.com/questx-lab/clubbot/pkg/xredis"
)

const (
	minRetryDelay = 5 * time.Millisecond
	maxRetryDelay = 200 * time.Millisecond
)

type redisLocker struct {
	redisClient xredis.Client
	ttl         time.Duration
}

// NewRedis returns a Locker shared by every process using the same redis. A
// lock is released automatically after ttl if its owner crashed.
func NewRedis(redisClient xredis.Client, ttl time.Duration) *redisLocker {
	return &redisLocker{redisClient: redisClient, ttl: ttl}
}

func (l *redisLocker) Lock(ctx context.Context, key string) (Unlock, error) {
	redisKey := fmt.Sprintf("lock:%s", key)
	token := uuid.NewString()

	delay := minRetryDelay
	for {
		ok, err := l.redisClient.SetNX(ctx, redisKey, token, l.ttl)
		if err != nil {
			return nil, err
		}

		if ok {
			break
		}

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}

		delay *= 2
		if delay > maxRetryDelay {
			delay = maxRetryDelay
		}
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			// Use a fresh context, the caller's one may be already cancelled.
			releaseCtx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()

			deleted, err := l.redisClient.CompareAndDelete(releaseCtx, redisKey, token)
			if err != nil {
				xcontext.Logger(ctx).Warnf("Cannot release lock %s: %v", key, err)
			} else if !deleted {
				xcontext.Logger(ctx).Warnf("Lock %s expired before being released", key)
			}
		})
	}, nil
}
