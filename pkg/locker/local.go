package locker

import (
	"context"
	"sync"

	"github.com/puzpuzpuz/xsync"
)

type localLocker struct {
	slots *xsync.MapOf[string, chan struct{}]
}

// NewLocal returns a Locker which is only valid inside this process.
func NewLocal() *localLocker {
	return &localLocker{slots: xsync.NewMapOf[chan struct{}]()}
}

func (l *localLocker) Lock(ctx context.Context, key string) (Unlock, error) {
	slot, _ := l.slots.LoadOrCompute(key, func() chan struct{} {
		return make(chan struct{}, 1)
	})

	select {
	case slot <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	var once sync.Once
	return func() { once.Do(func() { <-slot }) }, nil
}
