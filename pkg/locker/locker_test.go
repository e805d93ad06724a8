package locker

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/questx-lab/clubbot/pkg/xredis"
	"github.com/stretchr/testify/require"
)

func testSerialized(t *testing.T, l Locker) {
	ctx := context.Background()

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock, err := l.Lock(ctx, "user:1")
			require.NoError(t, err)
			defer unlock()

			// Read, yield, write: loses updates without the lock.
			v := counter
			time.Sleep(time.Millisecond)
			counter = v + 1
		}()
	}
	wg.Wait()

	require.Equal(t, 20, counter)
}

func testContextDone(t *testing.T, l Locker) {
	unlock, err := l.Lock(context.Background(), "club:1")
	require.NoError(t, err)
	defer unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = l.Lock(ctx, "club:1")
	require.ErrorIs(t, err, context.DeadlineExceeded)

	// Other keys are independent.
	other, err := l.Lock(context.Background(), "club:2")
	require.NoError(t, err)
	other()
}

func TestLocal(t *testing.T) {
	t.Run("serialized", func(t *testing.T) { testSerialized(t, NewLocal()) })
	t.Run("context done", func(t *testing.T) { testContextDone(t, NewLocal()) })

	t.Run("unlock twice", func(t *testing.T) {
		l := NewLocal()
		unlock, err := l.Lock(context.Background(), "user:1")
		require.NoError(t, err)
		unlock()
		unlock()

		unlock, err = l.Lock(context.Background(), "user:1")
		require.NoError(t, err)
		unlock()
	})
}

func TestRedis(t *testing.T) {
	s := miniredis.RunT(t)
	client, err := xredis.NewClient(context.Background(), s.Addr())
	require.NoError(t, err)

	t.Run("serialized", func(t *testing.T) { testSerialized(t, NewRedis(client, time.Second)) })
	t.Run("context done", func(t *testing.T) { testContextDone(t, NewRedis(client, time.Second)) })
}
