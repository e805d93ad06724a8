package xredis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) (*client, *miniredis.Miniredis) {
	s := miniredis.RunT(t)
	c, err := NewClient(context.Background(), s.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c, s
}

func TestClient_Obj(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestClient(t)

	type sticky struct {
		ChannelID string
		Content   string
	}

	require.NoError(t, c.SetObj(ctx, "sticky:1", sticky{ChannelID: "1", Content: "hi"}, time.Minute))

	var got sticky
	require.NoError(t, c.GetObj(ctx, "sticky:1", &got))
	require.Equal(t, sticky{ChannelID: "1", Content: "hi"}, got)

	require.NoError(t, c.Del(ctx, "sticky:1"))
	require.ErrorIs(t, c.GetObj(ctx, "sticky:1", &got), ErrNil)
}

func TestClient_Lock(t *testing.T) {
	ctx := context.Background()
	c, s := newTestClient(t)

	ok, err := c.SetNX(ctx, "lock:user:1", "owner-a", time.Second)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = c.SetNX(ctx, "lock:user:1", "owner-b", time.Second)
	require.NoError(t, err)
	require.False(t, ok)

	// Only the owner can release the lock.
	deleted, err := c.CompareAndDelete(ctx, "lock:user:1", "owner-b")
	require.NoError(t, err)
	require.False(t, deleted)

	deleted, err = c.CompareAndDelete(ctx, "lock:user:1", "owner-a")
	require.NoError(t, err)
	require.True(t, deleted)
	require.False(t, s.Exists("lock:user:1"))
}
