package testutil

import (
	"context"
	"time"

	"github.com/questx-lab/clubbot/pkg/xredis"
)

type MockRedisClient struct {
	DelFunc              func(ctx context.Context, key ...string) error
	SetObjFunc           func(ctx context.Context, key string, obj any, ttl time.Duration) error
	GetObjFunc           func(ctx context.Context, key string, v any) error
	SetNXFunc            func(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
	CompareAndDeleteFunc func(ctx context.Context, key, value string) (bool, error)
}

func (m *MockRedisClient) Del(ctx context.Context, key ...string) error {
	if m.DelFunc != nil {
		return m.DelFunc(ctx, key...)
	}

	return nil
}

func (m *MockRedisClient) SetObj(ctx context.Context, key string, obj any, ttl time.Duration) error {
	if m.SetObjFunc != nil {
		return m.SetObjFunc(ctx, key, obj, ttl)
	}

	return nil
}

func (m *MockRedisClient) GetObj(ctx context.Context, key string, v any) error {
	if m.GetObjFunc != nil {
		return m.GetObjFunc(ctx, key, v)
	}

	return xredis.ErrNil
}

func (m *MockRedisClient) SetNX(ctx context.Context, key, value string, ttl time.Duration) (bool, error) {
	if m.SetNXFunc != nil {
		return m.SetNXFunc(ctx, key, value, ttl)
	}

	return true, nil
}

func (m *MockRedisClient) CompareAndDelete(ctx context.Context, key, value string) (bool, error) {
	if m.CompareAndDeleteFunc != nil {
		return m.CompareAndDeleteFunc(ctx, key, value)
	}

	return true, nil
}
