package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache 定義 session 與健康檢查會用到的 Redis 操作
// *redis.Client 直接滿足此介面，測試時以 FakeCache 替換
// ttl <= 0 表示不設過期
type Cache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Expire(ctx context.Context, key string, ttl time.Duration) *redis.BoolCmd
	SAdd(ctx context.Context, key string, members ...interface{}) *redis.IntCmd
	SMembers(ctx context.Context, key string) *redis.StringSliceCmd
	Ping(ctx context.Context) *redis.StatusCmd
	Close() error
}

type FakeCache struct {
	GetFn      func(ctx context.Context, key string) *redis.StringCmd
	SetFn      func(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	DelFn      func(ctx context.Context, keys ...string) *redis.IntCmd
	ExpireFn   func(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
	SAddFn     func(ctx context.Context, key string, members ...any) *redis.IntCmd
	SMembersFn func(ctx context.Context, key string) *redis.StringSliceCmd
	PingFn     func(ctx context.Context) *redis.StatusCmd
	CloseFn    func() error
}

// Get 執行 Fake 設定或 panic
func (f *FakeCache) Get(ctx context.Context, key string) *redis.StringCmd {
	if f.GetFn != nil {
		return f.GetFn(ctx, key)
	}
	panic("unexpected Get")
}

// Set 執行 Fake 設定或 panic
func (f *FakeCache) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	if f.SetFn != nil {
		return f.SetFn(ctx, key, value, expiration)
	}
	panic("unexpected Set")
}

func (f *FakeCache) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	if f.DelFn != nil {
		return f.DelFn(ctx, keys...)
	}
	panic("unexpected Del")
}

func (f *FakeCache) Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd {
	if f.ExpireFn != nil {
		return f.ExpireFn(ctx, key, expiration)
	}
	panic("unexpected Expire")
}

func (f *FakeCache) SAdd(ctx context.Context, key string, members ...any) *redis.IntCmd {
	if f.SAddFn != nil {
		return f.SAddFn(ctx, key, members...)
	}
	panic("unexpected SAdd")
}

func (f *FakeCache) SMembers(ctx context.Context, key string) *redis.StringSliceCmd {
	if f.SMembersFn != nil {
		return f.SMembersFn(ctx, key)
	}
	panic("unexpected SMembers")
}

// Ping 未設定時視為健康
func (f *FakeCache) Ping(ctx context.Context) *redis.StatusCmd {
	if f.PingFn != nil {
		return f.PingFn(ctx)
	}
	return redis.NewStatusResult("PONG", nil)
}

// Close 執行 Fake 設定或 no-op
func (f *FakeCache) Close() error {
	if f.CloseFn != nil {
		return f.CloseFn()
	}
	return nil
}
