package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"userdesk/internal/cache"

	"github.com/redis/go-redis/v9"
)

type memCache struct {
	mu   sync.Mutex
	kv   map[string]string
	sets map[string]map[string]struct{}
	ttls map[string]time.Duration
}

func newMemCache() (*memCache, *cache.FakeCache) {
	m := &memCache{
		kv:   map[string]string{},
		sets: map[string]map[string]struct{}{},
		ttls: map[string]time.Duration{},
	}
	fc := &cache.FakeCache{
		GetFn: func(_ context.Context, key string) *redis.StringCmd {
			m.mu.Lock()
			defer m.mu.Unlock()
			v, ok := m.kv[key]
			if !ok {
				return redis.NewStringResult("", redis.Nil)
			}
			return redis.NewStringResult(v, nil)
		},
		SetFn: func(_ context.Context, key string, value any, ttl time.Duration) *redis.StatusCmd {
			m.mu.Lock()
			defer m.mu.Unlock()
			switch v := value.(type) {
			case []byte:
				m.kv[key] = string(v)
			default:
				m.kv[key] = fmt.Sprint(v)
			}
			m.ttls[key] = ttl
			return redis.NewStatusResult("OK", nil)
		},
		DelFn: func(_ context.Context, keys ...string) *redis.IntCmd {
			m.mu.Lock()
			defer m.mu.Unlock()
			var n int64
			for _, k := range keys {
				if _, ok := m.kv[k]; ok {
					delete(m.kv, k)
					n++
				}
				if _, ok := m.sets[k]; ok {
					delete(m.sets, k)
					n++
				}
			}
			return redis.NewIntResult(n, nil)
		},
		ExpireFn: func(_ context.Context, key string, ttl time.Duration) *redis.BoolCmd {
			m.mu.Lock()
			defer m.mu.Unlock()
			m.ttls[key] = ttl
			return redis.NewBoolResult(true, nil)
		},
		SAddFn: func(_ context.Context, key string, members ...any) *redis.IntCmd {
			m.mu.Lock()
			defer m.mu.Unlock()
			set, ok := m.sets[key]
			if !ok {
				set = map[string]struct{}{}
				m.sets[key] = set
			}
			for _, mem := range members {
				set[fmt.Sprint(mem)] = struct{}{}
			}
			return redis.NewIntResult(int64(len(members)), nil)
		},
		SMembersFn: func(_ context.Context, key string) *redis.StringSliceCmd {
			m.mu.Lock()
			defer m.mu.Unlock()
			out := []string{}
			for k := range m.sets[key] {
				out = append(out, k)
			}
			return redis.NewStringSliceResult(out, nil)
		},
	}
	return m, fc
}

func (m *memCache) has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.kv[key]
	return ok
}
