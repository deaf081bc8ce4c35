package session

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"userdesk/internal/cache"

	"github.com/redis/go-redis/v9"
)

const (
	sessionKeyPrefix     = "session:"
	userSessionKeyPrefix = "user_sessions:"
)

var (
	jsonMarshal   = json.Marshal
	jsonUnmarshal = json.Unmarshal
)

func sessionKey(id string) string { return sessionKeyPrefix + id }

func userSessionsKey(userID int) string { return userSessionKeyPrefix + strconv.Itoa(userID) }

// RedisStore 每次讀取都會延長 session 與使用者索引的 TTL
type RedisStore struct {
	cache cache.Cache
	ttl   time.Duration
}

func NewRedisStore(c cache.Cache, ttl time.Duration) *RedisStore {
	return &RedisStore{cache: c, ttl: ttl}
}

func (r *RedisStore) Get(ctx context.Context, id string) (*Session, error) {
	if id == "" {
		return nil, ErrNotFound
	}
	data, err := r.cache.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var s Session
	if err := jsonUnmarshal(data, &s); err != nil {
		return nil, err
	}
	if r.ttl > 0 {
		if err := r.cache.Expire(ctx, sessionKey(id), r.ttl).Err(); err != nil {
			return nil, err
		}
		// 使用者索引要與 session 同步延長，否則刪除使用者時找不到仍有效的 session
		if s.Authenticated() {
			if err := r.cache.Expire(ctx, userSessionsKey(s.UserID), r.ttl).Err(); err != nil {
				return nil, err
			}
		}
	}
	return &s, nil
}

func (r *RedisStore) Save(ctx context.Context, s *Session) error {
	data, err := jsonMarshal(s)
	if err != nil {
		return err
	}
	if err := r.cache.Set(ctx, sessionKey(s.ID), data, r.ttl).Err(); err != nil {
		return err
	}
	if !s.Authenticated() {
		return nil
	}

	key := userSessionsKey(s.UserID)
	if err := r.cache.SAdd(ctx, key, s.ID).Err(); err != nil {
		return err
	}
	if r.ttl > 0 {
		return r.cache.Expire(ctx, key, r.ttl).Err()
	}
	return nil
}

func (r *RedisStore) Invalidate(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	return r.cache.Del(ctx, sessionKey(id)).Err()
}

func (r *RedisStore) InvalidateUser(ctx context.Context, userID int) error {
	key := userSessionsKey(userID)
	ids, err := r.cache.SMembers(ctx, key).Result()
	if err != nil {
		return err
	}
	keys := make([]string, 0, len(ids)+1)
	for _, id := range ids {
		keys = append(keys, sessionKey(id))
	}
	keys = append(keys, key)
	return r.cache.Del(ctx, keys...).Err()
}
