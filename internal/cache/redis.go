package cache

import (
	"github.com/redis/go-redis/v9"
)

// redisNewClient 用來建立 redis client，測試可覆寫此變數。
var redisNewClient = func(opt *redis.Options) Cache {
	return redis.NewClient(opt)
}

// NewRedisClient 建立並回傳 *redis.Client，直接實作 Cache
// addr: Redis 位址；password: 密碼，可空；db: 資料庫編號
// 連線檢查交給呼叫端（見 database.WaitReady），此處不 Ping
func NewRedisClient(addr string, password string, db int) Cache {
	return redisNewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}
