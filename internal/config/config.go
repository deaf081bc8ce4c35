// Package config 依序合併預設值、YAML 檔、.env 與環境變數、命令列旗標
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

type Config struct {
	DatabaseURL     string        `koanf:"database-url"`
	RedisAddr       string        `koanf:"redis-addr"`
	RedisDB         int           `koanf:"redis-db"`
	RedisPassword   string        `koanf:"redis-password"`
	SessionSecret   string        `koanf:"session-secret"`
	SessionTTL      time.Duration `koanf:"session-ttl"`
	CookieSecure    bool          `koanf:"cookie-secure"`
	HTTPAddr        string        `koanf:"http-addr"`
	LogLevel        string        `koanf:"log-level"`
	LogFile         string        `koanf:"log-file"`
	WorkerCount     int           `koanf:"worker-count"`
	WorkerQueue     int           `koanf:"worker-queue"`
	ShutdownTimeout time.Duration `koanf:"shutdown-timeout"`
	StartupAttempts uint64        `koanf:"startup-attempts"`
}

func Defaults() Config {
	return Config{
		RedisAddr:       "localhost:6379",
		SessionTTL:      30 * time.Minute,
		HTTPAddr:        ":8080",
		LogLevel:        "info",
		WorkerCount:     2,
		WorkerQueue:     64,
		ShutdownTimeout: 10 * time.Second,
		StartupAttempts: 5,
	}
}

// 會從環境變數讀取的 key，環境變數名稱為大寫並以底線取代連字號
var envKeys = []string{
	"database-url", "redis-addr", "redis-db", "redis-password", "session-secret",
	"session-ttl", "cookie-secure", "http-addr", "log-level", "log-file",
	"worker-count", "worker-queue", "shutdown-timeout", "startup-attempts",
}

var (
	lookupEnv    = os.LookupEnv
	godotenvLoad = godotenv.Load
)

func envName(key string) string {
	return strings.ToUpper(strings.ReplaceAll(key, "-", "_"))
}

// RegisterFlags 註冊與 Config 對應的旗標，預設值與 Defaults 一致
func RegisterFlags(fs *pflag.FlagSet) {
	d := Defaults()
	fs.String("database-url", d.DatabaseURL, "PostgreSQL connection URL")
	fs.String("redis-addr", d.RedisAddr, "Redis address")
	fs.Int("redis-db", d.RedisDB, "Redis database index")
	fs.String("redis-password", d.RedisPassword, "Redis password")
	fs.String("session-secret", d.SessionSecret, "HMAC secret for session cookies")
	fs.Duration("session-ttl", d.SessionTTL, "idle session lifetime")
	fs.Bool("cookie-secure", d.CookieSecure, "mark session cookie Secure")
	fs.String("http-addr", d.HTTPAddr, "HTTP listen address")
	fs.String("log-level", d.LogLevel, "log level (debug, info, warn, error)")
	fs.String("log-file", d.LogFile, "optional rotated JSON log file")
	fs.Int("worker-count", d.WorkerCount, "background worker count")
	fs.Int("worker-queue", d.WorkerQueue, "background task queue size")
	fs.Duration("shutdown-timeout", d.ShutdownTimeout, "graceful shutdown timeout")
	fs.Uint64("startup-attempts", d.StartupAttempts, "connection retries at startup")
}

// Load 讀取設定；path 為空時略過 YAML 檔，.env 不存在時略過
func Load(flags *pflag.FlagSet, path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	if err := godotenvLoad(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	for _, key := range envKeys {
		if v, ok := lookupEnv(envName(key)); ok && v != "" {
			if err := k.Set(key, v); err != nil {
				return nil, err
			}
		}
	}

	if flags != nil {
		if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
			return nil, fmt.Errorf("load flags: %w", err)
		}
	}

	cfg := Defaults()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}

// ValidateMigrate 檢查執行 migration 所需的設定
func (c *Config) ValidateMigrate() error {
	if c.DatabaseURL == "" {
		return errors.New("DATABASE_URL 未設定")
	}
	return nil
}

// ValidateServe 檢查啟動 HTTP 服務所需的設定
func (c *Config) ValidateServe() error {
	if err := c.ValidateMigrate(); err != nil {
		return err
	}
	var errs []error
	if c.RedisAddr == "" {
		errs = append(errs, errors.New("REDIS_ADDR 未設定"))
	}
	if c.RedisDB < 0 {
		errs = append(errs, fmt.Errorf("無效的 REDIS_DB: %d", c.RedisDB))
	}
	if c.SessionSecret == "" {
		errs = append(errs, errors.New("SESSION_SECRET 未設定"))
	}
	if c.SessionTTL <= 0 {
		errs = append(errs, fmt.Errorf("無效的 SESSION_TTL: %s", c.SessionTTL))
	}
	if c.WorkerCount <= 0 {
		errs = append(errs, fmt.Errorf("無效的 WORKER_COUNT: %d", c.WorkerCount))
	}
	if c.HTTPAddr == "" {
		errs = append(errs, errors.New("HTTP_ADDR 未設定"))
	}
	return errors.Join(errs...)
}
